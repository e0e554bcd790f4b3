package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/soccer-stats/internal/app"
	"github.com/riskibarqy/soccer-stats/internal/config"
	"github.com/riskibarqy/soccer-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
)

var errUsage = errors.New("usage")

// command is one CLI verb. Commands with schema set run against a migrator
// opened from MIGRATIONS_DIR; the rest only need config.
type command struct {
	args    string
	summary string
	schema  bool
	run     func(ctx context.Context, e *env, args []string) error
}

type env struct {
	cfg    config.Config
	logger *logging.Logger
	m      *migrate.Migrate
	source string
	out    io.Writer
}

var commands = map[string]command{
	"up":             {summary: "apply all pending migrations", schema: true, run: runUp},
	"down":           {args: "[steps]", summary: "roll back steps migrations (default 1)", schema: true, run: runDown},
	"version":        {summary: "print the current schema version", schema: true, run: runVersion},
	"force":          {args: "<version>", summary: "mark version as applied without running it", schema: true, run: runForce},
	"goto":           {args: "<version>", summary: "migrate up or down to version", schema: true, run: runGoto},
	"refresh-roster": {summary: "rebuild the team_roster materialized view", run: runRefreshRoster},
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if name == "migrate" {
		name = "goto"
	}
	cmd, ok := commands[name]
	if !ok {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel, "service", cfg.ServiceName, "component", "migration", "command", name)
	logging.SetDefault(logger)

	os.Exit(execute(cmd, &env{cfg: cfg, logger: logger, out: os.Stdout}, os.Args[2:]))
}

func execute(cmd command, e *env, args []string) int {
	defer func() { _ = e.logger.Sync() }()

	if cmd.schema {
		dir, err := resolveMigrationsDir()
		if err != nil {
			e.logger.Error("resolve migrations dir failed", "error", err)
			return 1
		}
		e.source = "file://" + filepath.ToSlash(dir)
		if e.m, err = migrate.New(e.source, e.cfg.DBURL); err != nil {
			e.logger.Error("create migrator failed", "error", err)
			return 1
		}
		defer closeMigrator(e.m, e.logger)
	}

	err := cmd.run(context.Background(), e, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		e.logger.Error("invalid arguments", "error", err, "args", cmd.args)
		return 2
	default:
		e.logger.Error("command failed", "error", err)
		return 1
	}
}

func runUp(_ context.Context, e *env, _ []string) error {
	if err := ignoreNoChange(e.m.Up(), e.logger); err != nil {
		return err
	}
	e.logger.Info("migrations applied", "source", e.source)
	return nil
}

func runDown(_ context.Context, e *env, args []string) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	if err := ignoreNoChange(e.m.Steps(-steps), e.logger); err != nil {
		return err
	}
	e.logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runVersion(_ context.Context, e *env, _ []string) error {
	version, dirty, err := e.m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Fprintln(e.out, "version: none")
		fmt.Fprintln(e.out, "dirty: false")
		return nil
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	}
	fmt.Fprintf(e.out, "version: %d\ndirty: %t\n", version, dirty)
	return nil
}

func runForce(_ context.Context, e *env, args []string) error {
	raw, err := oneArg(args, "force")
	if err != nil {
		return err
	}
	version, err := parseVersion(raw)
	if err != nil {
		return err
	}
	if err := e.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	e.logger.Info("forced migration version", "version", version)
	return nil
}

func runGoto(_ context.Context, e *env, args []string) error {
	raw, err := oneArg(args, "goto")
	if err != nil {
		return err
	}
	target, err := parseTarget(raw)
	if err != nil {
		return err
	}
	if err := ignoreNoChange(e.m.Migrate(target), e.logger); err != nil {
		return err
	}
	e.logger.Info("migrated to version", "version", target)
	return nil
}

// runRefreshRoster rebuilds the team_roster view behind /roster_test.
func runRefreshRoster(ctx context.Context, e *env, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	db, err := app.OpenDB(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	started := time.Now()
	if err := usecase.NewRosterService(postgres.NewRosterRepository(db)).Refresh(ctx); err != nil {
		return fmt.Errorf("refresh team roster: %w", err)
	}
	e.logger.Info("team roster refreshed", "duration_ms", time.Since(started).Milliseconds())
	return nil
}

func oneArg(args []string, name string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: %s requires a version argument", errUsage, name)
	}
	return args[0], nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("%w: down steps must be a positive integer, got %q", errUsage, args[0])
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid version %q", errUsage, raw)
	}
	return int(v), nil
}

func parseTarget(raw string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid target version %q", errUsage, raw)
	}
	return uint(v), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source failed", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db failed", "error", dbErr)
	}
}

// resolveMigrationsDir prefers MIGRATIONS_DIR, then MIGRATIONS_PATH, then
// the repo and container layouts.
func resolveMigrationsDir() (string, error) {
	candidates := []string{
		os.Getenv("MIGRATIONS_DIR"),
		os.Getenv("MIGRATIONS_PATH"),
		"./db/migrations",
		"/app/db/migrations",
	}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", errors.New("migration directory not found (set MIGRATIONS_DIR)")
}

func printUsage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "usage: %s <command> [args]\n\ncommands:\n", name)
	for _, n := range names {
		c := commands[n]
		fmt.Fprintf(w, "  %-28s %s\n", strings.TrimSpace(n+" "+c.args), c.summary)
	}
}
