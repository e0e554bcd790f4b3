package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("league_id", "name").
		From("leagues").
		Where(Eq("understat_notation", "EPL"), Gte("league_id", 1), Lte("league_id", 2)).
		OrderBy("name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT league_id, name FROM leagues WHERE understat_notation = $1 AND league_id >= $2 AND league_id <= $3 ORDER BY name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "EPL" || args[1] != 1 || args[2] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_WithHavingOffset(t *testing.T) {
	played := Select("player_id", "COUNT(*) AS games").
		From("appearances").
		Where(Between("season", 2014, 2020)).
		GroupBy("player_id")

	query, args, err := Select("p.name", "pg.games").
		With("played", played).
		From("played pg JOIN players p ON p.player_id = pg.player_id").
		Where(ILike("p.name", "son")).
		GroupBy("p.name", "pg.games").
		Having(Gte("pg.games", 3), Lte("pg.games", 30)).
		OrderBy("pg.games DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "WITH played AS (SELECT player_id, COUNT(*) AS games FROM appearances WHERE season BETWEEN $1 AND $2 GROUP BY player_id) " +
		"SELECT p.name, pg.games FROM played pg JOIN players p ON p.player_id = pg.player_id WHERE p.name ILIKE $3 " +
		"GROUP BY p.name, pg.games HAVING pg.games >= $4 AND pg.games <= $5 ORDER BY pg.games DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	wantArgs := []any{2014, 2020, "%son%", 3, 30}
	if len(args) != len(wantArgs) {
		t.Fatalf("unexpected args: %+v", args)
	}
	for i := range wantArgs {
		if args[i] != wantArgs[i] {
			t.Fatalf("arg %d: want %v got %v", i, wantArgs[i], args[i])
		}
	}
}

func TestSelectBuilder_ExprCommonTable(t *testing.T) {
	query, args, err := Select("team_id").
		With("sides", Expr("SELECT home_team_id AS team_id FROM games WHERE season = ? UNION ALL SELECT away_team_id FROM games WHERE season = ?", 2015, 2015)).
		From("sides").
		Where(Expr("team_id <> ?", 7)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "WITH sides AS (SELECT home_team_id AS team_id FROM games WHERE season = $1 UNION ALL SELECT away_team_id FROM games WHERE season = $2) " +
		"SELECT team_id FROM sides WHERE team_id <> $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 7 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Validation(t *testing.T) {
	if _, _, err := Select().From("games").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("1").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select("1").With("x", Select("1")).From("x").ToSQL(); err == nil {
		t.Fatalf("expected error for invalid common table")
	}
}

func TestILike_EscapesWildcards(t *testing.T) {
	_, args, err := Select("name").From("teams").Where(ILike("name", `100%_a\b`)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if len(args) != 1 || args[0] != `%100\%\_a\\b%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		ID     int    `db:"team_id"`
		Name   string `db:"name"`
		Ignore string `db:"-"`
	}

	query, args, err := InsertModels("teams", []row{{ID: 1, Name: "Arsenal"}, {ID: 2, Name: "Chelsea"}})
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (team_id, name) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[1] != "Arsenal" || args[3] != "Chelsea" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_FlattensEmbeddedAndRejectsEmpty(t *testing.T) {
	type audit struct {
		Season int `db:"season"`
	}
	type row struct {
		audit
		ID int `db:"game_id"`
	}

	query, args, err := InsertModels("games", []*row{{audit: audit{Season: 2015}, ID: 81}})
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	if want := "INSERT INTO games (season, game_id) VALUES ($1, $2)"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != 2015 || args[1] != 81 {
		t.Fatalf("unexpected args: %+v", args)
	}

	type untagged struct{ Name string }
	if _, _, err := InsertModels("teams", []untagged{{Name: "x"}}); err == nil {
		t.Fatalf("expected error for model without db columns")
	}
	if _, _, err := InsertModels[row]("teams", nil); err == nil {
		t.Fatalf("expected error for empty models")
	}
}
