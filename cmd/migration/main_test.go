package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default one", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"all"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if tt.wantErr {
				if !errors.Is(err, errUsage) {
					t.Fatalf("expected usage error for %v, got %v", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse steps: %v", err)
			}
			if got != tt.want {
				t.Fatalf("parseSteps(%v)=%d want=%d", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if _, err := parseVersion("-1"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for negative version, got %v", err)
	}
	if v, err := parseVersion("1760486400"); err != nil || v != 1760486400 {
		t.Fatalf("unexpected version: %d err=%v", v, err)
	}
	if _, err := parseTarget("abc"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for non-numeric target, got %v", err)
	}
	if _, err := oneArg(nil, "force"); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for missing argument, got %v", err)
	}
}

func TestCommands_OnlyRosterRefreshSkipsMigrator(t *testing.T) {
	for name, cmd := range commands {
		if cmd.run == nil {
			t.Fatalf("command %s has no run func", name)
		}
		if cmd.schema == (name == "refresh-roster") {
			t.Fatalf("command %s: unexpected schema flag %v", name, cmd.schema)
		}
	}
}

func TestPrintUsage_ListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	for name := range commands {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("usage does not mention %s:\n%s", name, buf.String())
		}
	}
}
