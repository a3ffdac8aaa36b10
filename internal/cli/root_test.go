package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRootCommandStructure(t *testing.T) {
	root := newRootCmd()

	if root.Use != "tikzgo" {
		t.Errorf("Use = %q, want tikzgo", root.Use)
	}

	want := []string{"cache", "compile", "completion", "examples", "graph", "list", "save", "serve"}
	have := map[string]bool{}
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRootVersionFlag(t *testing.T) {
	root := newRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--version"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "tikzgo version") {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestRootPersistentFlags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}
