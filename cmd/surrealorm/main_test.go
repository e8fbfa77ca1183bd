package main

import "testing"

func TestCodebaseResourcesStartsEmpty(t *testing.T) {
	res := codebaseResources()
	if len(res.Tables) != 0 {
		t.Fatalf("expected a freshly scaffolded project to declare no tables, got %d", len(res.Tables))
	}
}

func TestRootCommandRegistersEverySubcommand(t *testing.T) {
	want := []string{"init", "generate", "up", "down", "list", "reset", "prune"}
	got := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
