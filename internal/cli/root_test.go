package cli

import (
	"os"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"render", "layout", "engines", "formats", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RootCommand() missing subcommand %q", name)
		}
	}
}

func TestRootCommandMetadata(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	if root.Use != "vizier" {
		t.Errorf("root.Use = %q, want %q", root.Use, "vizier")
	}
	if root.Version == "" {
		t.Error("root.Version should not be empty")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("root command missing --config flag")
	}
}

func TestCacheCommandSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.cacheCommand()

	want := []string{"info", "clear", "path"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("cacheCommand() missing subcommand %q", name)
		}
	}
}
