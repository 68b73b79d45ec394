package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	if c.Logger == nil {
		t.Fatal("New() returned CLI with nil logger")
	}

	c.Logger.Info("test message")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message logged at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message not logged at debug level")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"expand", "edit", "serve", "viz", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestExpandCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.txt")
	if err := os.WriteFile(path, []byte("X depends on Y R\nY depends on Z"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.txt")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"expand", path, "--no-cache", "-o", out})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "X depends on Y R Z\nY depends on Z\n" {
		t.Errorf("output = %q", data)
	}
}

func TestExpandCommand_Normalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.txt")
	if err := os.WriteFile(path, []byte("A depends on B  C"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.txt")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"expand", path, "--no-cache", "--normalized", "-o", out})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if string(data) != "A depends on B C\n" {
		t.Errorf("output = %q", data)
	}
}

func TestExpandCommand_DataErrorMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.txt")
	if err := os.WriteFile(path, []byte("X depends on X"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"expand", path, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	if err == nil {
		t.Fatal("Execute() succeeded on self-dependent input")
	}
	if !strings.Contains(err.Error(), "A library directly depends on itself.") {
		t.Errorf("error = %q, want the self-dependency message", err)
	}
}

func TestVizCommand_DOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.txt")
	if err := os.WriteFile(path, []byte("X depends on Y\nY depends on Z"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(t.TempDir(), "deps.dot")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"viz", path, "-o", out})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), `"X" -> "Y";`) {
		t.Errorf("DOT output missing edge:\n%s", data)
	}
}

func TestVizCommand_UnknownFormat(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"viz", "whatever.txt", "-f", "png"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Execute() succeeded with unknown format")
	}
}
