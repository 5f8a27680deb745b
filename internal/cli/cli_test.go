package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/graphwalk/pkg/config"
	"github.com/matzehuels/graphwalk/pkg/observability"
	"github.com/matzehuels/graphwalk/pkg/render/nodelink"
)

// execute runs the root command with args against an empty config dir.
func execute(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	c, _, _, err := run(t, args...)
	return c, err
}

// run is execute that also returns what the command wrote to its output
// and to the logger.
func run(t *testing.T, args ...string) (c *CLI, out, logs string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var logBuf, outBuf bytes.Buffer
	c = New(&logBuf, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&outBuf)
	root.SetErr(&bytes.Buffer{})
	err = root.Execute()
	return c, outBuf.String(), logBuf.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"traverse", "matrix", "render", "tui", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestTraverseCommand(t *testing.T) {
	if _, err := execute(t, "traverse", "--kind", "dfs", "--detailed"); err != nil {
		t.Fatalf("traverse: %v", err)
	}
}

func TestTraverseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad kind", []string{"traverse", "--kind", "astar"}, "invalid traversal kind"},
		{"bad edge", []string{"traverse", "--add", "1,1,4"}, "self-loops not supported"},
		{"short edge", []string{"matrix", "--remove", "1"}, "expected u,v"},
		{"bad format", []string{"render", "-f", "gif"}, "invalid format"},
		{"bad steps", []string{"render", "--steps", "-1"}, "invalid --steps"},
		{"missing config", []string{"--config", "/nonexistent/graphwalk.toml", "matrix"}, "config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestMatrixCommand(t *testing.T) {
	if _, err := execute(t, "matrix", "--add", "0,2,7", "--highlight", "bfs", "--plain"); err != nil {
		t.Fatalf("matrix: %v", err)
	}
}

func TestRenderDOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.dot")
	if _, err := execute(t, "render", "-f", "dot", "--kind", "bfs", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should start with an undirected graph, got %q", dot[:min(len(dot), 20)])
	}
	if !strings.Contains(dot, "BFS complete") {
		t.Error("DOT caption should carry the completion status")
	}
}

func TestRenderJSONPartial(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "frame.json")
	if _, err := execute(t, "render", "-f", "json", "--kind", "dfs", "--steps", "3", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var l nodelink.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Kind != "dfs" || l.State != "canceled" {
		t.Errorf("kind/state = %s/%s, want dfs/canceled", l.Kind, l.State)
	}
	if want := []int{0, 1, 2}; !equalInts(l.Highlight, want) {
		t.Errorf("highlight = %v, want %v", l.Highlight, want)
	}
	if len(l.Nodes) != 5 || len(l.Edges) != 5 {
		t.Errorf("got %d nodes and %d edges, want 5 and 5", len(l.Nodes), len(l.Edges))
	}
}

func TestConfigFileApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := "[animation]\ninterval = \"250ms\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := execute(t, "--config", path, "matrix", "--plain")
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	if got := c.Config.Animation.Interval; got != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", got)
	}
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("log level = %v, want debug", got)
	}
}

// writeConfig writes text to a config file in a temp dir.
func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// cacheEntries counts the entry files below dir.
func cacheEntries(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			n++
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatal(err)
	}
	return n
}

func TestRenderSVGUsesCache(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	cfg := writeConfig(t, fmt.Sprintf("[cache]\ndir = %q\n", cacheDir))
	out := filepath.Join(t.TempDir(), "a.svg")
	args := []string{"--config", cfg, "render", "--kind", "bfs", "-o", out}

	_, _, logs, err := run(t, args...)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	if strings.Contains(logs, "Using cached") {
		t.Error("first render should miss the cache")
	}
	if n := cacheEntries(t, cacheDir); n != 1 {
		t.Fatalf("cache holds %d entries after first render, want 1", n)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	_, _, logs, err = run(t, args...)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(logs, "Using cached svg") {
		t.Errorf("second render should hit the cache, logs:\n%s", logs)
	}
	if n := cacheEntries(t, cacheDir); n != 1 {
		t.Errorf("cache holds %d entries after a hit, want 1", n)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached render differs from the fresh one")
	}
}

func TestRenderSVGNoCache(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	cfg := writeConfig(t, fmt.Sprintf("[cache]\ndir = %q\n", cacheDir))
	out := filepath.Join(t.TempDir(), "a.svg")

	for i := 0; i < 2; i++ {
		_, _, logs, err := run(t, "--config", cfg, "render", "--no-cache", "-o", out)
		if err != nil {
			t.Fatalf("render %d: %v", i+1, err)
		}
		if strings.Contains(logs, "Using cached") {
			t.Errorf("render %d used the cache despite --no-cache", i+1)
		}
	}
	if n := cacheEntries(t, cacheDir); n != 0 {
		t.Errorf("--no-cache wrote %d cache entries", n)
	}
}

func TestConfigCommand(t *testing.T) {
	path := writeConfig(t, "[animation]\ninterval = \"250ms\"\n\n[canvas]\nwidth = 900\n")

	tests := []struct {
		name     string
		args     []string
		interval time.Duration
		width    float64
	}{
		{"active", []string{"--config", path, "config"}, 250 * time.Millisecond, 900},
		{"defaults", []string{"--config", path, "config", "--default"}, config.Default().Animation.Interval, config.Default().Canvas.Width},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			cfg, undecoded, err := config.Parse(out)
			if err != nil {
				t.Fatalf("output does not parse: %v\n%s", err, out)
			}
			if len(undecoded) != 0 {
				t.Errorf("output has unknown keys %v", undecoded)
			}
			if cfg.Animation.Interval != tt.interval || cfg.Canvas.Width != tt.width {
				t.Errorf("interval, width = %v, %v; want %v, %v", cfg.Animation.Interval, cfg.Canvas.Width, tt.interval, tt.width)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			_, out, _, err := run(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "graphwalk") {
				t.Errorf("completion %s does not mention graphwalk", shell)
			}
		})
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, format, want string
	}{
		{"", "svg", ""},
		{"", "dot", ""},
		{"", "png", "graphwalk.png"},
		{"", "pdf", "graphwalk.pdf"},
		{"out.svg", "svg", "out.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.format, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
