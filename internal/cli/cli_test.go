package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

// runCLI executes the root command with args and a silent logger.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeConfig(t *testing.T, cfg *grid.Config, name string) string {
	t.Helper()
	format, err := grid.FormatFromPath(name)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := grid.Encode(&buf, cfg, format); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,png", []string{"svg", "png"}},
		{"svg, dot ,", []string{"svg", "dot"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		config  string
		formats []string
		want    map[string]string
	}{
		{"default", "", "", []string{"svg"}, map[string]string{"svg": "spheregrid.svg"}},
		{"config name", "", "grids/arcana.toml", []string{"svg", "png"}, map[string]string{"svg": "arcana.svg", "png": "arcana.png"}},
		{"prefix", "out/grid", "", []string{"pdf"}, map[string]string{"pdf": "out/grid.pdf"}},
		{"explicit file", "poster.png", "", []string{"png"}, map[string]string{"png": "poster.png"}},
		{"strip known ext", "poster.svg", "", []string{"svg", "png"}, map[string]string{"svg": "poster.svg", "png": "poster.png"}},
		{"keep unknown ext", "v1.2", "", []string{"json"}, map[string]string{"json": "v1.2.json"}},
		{"topology", "out/grid", "", []string{"svg", "topology"}, map[string]string{"svg": "out/grid.svg", "topology": "out/grid.topology.svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.output, tt.config, tt.formats); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Nodes) != len(grid.Default().Nodes) {
		t.Errorf("loadConfig(\"\") should return the built-in sample")
	}

	path := writeConfig(t, grid.Default(), "grid.yaml")
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != grid.Default().Name {
		t.Errorf("Name = %q, want %q", cfg.Name, grid.Default().Name)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	prefix := filepath.Join(dir, "out", "grid")

	args := []string{"--cache-dir", cacheDir, "generate", "-f", "svg,json,dot", "-o", prefix, "--seed", "7"}
	if err := runCLI(t, args...); err != nil {
		t.Fatalf("generate: %v", err)
	}

	svg, err := os.ReadFile(prefix + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg output starts with %q", svg[:min(len(svg), 20)])
	}
	scene, err := os.ReadFile(prefix + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(scene, []byte(`"seed":7`)) && !bytes.Contains(scene, []byte(`"seed": 7`)) {
		t.Error("json output should carry the seed override")
	}
	dot, err := os.ReadFile(prefix + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), "digraph") {
		t.Error("dot output should be a digraph")
	}

	if countEntries(cacheDir) == 0 {
		t.Error("generate should populate the cache")
	}
}

func TestGenerateNoCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	out := filepath.Join(dir, "grid.svg")

	if err := runCLI(t, "--cache-dir", cacheDir, "generate", "--no-cache", "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cacheDir); !os.IsNotExist(err) {
		t.Error("--no-cache should not create the cache directory")
	}
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	bad := grid.Default()
	bad.Edges = append(bad.Edges, grid.Edge{From: "CORE", To: "GHOST", Type: grid.PathMain})
	path := writeConfig(t, bad, "bad.json")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"generate", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"dangling edge", []string{"generate", path}, errors.ErrCodeUnknownNode},
		{"bad extension", []string{"generate", filepath.Join(dir, "grid.ini")}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--cache-dir", dir, "generate", "-o", filepath.Join(dir, "x")}, tt.args[1:]...)
			err := runCLI(t, args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}

	out := filepath.Join(dir, "lenient")
	if err := runCLI(t, "--cache-dir", dir, "generate", "--lenient", "-o", out, path); err != nil {
		t.Errorf("--lenient should skip the dangling edge: %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	good := writeConfig(t, grid.Default(), "good.toml")
	if err := runCLI(t, "validate", good); err != nil {
		t.Errorf("validate good config: %v", err)
	}
	if err := runCLI(t, "validate"); err != nil {
		t.Errorf("validate built-in sample: %v", err)
	}

	cfg := grid.Default()
	cfg.Nodes[1].Tier = "R999"
	cfg.Edges = append(cfg.Edges, grid.Edge{From: "CORE", To: "GHOST", Type: grid.PathMain})
	bad := writeConfig(t, cfg, "bad.yaml")

	err := runCLI(t, "validate", bad)
	if !errors.Is(err, errors.ErrCodeUnknownTier) || !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("validate bad config = %v, want UNKNOWN_TIER and UNKNOWN_NODE", err)
	}

	// An unknown tier stays fatal under the lenient policy.
	if err := runCLI(t, "validate", "--lenient", bad); !errors.Is(err, errors.ErrCodeUnknownTier) {
		t.Errorf("validate --lenient = %v, want UNKNOWN_TIER", err)
	}
}

func TestIssueTable(t *testing.T) {
	out := issueTable(
		[]errors.Issue{{Code: errors.ErrCodeUnknownTier, Path: "nodes[1].tier", Message: `unknown tier "R999"`}},
		[]errors.Issue{{Code: errors.ErrCodeUnknownResource, Path: "nodes[2].requirements[0]", Message: "unknown resource"}},
	)
	for _, want := range []string{"Code", "UNKNOWN_TIER", "nodes[1].tier", "UNKNOWN_RESOURCE", iconError, iconWarning} {
		if !strings.Contains(out, want) {
			t.Errorf("issue table missing %q:\n%s", want, out)
		}
	}
}

func TestStatsLine(t *testing.T) {
	fresh := statsLine(24, 30, false)
	if !strings.Contains(fresh, "24 nodes") || !strings.Contains(fresh, "30 edges") || !strings.Contains(fresh, iconFresh) {
		t.Errorf("statsLine(fresh) = %q", fresh)
	}
	if cached := statsLine(1, 0, true); !strings.Contains(cached, iconCached) {
		t.Errorf("statsLine(cached) = %q", cached)
	}
}

func TestSampleAndInspectCommands(t *testing.T) {
	for _, f := range []string{"toml", "yaml", "json"} {
		if err := runCLI(t, "sample", "--format", f); err != nil {
			t.Errorf("sample --format %s: %v", f, err)
		}
	}
	if err := runCLI(t, "sample", "--format", "xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("sample --format xml = %v, want INVALID_FORMAT", err)
	}
	if err := runCLI(t, "inspect", "--list"); err != nil {
		t.Errorf("inspect --list: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		c := New(io.Discard, LogInfo)
		root := c.RootCommand()
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"completion", shell})
		if err := root.Execute(); err != nil {
			t.Fatalf("completion %s: %v", shell, err)
		}
		if !strings.Contains(buf.String(), appName) {
			t.Errorf("completion %s does not mention %s", shell, appName)
		}
	}
	if err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestFlagOrEnv(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.serveCommand()

	t.Setenv(envAddr, "")
	if got := flagOrEnv(cmd, "addr", envAddr); got != ":8080" {
		t.Errorf("default addr = %q", got)
	}

	t.Setenv(envRedis, "redis://env:6379/0")
	if got := flagOrEnv(cmd, "redis", envRedis); got != "redis://env:6379/0" {
		t.Errorf("env fallback = %q", got)
	}

	if err := cmd.Flags().Set("redis", "redis://flag:6379/1"); err != nil {
		t.Fatal(err)
	}
	if got := flagOrEnv(cmd, "redis", envRedis); got != "redis://flag:6379/1" {
		t.Errorf("explicit flag = %q", got)
	}
}

func TestServerCache(t *testing.T) {
	ctx := context.Background()
	c := New(io.Discard, LogInfo)
	c.cacheDir = t.TempDir()

	cc, err := c.serverCache(ctx, serveOptions{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("noCache backend = %T", cc)
	}

	cc, err = c.serverCache(ctx, serveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default backend = %T", cc)
	}

	mr := miniredis.RunT(t)
	cc, err = c.serverCache(ctx, serveOptions{redis: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatal(err)
	}
	defer cc.Close()
	if _, ok := cc.(*cache.RedisCache); !ok {
		t.Errorf("redis backend = %T", cc)
	}

	if _, err := c.serverCache(ctx, serveOptions{redis: "://bad"}); err == nil {
		t.Error("bad redis url should fail")
	}
}
