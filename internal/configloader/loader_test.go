package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// projectDir returns a temp directory that is its own VCS root, so the
// upward config search never leaves it.
func projectDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		Getenv:             func(string) string { return "" },
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(projectDir(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != markdown.FormatHTML {
		t.Errorf("expected format html, got %q", result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdkit.yml"), `
format: text
extensions: [strikethrough]
html:
  unsafe: false
`)
	sub := filepath.Join(dir, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Format != markdown.FormatText {
		t.Errorf("expected format text, got %q", cfg.Format)
	}
	if !cfg.HasExtension("strikethrough") {
		t.Errorf("expected strikethrough, got %v", cfg.Extensions)
	}
	if cfg.HTMLOptions().Unsafe {
		t.Error("expected html.unsafe false")
	}
	if !cfg.HTMLOptions().XHTML {
		t.Error("expected default xhtml to survive the merge")
	}
	if len(result.LoadedFrom) != 1 || !strings.HasSuffix(result.LoadedFrom[0], ".gomdkit.yml") {
		t.Errorf("unexpected LoadedFrom %v", result.LoadedFrom)
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdkit.yml"), "format: text\ntext:\n  indent: 2\n  wrap_width: 60\n")
	explicit := filepath.Join(dir, "explicit.yml")
	writeFile(t, explicit, "text:\n  indent: 4\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit
	opts.Getenv = func(key string) string {
		if key == "GOMDKIT_TEXT_WRAP_WIDTH" {
			return "80"
		}
		return ""
	}
	opts.CLIConfig = &config.Config{Format: markdown.FormatHTML, Jobs: 3}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Format != markdown.FormatHTML {
		t.Errorf("CLI should win: got format %q", cfg.Format)
	}
	if cfg.Text.Indent != 4 {
		t.Errorf("explicit config should win over project: got indent %d", cfg.Text.Indent)
	}
	if cfg.Text.WrapWidth != 80 {
		t.Errorf("environment should win over files: got wrap width %d", cfg.Text.WrapWidth)
	}
	if cfg.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", cfg.Jobs)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected project and explicit configs, got %v", result.LoadedFrom)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := filepath.Join(dir, ".gomdkit.yml")
	writeFile(t, path, "format: pdf\nextensions: [tables]\n")

	_, err := Load(context.Background(), isolated(dir))
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	msg := err.Error()
	for _, want := range []string{path, "format", "tables"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdkit.yml"), "format: [unclosed\n")

	if _, err := Load(context.Background(), isolated(dir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingExplicit(t *testing.T) {
	t.Parallel()

	opts := isolated(projectDir(t))
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoad_DuplicateExtensionWarning(t *testing.T) {
	t.Parallel()

	opts := isolated(projectDir(t))
	opts.CLIConfig = &config.Config{Extensions: []string{"strike", "strikethrough"}}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "more than once") {
		t.Errorf("unexpected warnings %v", result.Warnings)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(t.TempDir())); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"GOMDKIT_FORMAT":           "text",
		"GOMDKIT_EXTENSIONS":       " strikethrough , heading-id ,",
		"GOMDKIT_HTML_UNSAFE":      "false",
		"GOMDKIT_HEADING_ID_STYLE": "slug",
		"GOMDKIT_JOBS":             "2",
		"GOMDKIT_OUT_DIR":          "site",
	}
	cfg := config.NewConfig()
	if err := loadFromEnv(cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("loadFromEnv() error = %v", err)
	}

	if cfg.Format != markdown.FormatText {
		t.Errorf("format = %q", cfg.Format)
	}
	if strings.Join(cfg.Extensions, ",") != "strikethrough,heading-id" {
		t.Errorf("extensions = %v", cfg.Extensions)
	}
	if cfg.HTML.Unsafe == nil || *cfg.HTML.Unsafe {
		t.Error("html.unsafe should be false")
	}
	if cfg.HeadingID.Style != "slug" || cfg.Jobs != 2 || cfg.OutDir != "site" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"GOMDKIT_HTML_UNSAFE": "maybe",
		"GOMDKIT_JOBS":        "many",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			err := loadFromEnv(config.NewConfig(), func(k string) string {
				if k == key {
					return value
				}
				return ""
			})
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error naming %s, got %v", key, err)
			}
		})
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for i, v := range vars {
		if !strings.HasPrefix(v.Name, EnvPrefix) || v.Description == "" {
			t.Errorf("bad entry %+v", v)
		}
		if i > 0 && vars[i-1].Name >= v.Name {
			t.Errorf("not sorted at %d", i)
		}
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	override := &config.Config{
		HTML:       config.HTMLConfig{XHTML: &off},
		Extensions: []string{"frontmatter"},
	}

	got := MergeAll(base, override)
	if *got.HTML.XHTML {
		t.Error("xhtml should be overridden")
	}
	if !*got.HTML.Unsafe {
		t.Error("unset unsafe must keep the base value")
	}
	if len(got.Ignore) != 1 {
		t.Error("nil slice must not clear ignore")
	}
	if len(got.Extensions) != 1 || got.Extensions[0] != "frontmatter" {
		t.Errorf("extensions = %v", got.Extensions)
	}
	if base.HTML.XHTML == got.HTML.XHTML {
		t.Error("merge must not alias the base config")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Format = "pdf"
	cfg.Extensions = []string{"tables"}
	cfg.Jobs = -1
	cfg.HeadingID.Style = "kebab"
	cfg.Ignore = []string{"["}

	result := Validate(cfg)
	if len(result.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(result.Errors), result.AllMessages())
	}
	if Validate(config.NewConfig()).Err() != nil {
		t.Error("defaults must validate")
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".gomdkit.yml"), "format: text\n")
	inner := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(inner, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := FindProjectConfig(context.Background(), inner)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("search crossed the VCS root: %s", path)
	}
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gomdkit.yml")
	content := config.GenerateTemplate(config.TemplateOptions{})
	if err := WriteConfig(context.Background(), path, content); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Format != markdown.FormatHTML {
		t.Errorf("format = %q", cfg.Format)
	}
}
