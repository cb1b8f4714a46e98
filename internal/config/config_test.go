package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chdir is a stand-in for testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func sampleConfig() *WeldConfig {
	return &WeldConfig{
		Targets: []string{"COCOHUE"},
		Apps:    []string{"app.groovy"},
		Drivers: []string{"bridge.groovy"},
		Libraries: map[string]string{
			"RMoRobert.CoCoHue_Common_Lib": "common.groovy",
		},
		Constants: map[string]map[string]string{
			"__APP_NAME__": {"COCOHUE": "CoCoHue - Hue Bridge Integration"},
		},
		OutputDir: "full/cocohue",
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	want := sampleConfig()
	if err := WriteConfig(want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	got, err := ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	chdir(t, nested)

	got, err := FindConfigPath()
	if err != nil {
		t.Fatalf("FindConfigPath: %v", err)
	}
	// Resolve symlinks: on some systems TempDir paths differ from Getwd
	wantReal, _ := filepath.EvalSymlinks(filepath.Join(root, FileName))
	gotReal, _ := filepath.EvalSymlinks(got)
	if gotReal != wantReal {
		t.Errorf("FindConfigPath = %q, want %q", got, wantReal)
	}
}

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(cfgPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveConfigPath(dir)
	if err != nil {
		t.Fatalf("ResolveConfigPath(dir): %v", err)
	}
	if got != cfgPath {
		t.Errorf("ResolveConfigPath(dir) = %q, want %q", got, cfgPath)
	}

	got, err = ResolveConfigPath(cfgPath)
	if err != nil {
		t.Fatalf("ResolveConfigPath(file): %v", err)
	}
	if got != cfgPath {
		t.Errorf("ResolveConfigPath(file) = %q, want %q", got, cfgPath)
	}

	if _, err := ResolveConfigPath(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for nonexistent path")
	}
}

type validateTest struct {
	name    string
	mutate  func(*WeldConfig)
	wantErr string
}

var validateTests = []validateTest{
	{
		"valid config",
		func(c *WeldConfig) {},
		"",
	},
	{
		"no targets",
		func(c *WeldConfig) { c.Targets = nil },
		"no targets defined",
	},
	{
		"duplicate target",
		func(c *WeldConfig) { c.Targets = []string{"COCOHUE", "COCOHUE"} },
		"duplicate target COCOHUE",
	},
	{
		"empty target name",
		func(c *WeldConfig) { c.Targets = []string{""} },
		"empty target name",
	},
	{
		"empty app entry",
		func(c *WeldConfig) { c.Apps = []string{""} },
		"empty app file name",
	},
	{
		"empty driver entry",
		func(c *WeldConfig) { c.Drivers = []string{""} },
		"empty driver file name",
	},
	{
		"library without path",
		func(c *WeldConfig) { c.Libraries["Broken.Lib"] = "" },
		"library Broken.Lib has no file path",
	},
	{
		"constant missing a target value",
		func(c *WeldConfig) { c.Targets = append(c.Targets, "HUEB") },
		"constant __APP_NAME__ has no value for target HUEB",
	},
}

func TestValidate(t *testing.T) {
	for _, tt := range validateTests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestHasTarget(t *testing.T) {
	cfg := sampleConfig()
	if !cfg.HasTarget("COCOHUE") {
		t.Error("HasTarget(COCOHUE) = false")
	}
	if cfg.HasTarget("NOPE") {
		t.Error("HasTarget(NOPE) = true")
	}
}
