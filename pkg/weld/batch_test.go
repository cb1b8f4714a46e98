package weld

import (
	"encoding/json"
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

// writeProjectFiles lays out the app, driver, and library fragments under the
// current directory.
func writeProjectFiles(t *testing.T) {
	t.Helper()
	for _, d := range []string{"apps", "drivers", "libraries"} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}

	writeFile(t, filepath.Join("apps", "app.groovy"), lines(
		"title: \"__APP_NAME__\"",
		"#include RMoRobert.CoCoHue_Common_Lib",
	))
	writeFile(t, filepath.Join("drivers", "bridge.groovy"), lines("bridge __DNI_PREFIX__"))
	writeFile(t, filepath.Join("drivers", "bulb.groovy"), lines("bulb __DNI_PREFIX__"))
	writeFile(t, filepath.Join("libraries", "common.groovy"), lines("common __NAMESPACE__"))
}

// setupProject chdirs into a temp dir and lays out a small project on disk.
func setupProject(t *testing.T) *Weld {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	writeProjectFiles(t)

	cfg := testConfig()
	cfg.Apps = []string{"app.groovy"}
	cfg.Drivers = []string{"bridge.groovy", "bulb.groovy"}
	cfg.OutputDir = filepath.Join("full", "bundle")
	return NewWithConfig(cfg)
}

// setupDiskProject lays out a full project including its weld.json in a temp
// dir, leaves the working directory there, and returns the project dir.
func setupDiskProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	writeProjectFiles(t)

	cfg := &Config{
		Targets: []string{"COCOHUE"},
		Apps:    []string{"app.groovy"},
		Drivers: []string{"bridge.groovy", "bulb.groovy"},
		Libraries: map[string]string{
			"RMoRobert.CoCoHue_Common_Lib": "common.groovy",
		},
		Constants: map[string]map[string]string{
			"__APP_NAME__":   {"COCOHUE": "CoCoHue - Hue Bridge Integration"},
			"__DNI_PREFIX__": {"COCOHUE": "CCH"},
			"__NAMESPACE__":  {"COCOHUE": "RMoRobert"},
		},
		OutputDir: filepath.Join("full", "bundle"),
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, "weld.json", string(b))
	return dir
}

func TestProcessAll(t *testing.T) {
	w := setupProject(t)

	count, err := w.ProcessAll("COCOHUE", nil)
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}
	if count != 3 {
		t.Errorf("processed %d files, want 3", count)
	}

	wantApp := lines("title: \"CoCoHue - Hue Bridge Integration\"") +
		"\n\n// ~~~ IMPORTED FROM RMoRobert.CoCoHue_Common_Lib ~~~\n" +
		lines("common RMoRobert")
	if diff := cmp.Diff(wantApp, readFile(t, filepath.Join("full", "bundle", "app.groovy"))); diff != "" {
		t.Errorf("app output mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(lines("bridge CCH"), readFile(t, filepath.Join("full", "bundle", "bridge.groovy"))); diff != "" {
		t.Errorf("driver output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(lines("bulb CCH"), readFile(t, filepath.Join("full", "bundle", "bulb.groovy"))); diff != "" {
		t.Errorf("driver output mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessAllUnknownTarget(t *testing.T) {
	w := setupProject(t)

	count, err := w.ProcessAll("NOPE", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Fatalf("expected unknown-target error, got %v", err)
	}
	if count != 0 {
		t.Errorf("processed %d files, want 0", count)
	}
	if _, err := os.Stat(filepath.Join("full", "bundle")); !os.IsNotExist(err) {
		t.Error("output directory created despite unknown target")
	}
}

func TestProcessAllAbortsOnFirstError(t *testing.T) {
	w := setupProject(t)
	if err := os.Remove(filepath.Join("drivers", "bulb.groovy")); err != nil {
		t.Fatal(err)
	}

	count, err := w.ProcessAll("COCOHUE", nil)
	if err == nil {
		t.Fatal("expected error for missing driver source")
	}
	if count != 2 {
		t.Errorf("processed %d files before abort, want 2", count)
	}

	// Earlier outputs are left on disk, no rollback
	if _, err := os.Stat(filepath.Join("full", "bundle", "bridge.groovy")); err != nil {
		t.Errorf("earlier output missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join("full", "bundle", "bulb.groovy")); !os.IsNotExist(err) {
		t.Error("output exists for the failed file")
	}
}

func TestProcessAppsAndDriversSeparately(t *testing.T) {
	w := setupProject(t)

	appCount, err := w.ProcessApps("COCOHUE", nil)
	if err != nil {
		t.Fatalf("ProcessApps: %v", err)
	}
	if appCount != 1 {
		t.Errorf("ProcessApps count = %d, want 1", appCount)
	}

	driverCount, err := w.ProcessDrivers("COCOHUE", nil)
	if err != nil {
		t.Fatalf("ProcessDrivers: %v", err)
	}
	if driverCount != 2 {
		t.Errorf("ProcessDrivers count = %d, want 2", driverCount)
	}
}

func TestProcessAllFromSubdirectory(t *testing.T) {
	dir := setupDiskProject(t)

	// Config discovery walks up from a nested directory; sources and
	// outputs must still resolve against the project root.
	nested := filepath.Join(dir, "work", "sub")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	count, err := w.ProcessAll("COCOHUE", nil)
	if err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}
	if count != 3 {
		t.Errorf("processed %d files, want 3", count)
	}

	got := readFile(t, filepath.Join(dir, "full", "bundle", "bridge.groovy"))
	if diff := cmp.Diff(lines("bridge CCH"), got); diff != "" {
		t.Errorf("driver output mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(nested, "full")); !os.IsNotExist(err) {
		t.Error("output directory created under the working directory instead of the project root")
	}
}

func TestProcessAllRawLibraries(t *testing.T) {
	w := setupProject(t)

	if _, err := w.ProcessAll("COCOHUE", &Options{RawLibraries: true}); err != nil {
		t.Fatalf("ProcessAll: %v", err)
	}

	got := readFile(t, filepath.Join("full", "bundle", "app.groovy"))
	if !strings.Contains(got, "common __NAMESPACE__") {
		t.Errorf("library content was preprocessed despite RawLibraries:\n%s", got)
	}
}
