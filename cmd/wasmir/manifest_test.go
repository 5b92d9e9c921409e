package main

import (
	"os"
	"path/filepath"
	"testing"

	"wasmir/internal/opcode"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "wasmir.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"

[features]
enabled = ["simd", "bulk-memory"]
`)

	m, ok, err := loadManifest(dir)
	if err != nil || !ok {
		t.Fatalf("loadManifest = %v, %v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("package name = %q", m.Config.Package.Name)
	}

	enabled, err := m.enabledFeatures()
	if err != nil {
		t.Fatal(err)
	}
	if !enabled.Contains(opcode.FeatureSimd) || !enabled.Contains(opcode.FeatureBulkMemory) {
		t.Errorf("enabled = %v", enabled)
	}
	if enabled.Contains(opcode.FeatureThreads) {
		t.Error("threads should not be enabled")
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[features]\nenabled = []\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := loadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("loadManifest = %v, %v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	// An isolated temp dir has no manifest anywhere up to a root that
	// contains one only if the environment is polluted; tolerate that
	// by checking the not-found path from a freshly created subtree.
	dir := t.TempDir()
	_, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Skip("a wasmir.toml exists above the temp dir")
	}
}

func TestEnabledFeaturesRejectsUnknown(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[features]\nenabled = [\"warp-drive\"]\n")
	m, ok, err := loadManifest(dir)
	if err != nil || !ok {
		t.Fatalf("loadManifest = %v, %v", ok, err)
	}
	if _, err := m.enabledFeatures(); err == nil {
		t.Fatal("unknown feature name should be rejected")
	}
}
