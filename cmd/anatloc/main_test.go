package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/store"
	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

func run(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(cfg)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func defaultConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := ParseEnvFrom(map[string]string{})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func writeDoc(t *testing.T, dir, name string) string {
	t.Helper()
	electrodes := table.NewEmpty("electrodes", "", 2)
	space := anatloc.AllenCCFv3Space("")
	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name: "coords", Space: space, Method: "histology", Target: electrodes,
	})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := tbl.AddRow(anatloc.CoordinateRow{X: 1, Y: 2, Z: 3, BrainRegion: "CA1", Entity: i}); err != nil {
			t.Fatalf("row: %v", err)
		}
	}
	loc := anatloc.NewLocalization("")
	_ = loc.AddSpace(space)
	_ = loc.AddTable(tbl)
	path := filepath.Join(dir, name)
	f := &store.File{Identifier: "cli", Tables: []*table.Table{electrodes}, Localization: loc}
	if err := store.WriteFile(context.Background(), path, f); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestParseEnvFrom(t *testing.T) {
	cfg := defaultConfig(t)
	if cfg.Lang != "en" || cfg.LogLevel != slog.LevelInfo || cfg.Format != "json" {
		t.Fatalf("defaults: %+v", cfg)
	}
	cfg, err := ParseEnvFrom(map[string]string{
		"ANATLOC_LANG":      "ja",
		"ANATLOC_LOG_LEVEL": "debug",
		"ANATLOC_FORMAT":    "yaml",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Lang != "ja" || cfg.LogLevel != slog.LevelDebug || cfg.Format != "yaml" {
		t.Fatalf("parsed: %+v", cfg)
	}
	if _, err := ParseEnvFrom(map[string]string{"ANATLOC_LOG_LEVEL": "loud"}); err == nil {
		t.Fatalf("expected bad level error")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	in := `{"namespace":"ndx-anatomical-localization","version":"0.1.0","identifier":"x",
"localization":{"neurodata_type":"Localization","name":"localization","spaces":[{
"object_id":"0b7c5a3e-8f39-4f7e-9d1b-2f0c6f1d8a11","neurodata_type":"Space","name":"s","space_name":"s",
"orientation":"RAS","extent":[1,2]}]}}`
	if err := os.WriteFile(bad, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, defaultConfig(t), "validate", good)
	if err != nil || !strings.Contains(out, "good.json: ok") {
		t.Fatalf("good: %v %q", err, out)
	}
	out, err = run(t, defaultConfig(t), "validate", good, bad)
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	want := "bad.json: /localization/spaces/0/extent: extent must be 3 positive numbers [invalid_extent]"
	if !strings.Contains(out, want) {
		t.Fatalf("output %q missing %q", out, want)
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeDoc(t, dir, "in.json")
	out := filepath.Join(dir, "out.yaml")
	if _, err := run(t, defaultConfig(t), "convert", in, out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	f, err := store.ReadFile(context.Background(), out)
	if err != nil {
		t.Fatalf("read converted: %v", err)
	}
	if f.Identifier != "cli" || f.Localization.Table("coords").Method != "histology" {
		t.Fatalf("unexpected: %+v", f)
	}

	cfg := defaultConfig(t)
	cfg.Format = "yaml"
	stdout, err := run(t, cfg, "convert", in, "-")
	if err != nil || !strings.HasPrefix(stdout, "namespace: ndx-anatomical-localization\n") {
		t.Fatalf("stdout: %v %q", err, stdout)
	}
}

func TestSchema(t *testing.T) {
	out, err := run(t, defaultConfig(t), "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.Contains(out, `"$schema": "https://json-schema.org/draft/2020-12/schema"`) {
		t.Fatalf("unexpected: %s", out)
	}
}

func TestSpaces(t *testing.T) {
	out, err := run(t, defaultConfig(t), "spaces")
	if err != nil {
		t.Fatalf("spaces: %v", err)
	}
	for _, want := range []string{"AllenCCFv3", "CCFv3", "ASL", "13200x8000x11400"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestOrientation(t *testing.T) {
	out, err := run(t, defaultConfig(t), "orientation", "RAS")
	if err != nil {
		t.Fatalf("orientation: %v", err)
	}
	if !strings.Contains(out, "x: +right (LR)") || !strings.Contains(out, "z: +superior (SI)") {
		t.Fatalf("unexpected: %q", out)
	}
	if _, err := run(t, defaultConfig(t), "orientation", "RAD"); !anatloc.HasCode(err, anatloc.CodeOrientationLetter) {
		t.Fatalf("expected letter issue, got %v", err)
	}
	out, err = run(t, defaultConfig(t), "orientation", "--legacy", "RAD")
	if err != nil || !strings.HasPrefix(out, "RAS\n") {
		t.Fatalf("legacy: %v %q", err, out)
	}
}
