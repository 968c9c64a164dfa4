package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptIntRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n-5\n0\n800\n")
	var out bytes.Buffer

	got, err := promptInt(bufio.NewScanner(in), &out, "Image width", 1)
	if err != nil {
		t.Fatalf("promptInt: %v", err)
	}
	if got != 800 {
		t.Errorf("promptInt = %d, want 800", got)
	}
	if n := strings.Count(out.String(), "error:"); n != 3 {
		t.Errorf("expected 3 rejection messages, got %d in: %s", n, out.String())
	}
}

func TestPromptIntEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := promptInt(bufio.NewScanner(strings.NewReader("")), &out, "Samples", 1)
	if !errors.Is(err, io.EOF) {
		t.Errorf("promptInt on empty input = %v, want io.EOF", err)
	}
}

func TestParseTransformSelection(t *testing.T) {
	names, ok := parseTransformSelection("0, 3,5", 6)
	if !ok {
		t.Fatal("selection should parse")
	}
	want := []string{"spherical", "linear", "fish"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	for _, bad := range []string{"", "6", "-1", "0,x", "0;1"} {
		if _, ok := parseTransformSelection(bad, 6); ok {
			t.Errorf("selection %q should be rejected", bad)
		}
	}
}

func TestPromptConfig(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"800",
		"600",
		"100000",
		"50",
		"9",    // invalid index, re-asked
		"0,2",  // spherical, swirl
		"y",
		"4",
	}, "\n") + "\n")
	var out bytes.Buffer

	cfg, err := promptConfig(in, &out)
	if err != nil {
		t.Fatalf("promptConfig: %v", err)
	}

	if cfg.Width != 800 || cfg.Height != 600 || cfg.Samples != 100000 || cfg.Iterations != 50 {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.Transforms) != 2 || cfg.Transforms[0] != "spherical" || cfg.Transforms[1] != "swirl" {
		t.Errorf("transforms = %v, want [spherical swirl]", cfg.Transforms)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("prompted config should validate, got: %v", err)
	}
}

func TestPromptConfigSingleThreaded(t *testing.T) {
	in := strings.NewReader("10\n10\n1000\n5\n3\nn\n")
	var out bytes.Buffer

	cfg, err := promptConfig(in, &out)
	if err != nil {
		t.Fatalf("promptConfig: %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("workers = %d, want 1 when declining multiple workers", cfg.Workers)
	}
	if len(cfg.Transforms) != 1 || cfg.Transforms[0] != "linear" {
		t.Errorf("transforms = %v, want [linear]", cfg.Transforms)
	}
}

func TestPromptConfigEOFMidway(t *testing.T) {
	in := strings.NewReader("800\n600\n")
	var out bytes.Buffer

	if _, err := promptConfig(in, &out); !errors.Is(err, io.EOF) {
		t.Errorf("promptConfig on truncated input = %v, want io.EOF", err)
	}
}
