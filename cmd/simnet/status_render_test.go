package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Corpus root", statusError, "not found", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Corpus root:", "[ERROR] not found")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Output directory", statusOK, "ready", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Networks ", false)
	if len(lines) != 2 || lines[0] != "== Networks ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Model", "Edges"}, [][]string{{"exact"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "│ Model │ Edges │") {
		t.Fatalf("expected headers as given, got %q", out)
	}
	if !strings.Contains(out, "│ exact │       │") {
		t.Fatalf("expected short row padded with an empty cell, got %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatalf("expected empty table without headers")
	}
}
