package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("Colour", "Ratio")
	table.AddRow("#777777", "4.48:1")
	table.AddRow("#000000", "21.00:1")

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("Render() produced %d lines, want 4:\n%s", len(lines), got)
	}
	if lines[0] != "Colour   Ratio" {
		t.Errorf("header = %q, want %q", lines[0], "Colour   Ratio")
	}
	if !strings.HasPrefix(lines[1], "-------") {
		t.Errorf("separator = %q, want dashes", lines[1])
	}
	// Column width follows the widest cell, not the header.
	if lines[2] != "#777777  4.48:1" {
		t.Errorf("row = %q, want %q", lines[2], "#777777  4.48:1")
	}
}

func TestTableRenderTrimsTrailingSpace(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("x", "")
	table.AddRow("longer", "y")

	for i, line := range strings.Split(table.Render(), "\n") {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %d has trailing whitespace: %q", i, line)
		}
	}
}

func TestTableAddRowShortRow(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.AddRow("only")

	got := table.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("Render() missing cell content:\n%s", got)
	}
	if lines := strings.Split(strings.TrimRight(got, "\n"), "\n"); len(lines) != 3 {
		t.Errorf("Render() produced %d lines, want 3", len(lines))
	}
}

func TestTableDisplayWidthOverride(t *testing.T) {
	table := NewTable("Swatch", "Name")
	table.SetColumnDisplayWidth(0, 10)
	table.AddRow("\x1b[48;2;0;0;0m      \x1b[0m", "black")

	got := table.Render()
	// The separator reflects the display width, not the escaped length.
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[1], strings.Repeat("-", 10)) {
		t.Errorf("separator = %q, want at least 10 dashes for the swatch column", lines[1])
	}
}

func TestYesNo(t *testing.T) {
	if got := yesNo(true); got != "yes" {
		t.Errorf("yesNo(true) = %q, want %q", got, "yes")
	}
	if got := yesNo(false); got != "no" {
		t.Errorf("yesNo(false) = %q, want %q", got, "no")
	}
}
