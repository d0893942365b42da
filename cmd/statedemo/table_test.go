package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTable_AlignsWideRunes(t *testing.T) {
	tbl := newTable("name", "note")
	tbl.add("りんご", "wide")
	tbl.add("pear", "narrow")

	var buf bytes.Buffer
	if err := tbl.render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	col := -1
	for _, line := range lines {
		idx := strings.LastIndex(line, "  ")
		w := runewidth.StringWidth(line[:idx])
		if col == -1 {
			col = w
			continue
		}
		if w != col {
			t.Fatalf("expected second column at width %d, got %d in %q", col, w, line)
		}
	}
}
