package swchess_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	swchess "swchess/pkg/swchess"
)

const initialBoardText = `*-------------------------*
*   abcdefgh              *
*  +--------+             *
* 0|RNBKQBNR|             *
* 1|PPPPPPPP|             *
* 2|        |             *
* 3|        |             *
* 4|        |             *
* 5|        |             *
* 6|pppppppp|             *
* 7|rnbkqbnr|             *
*  +--------+             *
`

func TestRenderInitialBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := swchess.RenderBoard(&buf, swchess.InitialBoard()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != initialBoardText {
		t.Fatalf("unexpected board:\n%s\nwant:\n%s", got, initialBoardText)
	}
}

func TestRenderLoadedBoard(t *testing.T) {
	board, _ := swchess.Load(strings.NewReader("P a 0\nP b 0\np a 6"))
	var buf bytes.Buffer
	if err := swchess.RenderBoard(&buf, board); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `*-------------------------*
*   abcdefgh              *
*  +--------+             *
* 0|PP      |             *
* 1|        |             *
* 2|        |             *
* 3|        |             *
* 4|        |             *
* 5|        |             *
* 6|p       |             *
* 7|        |             *
*  +--------+             *
`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected board:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderReportWithoutKings(t *testing.T) {
	_, counts := swchess.Load(strings.NewReader("P a 0\nP b 0\np a 6"))
	var buf bytes.Buffer
	if err := swchess.RenderReport(&buf, counts); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `*-------------------------*
* Black pawns:   2        *
* Black rooks:   0        *
* Black knights: 0        *
* Black bishops: 0        *
* Black queen:   0        *
* Black king:    0        *
* White pawns:   1        *
* White rooks:   0        *
* White knights: 0        *
* White bishops: 0        *
* White queen:   0        *
* White king:    0        *
* Who is winning?: BLACK  *
`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderReportStatusLine(t *testing.T) {
	tests := []struct {
		input    string
		status   string
		standing string
	}{
		{"k e 6 K e 0", "* Result: ON GOING GAME   *\n", "* Who is winning?: NONE   *\n"},
		{"K e 0", "* Result: BLACK WIN       *\n", "* Who is winning?: BLACK  *\n"},
		{"k e 6", "* Result: WHITE WIN       *\n", "* Who is winning?: WHITE  *\n"},
	}
	for _, tc := range tests {
		_, counts := swchess.Load(strings.NewReader(tc.input))
		var buf bytes.Buffer
		if err := swchess.RenderReport(&buf, counts); err != nil {
			t.Fatalf("render: %v", err)
		}
		got := buf.String()
		if !strings.HasSuffix(got, tc.status+tc.standing) {
			t.Fatalf("%q: report ends with\n%s", tc.input, got[len(got)-56:])
		}
	}
}

func TestRenderReportFromFile(t *testing.T) {
	res, err := swchess.LoadFile(filepath.Join("testdata", "mixed.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var buf bytes.Buffer
	if err := swchess.RenderReport(&buf, res.Counts); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range []string{
		"* Black rooks:   2        *\n",
		"* Black bishops: 2        *\n",
		"* White knights: 2        *\n",
		"* Result: ON GOING GAME   *\n",
		"* Who is winning?: BLACK  *\n",
	} {
		if !strings.Contains(buf.String(), line) {
			t.Fatalf("report missing %q:\n%s", line, buf.String())
		}
	}
}
