package swchess_test

import (
	"path/filepath"
	"strings"
	"testing"

	swchess "swchess/pkg/swchess"
)

func TestBoardFEN(t *testing.T) {
	mixed, err := swchess.LoadFile(filepath.Join("testdata", "mixed.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	scenario, _ := swchess.Load(strings.NewReader("P a 0\nP b 0\np a 6"))

	tests := []struct {
		name  string
		board swchess.Board
		want  string
	}{
		{"empty", swchess.Board{}, "8/8/8/8/8/8/8/8"},
		{"initial", swchess.InitialBoard(), "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR"},
		{"scenario", scenario, "pp6/8/8/8/8/8/P7/8"},
		{"mixed", mixed.Board, "r1bqkb1r/8/8/8/8/1N4N1/3QK3/8"},
	}
	for _, tc := range tests {
		if got := tc.board.FEN(); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}
