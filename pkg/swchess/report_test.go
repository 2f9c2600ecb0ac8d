package swchess_test

import (
	"strings"
	"testing"

	swchess "swchess/pkg/swchess"
)

func TestMaterial(t *testing.T) {
	_, counts := swchess.Load(strings.NewReader("k e 6 q d 6 p a 5 p b 5 K e 0 R a 0 N b 0 B c 0"))
	if got, want := counts.Material(swchess.White), 20000+900+200; got != want {
		t.Fatalf("white material: got %d want %d", got, want)
	}
	if got, want := counts.Material(swchess.Black), 20000+500+320+330; got != want {
		t.Fatalf("black material: got %d want %d", got, want)
	}
	if got := counts.Standing(); got != swchess.StandingBlack {
		t.Fatalf("standing: got %s want BLACK", got)
	}
}

func TestStandingEven(t *testing.T) {
	_, counts := swchess.Load(strings.NewReader("n a 5 B a 0"))
	// 320 vs 330
	if got := counts.Standing(); got != swchess.StandingBlack {
		t.Fatalf("standing: got %s", got)
	}
	_, counts = swchess.Load(strings.NewReader("r a 5 R a 0"))
	if got := counts.Standing(); got != swchess.StandingEven {
		t.Fatalf("standing: got %s want NONE", got)
	}
	var empty swchess.Counts
	if got := empty.Standing(); got != swchess.StandingEven {
		t.Fatalf("empty standing: got %s", got)
	}
}

func TestStatusFromKings(t *testing.T) {
	tests := []struct {
		white, black int32
		want         swchess.Status
	}{
		{1, 1, swchess.StatusOngoing},
		{0, 1, swchess.StatusBlackWin},
		{1, 0, swchess.StatusWhiteWin},
		{0, 0, swchess.StatusNone},
		{2, 1, swchess.StatusNone},
		{1, 2, swchess.StatusNone},
		{2, 0, swchess.StatusNone},
	}
	for _, tc := range tests {
		counts := swchess.BoardRecord{WhiteKing: tc.white, BlackKing: tc.black}.Counts()
		if got := counts.Status(); got != tc.want {
			t.Fatalf("kings %d/%d: got %v want %v", tc.white, tc.black, got, tc.want)
		}
	}
	if swchess.StatusNone.String() != "" {
		t.Fatal("StatusNone should have no text")
	}
}
