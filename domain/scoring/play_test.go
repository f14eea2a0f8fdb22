package scoring

import (
	"slices"
	"testing"

	"github.com/luca-patrignani/cribbage/domain/card"
)

func pegging(piles ...[]string) Pegging {
	p := Pegging{}
	for _, ids := range piles {
		p.Piles = append(p.Piles, card.MustParse(ids...))
	}
	return p
}

func TestScoreCard(t *testing.T) {
	tests := []struct {
		name   string
		peg    Pegging
		points int
		events []string
	}{
		{"fifteen", pegging([]string{"7S", "8D"}), 2, []string{"15 for 2"}},
		{"pair", pegging([]string{"9S", "9D"}), 2, []string{"Pair of 2 for 2"}},
		{"pair royal and fifteen", pegging([]string{"5S", "5D", "5C"}), 8, []string{"15 for 2", "Pair of 3 for 6"}},
		{"double pair royal", pegging([]string{"2S", "2D", "2C", "2H"}), 12, []string{"Pair of 4 for 12"}},
		{"broken pair", pegging([]string{"9S", "9D", "1C", "9H"}), 0, nil},
		{"run of three out of order", pegging([]string{"3S", "5D", "4C"}), 3, []string{"Run of 3 for 3"}},
		{"run of four", pegging([]string{"3S", "5D", "4C", "6H"}), 4, []string{"Run of 4 for 4"}},
		{"run of three behind older card", pegging([]string{"KS", "3S", "5D", "4C"}), 3, []string{"Run of 3 for 3"}},
		{"no run", pegging([]string{"1S", "5D", "8C"}), 0, nil},
		{"thirty one", pegging([]string{"TS", "TD", "TC", "1H"}), 2, []string{"31 for 2"}},
		{"empty pile", Pegging{}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreCard(tt.peg)
			if r.Points != tt.points {
				t.Fatalf("expected %d points, got %d (%v)", tt.points, r.Points, r.Events)
			}
			if !slices.Equal(r.Events, tt.events) {
				t.Fatalf("expected events %v, got %v", tt.events, r.Events)
			}
		})
	}
}

func TestScoreRunPlay_WindowStopsAtRepeatedRank(t *testing.T) {
	// Reading 4, 2, 3 then the repeated 2 ends the four-card window with three
	// contiguous distinct ranks, which scores the window length.
	r := ScoreRun(card.MustParse("2S", "3D", "2C", "4H"), Play)
	if r.Points != 4 {
		t.Fatalf("expected 4, got %d (%v)", r.Points, r.Events)
	}
}

func TestScoreRunPlay_StopsBelowThreeDistinct(t *testing.T) {
	// The full window collapses to {6, 5} so shorter windows are not tried.
	r := ScoreRun(card.MustParse("3S", "4D", "5C", "6S", "5H"), Play)
	if r.Points != 0 {
		t.Fatalf("expected 0, got %d (%v)", r.Points, r.Events)
	}
}

func TestScorePairPlay_OnlyTrailing(t *testing.T) {
	r := ScorePair(card.MustParse("7S", "7D", "8C"), Play)
	if r.Points != 0 {
		t.Fatalf("expected 0, got %d", r.Points)
	}
}

func TestScore15Play_WholePile(t *testing.T) {
	if r := Score15(card.MustParse("5S", "KD", "2C"), Play); r.Points != 0 {
		t.Fatalf("expected 0 for total 17, got %d", r.Points)
	}
	if r := Score15(card.MustParse("2S", "3D", "KC"), Play); r.Points != 2 {
		t.Fatalf("expected 2 for total 15, got %d", r.Points)
	}
}

func TestScoreLast(t *testing.T) {
	tests := []struct {
		name   string
		peg    Pegging
		points int
	}{
		{"last card", pegging([]string{"TS", "9D", "8C", "2H"}, []string{"5S", "5D", "3C", "1H"}), 1},
		{"closing thirty one", pegging([]string{"TS", "TD", "5C"}, []string{"KS", "QD", "1H", "7C", "3H"}), 0},
		{"cards left", pegging([]string{"TS", "9D", "8C", "2H"}, []string{"5S", "5D", "3C"}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := ScoreLast(tt.peg); r.Points != tt.points {
				t.Fatalf("expected %d, got %d", tt.points, r.Points)
			}
		})
	}
}

func TestScoreLastExcludesThirtyOne(t *testing.T) {
	peg := pegging([]string{"TS", "TD", "5C"}, []string{"KS", "QD", "1H", "7C", "3H"})
	r := ScoreCard(peg)
	if r.Points != 2 || !slices.Equal(r.Events, []string{"31 for 2"}) {
		t.Fatalf("expected only 31 for 2, got %d %v", r.Points, r.Events)
	}

	peg = pegging([]string{"TS", "9D", "8C", "2H"}, []string{"5S", "5D", "3C", "1H"})
	r = ScoreCard(peg)
	if r.Points != 1 || !slices.Equal(r.Events, []string{"Last card for 1"}) {
		t.Fatalf("expected only last card for 1, got %d %v", r.Points, r.Events)
	}
}

func TestScoreGo(t *testing.T) {
	for _, caller := range []Seat{First, Second} {
		seat, r := ScoreGo(caller)
		if seat == caller {
			t.Fatalf("caller %d must not score the GO", caller)
		}
		if r.Points != 1 || r.Events[0] != "1 for GO" {
			t.Fatalf("unexpected GO result %+v", r)
		}
	}
}

func TestPeggingCounters(t *testing.T) {
	p := pegging([]string{"TS", "TD", "TC", "1H"}, []string{"5S", "4D"})
	if p.Played() != 6 {
		t.Fatalf("expected 6 played, got %d", p.Played())
	}
	if p.Count() != 9 {
		t.Fatalf("expected count 9, got %d", p.Count())
	}
}

func TestBoard(t *testing.T) {
	var b Board
	if _, ok := b.Winner(); ok {
		t.Fatal("expected no winner on an empty board")
	}
	b.Peg(Second, Result{Points: 120})
	if _, ok := b.Winner(); ok {
		t.Fatal("expected no winner at 120")
	}
	seat, r := ScoreGo(First)
	if total := b.Peg(seat, r); total != 121 {
		t.Fatalf("expected 121, got %d", total)
	}
	if w, ok := b.Winner(); !ok || w != Second {
		t.Fatalf("expected Second to win, got %d %v", w, ok)
	}
}
