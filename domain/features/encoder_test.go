package features

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/cribbage/domain/card"
	"github.com/luca-patrignani/cribbage/domain/scoring"
)

func ones(v []float64) []int {
	var idx []int
	for i, x := range v {
		if x == 1 {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestEncodeCard(t *testing.T) {
	tests := []struct {
		id   string
		want [2]int
	}{
		{"1S", [2]int{0, 13}},
		{"TD", [2]int{9, 14}},
		{"KH", [2]int{12, 16}},
		{"5C", [2]int{4, 15}},
	}
	for _, tt := range tests {
		v, err := EncodeCard(card.MustParse(tt.id)[0])
		if err != nil {
			t.Fatal(err)
		}
		got := ones(v[:])
		if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("%s: expected bits %v, got %v", tt.id, tt.want, got)
		}
	}
	if _, err := EncodeCard(card.Card{}); !errors.Is(err, card.ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestDiscardState_Encode(t *testing.T) {
	s := DiscardState{
		Score:         242,
		OpponentScore: 11,
		Dealer:        true,
		Hand:          card.MustParse("5S", "5D", "5C", "5H", "JS", "QS"),
	}
	v, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != DiscardWidth || DiscardWidth != 105 {
		t.Fatalf("expected 105 values, got %d", len(v))
	}
	if v[0] != 1 {
		t.Errorf("expected score capped at 1, got %v", v[0])
	}
	if v[1] != 11.0/121 {
		t.Errorf("expected %v, got %v", 11.0/121, v[1])
	}
	if v[2] != 1 {
		t.Errorf("expected dealer bit, got %v", v[2])
	}
	// 5S sits in the first slot
	if v[3+4] != 1 || v[3+13] != 1 {
		t.Errorf("unexpected first slot %v", v[3:3+CardWidth])
	}
}

func TestDiscardState_ShortHandIsPadded(t *testing.T) {
	v, err := DiscardState{Hand: card.MustParse("5S")}.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != DiscardWidth {
		t.Fatalf("expected %d values, got %d", DiscardWidth, len(v))
	}
	if n := len(ones(v)); n != 2 {
		t.Fatalf("expected 2 set bits, got %d", n)
	}
}

func TestDiscardState_TooManyCards(t *testing.T) {
	s := DiscardState{Hand: card.MustParse("1S", "2S", "3S", "4S", "5S", "6S", "7S")}
	if _, err := s.Encode(); !errors.Is(err, ErrTooManyCards) {
		t.Fatalf("expected ErrTooManyCards, got %v", err)
	}
}

func TestPeggingState_Encode(t *testing.T) {
	b := scoring.Board{Points: [2]int{30, 60}}
	p := scoring.Pegging{Piles: [][]card.Card{
		card.MustParse("TS", "JD", "1C", "KH"),
		card.MustParse("5S", "4D"),
	}}
	starter := card.MustParse("2C")[0]
	hand := card.MustParse("6H", "7H")

	s := NewPeggingState(b, scoring.Second, scoring.First, p, starter, hand)
	if s.Score != 60 || s.OpponentScore != 30 || s.Dealer || s.Count != 9 || len(s.Pile) != 2 {
		t.Fatalf("unexpected state %+v", s)
	}

	v, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != PeggingWidth || PeggingWidth != 208 {
		t.Fatalf("expected 208 values, got %d", len(v))
	}
	if v[3] != 9.0/31 {
		t.Errorf("expected count %v, got %v", 9.0/31, v[3])
	}
	// two pile cards, the starter and two hand cards
	if n := len(ones(v)); n != 2*5 {
		t.Fatalf("expected 10 set bits, got %d", n)
	}
	starterAt := 4 + pileSlots*CardWidth
	if v[starterAt+1] != 1 || v[starterAt+13+card.Club] != 1 {
		t.Errorf("unexpected starter slot %v", v[starterAt:starterAt+CardWidth])
	}
}

func TestPeggingState_Errors(t *testing.T) {
	s := PeggingState{
		Pile:    card.MustParse("1S", "1D", "1C", "1H", "2S", "2D", "2C", "2H"),
		Starter: card.Card{},
		Hand:    card.MustParse("3S"),
	}
	_, err := s.Encode()
	if !errors.Is(err, ErrTooManyCards) {
		t.Errorf("expected ErrTooManyCards, got %v", err)
	}
	if !errors.Is(err, card.ErrInvalidCard) {
		t.Errorf("expected ErrInvalidCard, got %v", err)
	}
}
