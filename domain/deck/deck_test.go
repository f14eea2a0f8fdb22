package deck

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/cribbage/domain/card"
	"go.dedis.ch/kyber/v4/util/random"
)

func seeded(b byte) option {
	return WithSeed([]byte{b})
}

func TestDeal(t *testing.T) {
	d := NewDeck()
	hand, err := d.Deal(6)
	if err != nil {
		t.Fatal(err)
	}
	if card.Join(hand) != "1S 2S 3S 4S 5S 6S" {
		t.Fatalf("expected the top six cards, got %s", card.Join(hand))
	}
	if d.Len() != 46 {
		t.Fatalf("expected 46 cards left, got %d", d.Len())
	}
	if _, err := d.Deal(47); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
	if _, err := d.Deal(-1); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
	rest, err := d.Deal(46)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 46 || d.Len() != 0 {
		t.Fatalf("expected to empty the deck, got %d dealt and %d left", len(rest), d.Len())
	}
}

func TestShuffle_KeepsEveryCard(t *testing.T) {
	d := NewDeck()
	d.Shuffle()
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[card.Card]bool, 52)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	for _, c := range card.FullDeck() {
		if !seen[c] {
			t.Fatalf("card %s missing after shuffle", c)
		}
	}
}

func TestShuffle_Seeded(t *testing.T) {
	a, b, c := NewDeck(seeded(1)), NewDeck(seeded(1)), NewDeck(seeded(2))
	a.Shuffle()
	b.Shuffle()
	c.Shuffle()
	ha, _ := a.Deal(52)
	hb, _ := b.Deal(52)
	hc, _ := c.Deal(52)
	if card.Join(ha) != card.Join(hb) {
		t.Fatal("expected equal seeds to shuffle alike")
	}
	if card.Join(ha) == card.Join(hc) {
		t.Fatal("expected different seeds to shuffle differently")
	}
	if card.Join(ha) == card.Join(card.FullDeck()) {
		t.Fatal("expected the shuffle to move cards")
	}
}

func TestShuffle_SeededTwice(t *testing.T) {
	// a seeded stream has to last through more than one shuffle
	a, b := NewDeck(seeded(7)), NewDeck(WithStream(suite.XOF([]byte{7})))
	for i := 0; i < 3; i++ {
		a.Shuffle()
		b.Shuffle()
	}
	ha, _ := a.Deal(52)
	hb, _ := b.Deal(52)
	if card.Join(ha) != card.Join(hb) {
		t.Fatal("expected equal seeds to shuffle alike")
	}
	if card.Join(ha) == card.Join(card.FullDeck()) {
		t.Fatal("expected the shuffles to move cards")
	}
}

func TestPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 52} {
		perm := permutation(n, random.New())
		if len(perm) != n {
			t.Fatalf("expected %d entries, got %d", n, len(perm))
		}
		seen := make([]bool, n)
		for _, p := range perm {
			if p < 0 || p >= n || seen[p] {
				t.Fatalf("not a permutation of %d: %v", n, perm)
			}
			seen[p] = true
		}
	}
}

func TestShuffle_Uniformish(t *testing.T) {
	if testing.Short() {
		t.Skip("many shuffles")
	}
	// the ace of spades should land in each of 4 slots about a quarter of the time
	const rounds = 4000
	var counts [4]int
	for i := 0; i < rounds; i++ {
		perm := permutation(4, suite.RandomStream())
		for slot, p := range perm {
			if p == 0 {
				counts[slot]++
			}
		}
	}
	for slot, n := range counts {
		if n < rounds/4-300 || n > rounds/4+300 {
			t.Fatalf("slot %d got %d of %d", slot, n, rounds)
		}
	}
}
