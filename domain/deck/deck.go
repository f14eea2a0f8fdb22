package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
	"go.dedis.ch/kyber/v4/suites"
)

// ErrNotEnoughCards is returned when a deal asks for more cards than are left.
var ErrNotEnoughCards = errors.New("not enough cards in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a 52-card deck dealt from the top.
type Deck struct {
	cards  []card.Card
	stream cipher.Stream
}

type option func(Deck) Deck

// NewDeck returns a full deck in identifier order. Call Shuffle before dealing.
func NewDeck(opts ...option) *Deck {
	d := Deck{
		cards:  card.FullDeck(),
		stream: suite.RandomStream(),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	return &d
}

// WithStream replaces the suite's random stream. The stream must never run
// dry: a shuffle draws as many bytes as it needs.
func WithStream(s cipher.Stream) option {
	return func(d Deck) Deck {
		if s != nil {
			d.stream = s
		}
		return d
	}
}

// WithSeed makes the shuffles reproducible by drawing from the suite's XOF
// seeded with seed.
func WithSeed(seed []byte) option {
	return func(d Deck) Deck {
		d.stream = suite.XOF(seed)
		return d
	}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Deal removes n cards from the top of the deck.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: asked for %d, %d left", ErrNotEnoughCards, n, len(d.cards))
	}
	hand := make([]card.Card, n)
	copy(hand, d.cards[:n])
	d.cards = d.cards[n:]
	return hand, nil
}
