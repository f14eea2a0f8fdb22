package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3), in identifier order.
const (
	Spade   = 0 // ♠ (black)
	Diamond = 1 // ♦ (red)
	Club    = 2 // ♣ (black)
	Heart   = 3 // ♥ (red)
)

// Card rank constants for the ace and face cards.
const (
	Ace   = 1  // 1
	Ten   = 10 // T
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
)

// Symbol alphabets of the two-character card identifiers, e.g. "TS" or "1H".
const (
	RankSymbols = "123456789TJQK"
	SuitSymbols = "SDCH"
	suitGlyphs  = "♠♦♣♥"
)

// ErrInvalidCard is returned for a suit, rank or identifier outside the alphabets.
var ErrInvalidCard = errors.New("invalid card")

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: spades, diamonds, clubs, hearts
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Spade, Diamond, Club, Heart)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ParseCard decodes a two-symbol identifier such as "5D" or "JH".
func ParseCard(id string) (Card, error) {
	if len(id) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	r := strings.IndexByte(RankSymbols, id[0])
	s := strings.IndexByte(SuitSymbols, id[1])
	if r < 0 || s < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	return Card{suit: uint8(s), rank: uint8(r + 1)}, nil
}

// ParseCards decodes every identifier, joining the errors of all malformed ones.
func ParseCards(ids ...string) ([]Card, error) {
	cards := make([]Card, 0, len(ids))
	var errs []error
	for _, id := range ids {
		c, err := ParseCard(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cards = append(cards, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cards, nil
}

// MustParse is ParseCards for literals; it panics on a malformed identifier.
func MustParse(ids ...string) []Card {
	cards, err := ParseCards(ids...)
	if err != nil {
		panic(err)
	}
	return cards
}

// Suit returns the suit value of the Card (0-3: spades, diamonds, clubs, hearts).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Worth returns the counting value of the Card: its rank, or 10 for face cards.
func (c Card) Worth() int {
	return Worth(c.rank)
}

// IsJack reports whether the card is a Jack.
func (c Card) IsJack() bool {
	return c.rank == Jack
}

// Worth returns the counting value of a rank.
func Worth(rank uint8) int {
	if rank < Jack {
		return int(rank)
	}
	return 10
}

// String returns the two-symbol identifier of the Card, e.g. "TS".
func (c Card) String() string {
	if c.rank == 0 || c.rank > 13 || c.suit > 3 {
		return "??"
	}
	return string([]byte{RankSymbols[c.rank-1], SuitSymbols[c.suit]})
}

// Symbol returns a terminal representation of the Card using coloured suit
// glyphs (♠, ♦, ♣, ♥) and rank abbreviations (A, J, Q, K, or number).
func (c Card) Symbol() string {
	var suit string
	glyph := string([]rune(suitGlyphs)[c.suit&3])
	switch c.suit {
	case Diamond, Heart:
		suit = pterm.LightRed(glyph)
	default:
		suit = pterm.Black(glyph)
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}

// Join renders cards as space separated identifiers.
func Join(cards []Card) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.String()
	}
	return strings.Join(ids, " ")
}
