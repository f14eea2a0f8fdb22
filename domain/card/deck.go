package card

import "errors"

// FullDeck returns the 52 cards in identifier order: suits S, D, C, H, each
// from ace to king. This is card number order, 1 to 52.
func FullDeck() []Card {
	deck := make([]Card, 52)
	for i := range deck {
		c, err := IntToCard(i + 1)
		if err != nil {
			panic(err) // every number in 1..52 converts
		}
		deck[i] = c
	}
	return deck
}

// Remaining returns the full deck without the given cards, keeping deck order.
// Invalid cards in exclude are ignored.
func Remaining(exclude []Card) []Card {
	var taken [53]bool
	for _, c := range exclude {
		if c.rank == 0 || c.rank > 13 || c.suit > 3 {
			continue
		}
		taken[CardToInt(c)] = true
	}
	out := make([]Card, 0, 52)
	for i, c := range FullDeck() {
		if !taken[i+1] {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether target is one of cards.
func Contains(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to
// suits in identifier order with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Spades (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Clubs (Ace through King)
//   - 40-52: Hearts (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.Join(ErrInvalidCard, errors.New("the card to convert has an invalid value"))
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8(((rawCard - 1) % 13) + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}
