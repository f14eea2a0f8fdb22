package discard

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
)

// FastScoreHand scores a four-card hand with the starter from the pattern
// table: fifteens, runs and pairs, 4 for a hand flush plus 1 when the starter
// matches it, and 2 for his nobs.
func FastScoreHand(hand []card.Card, starter card.Card) (int, error) {
	if len(hand) != 4 {
		return 0, fmt.Errorf("%w: hand has %d cards, want 4", ErrHandSize, len(hand))
	}
	return Patterns().hand([4]card.Card(hand), starter)
}

// FastScoreCrib scores a four-card crib with the starter from the pattern
// table: fifteens, runs and pairs, 5 for a five-card flush, and 2 when the
// starter is a Jack.
func FastScoreCrib(crib []card.Card, starter card.Card) (int, error) {
	if len(crib) != 4 {
		return 0, fmt.Errorf("%w: crib has %d cards, want 4", ErrHandSize, len(crib))
	}
	return Patterns().crib([4]card.Card(crib), starter)
}

func (t *Table) hand(h [4]card.Card, starter card.Card) (int, error) {
	score, err := t.Score(PatternOf([5]uint8{h[0].Rank(), h[1].Rank(), h[2].Rank(), h[3].Rank(), starter.Rank()}))
	if err != nil {
		return 0, err
	}

	suit := h[0].Suit()
	if h[1].Suit() == suit && h[2].Suit() == suit && h[3].Suit() == suit {
		score += 4
		if starter.Suit() == suit {
			score++
		}
	}

	for _, c := range h {
		if c.IsJack() && c.Suit() == starter.Suit() {
			score += 2
			break
		}
	}
	return score, nil
}

func (t *Table) crib(c [4]card.Card, starter card.Card) (int, error) {
	score, err := t.Score(PatternOf([5]uint8{c[0].Rank(), c[1].Rank(), c[2].Rank(), c[3].Rank(), starter.Rank()}))
	if err != nil {
		return 0, err
	}

	suit := starter.Suit()
	if c[0].Suit() == suit && c[1].Suit() == suit && c[2].Suit() == suit && c[3].Suit() == suit {
		score += 5
	}

	if starter.IsJack() {
		score += 2
	}
	return score, nil
}
