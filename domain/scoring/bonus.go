package scoring

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
)

// ScoreFlush scores cards that all share one suit; the score is the number of
// cards given. Callers decide whether the starter is part of cards. Play mode
// never scores a flush.
func ScoreFlush(cards []card.Card, mode Mode) Result {
	if mode == Play || len(cards) == 0 {
		return Result{}
	}
	suit := cards[0].Suit()
	for _, c := range cards[1:] {
		if c.Suit() != suit {
			return Result{}
		}
	}
	n := len(cards)
	return Result{Points: n, Events: []string{fmt.Sprintf("Flush of %d for %d [%s]", n, n, card.Join(cards))}}
}

// ScoreNobs scores 2 for the first Jack in hand matching the starter's suit.
func ScoreNobs(hand []card.Card, starter card.Card) Result {
	for _, c := range hand {
		if c.IsJack() && c.Suit() == starter.Suit() {
			return Result{Points: 2, Events: []string{fmt.Sprintf("2 for his nob [%s %s]", c, starter)}}
		}
	}
	return Result{}
}

// ScoreHeels scores 2 for the dealer when the starter is a Jack.
func ScoreHeels(starter card.Card) Result {
	if !starter.IsJack() {
		return Result{}
	}
	return Result{Points: 2, Events: []string{"2 for his heels"}}
}
