package scoring

import "github.com/luca-patrignani/cribbage/domain/card"

// CardsPerRound is the number of cards pegged in a round once both hands are empty.
const CardsPerRound = 8

// Seat identifies one of the two players.
type Seat int

const (
	First Seat = iota
	Second
)

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == First {
		return Second
	}
	return First
}

// Pegging holds the piles played so far in a round. The last pile is the one
// being played on; earlier piles were closed at 31 or after a GO.
type Pegging struct {
	Piles [][]card.Card
}

// Pile returns the pile being played on, or nil before the first card.
func (p Pegging) Pile() []card.Card {
	if len(p.Piles) == 0 {
		return nil
	}
	return p.Piles[len(p.Piles)-1]
}

// Played returns the number of cards played across all piles.
func (p Pegging) Played() int {
	n := 0
	for _, pile := range p.Piles {
		n += len(pile)
	}
	return n
}

// Count returns the running total of the current pile.
func (p Pegging) Count() int {
	return Total(p.Pile())
}

// ScoreGo scores a GO called by caller. The caller never scores; the returned
// seat is the one credited with the point.
func ScoreGo(caller Seat) (Seat, Result) {
	return caller.Other(), Result{Points: 1, Events: []string{"1 for GO"}}
}

// ScoreLast scores 1 for the final card of the round. A pile closing at
// exactly 31 is left to Score31.
func ScoreLast(p Pegging) Result {
	if p.Count() == 31 || p.Played() != CardsPerRound {
		return Result{}
	}
	return Result{Points: 1, Events: []string{"Last card for 1"}}
}
