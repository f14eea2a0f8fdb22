// Package features turns game states into fixed-width numeric vectors for a
// learned discard or pegging policy.
package features

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
	"github.com/luca-patrignani/cribbage/domain/scoring"
)

const (
	// CardWidth is the width of one encoded card: 13 rank bits then 4 suit bits.
	CardWidth = 17

	// DiscardWidth is two scores, the dealer bit and six card slots.
	DiscardWidth = 3 + discardSlots*CardWidth
	// PeggingWidth is two scores, the dealer bit, the pile count, seven pile
	// slots, the starter and four hand slots.
	PeggingWidth = 4 + (pileSlots+1+handSlots)*CardWidth

	discardSlots = 6
	pileSlots    = 7
	handSlots    = 4
)

// ErrTooManyCards is returned when cards do not fit their slots.
var ErrTooManyCards = errors.New("too many cards")

// EncodeCard one-hot encodes c.
func EncodeCard(c card.Card) ([CardWidth]float64, error) {
	var v [CardWidth]float64
	if _, err := card.NewCard(c.Suit(), c.Rank()); err != nil {
		return v, err
	}
	v[c.Rank()-1] = 1
	v[13+c.Suit()] = 1
	return v, nil
}

// DiscardState is what a player knows when choosing a discard.
type DiscardState struct {
	Score         int
	OpponentScore int
	Dealer        bool
	Hand          []card.Card
}

// Encode returns the DiscardWidth vector of s. Missing hand cards leave
// their slots zero.
func (s DiscardState) Encode() ([]float64, error) {
	v := make([]float64, 0, DiscardWidth)
	v = append(v, normScore(s.Score), normScore(s.OpponentScore), bit(s.Dealer))
	v, err := appendSlots(v, s.Hand, discardSlots)
	if err != nil {
		return nil, fmt.Errorf("hand: %w", err)
	}
	return v, nil
}

// PeggingState is what a player knows when choosing a card to play.
type PeggingState struct {
	Score         int
	OpponentScore int
	Dealer        bool
	Count         int
	Pile          []card.Card
	Starter       card.Card
	Hand          []card.Card
}

// NewPeggingState reads the scores, count and live pile from a round in
// progress, seen from seat.
func NewPeggingState(b scoring.Board, seat, dealer scoring.Seat, p scoring.Pegging, starter card.Card, hand []card.Card) PeggingState {
	return PeggingState{
		Score:         b.Points[seat],
		OpponentScore: b.Points[seat.Other()],
		Dealer:        seat == dealer,
		Count:         p.Count(),
		Pile:          p.Pile(),
		Starter:       starter,
		Hand:          hand,
	}
}

// Encode returns the PeggingWidth vector of s.
func (s PeggingState) Encode() ([]float64, error) {
	v := make([]float64, 0, PeggingWidth)
	v = append(v, normScore(s.Score), normScore(s.OpponentScore), bit(s.Dealer), float64(s.Count)/31)

	var errs []error
	v, err := appendSlots(v, s.Pile, pileSlots)
	if err != nil {
		errs = append(errs, fmt.Errorf("pile: %w", err))
	}
	v, err = appendSlots(v, []card.Card{s.Starter}, 1)
	if err != nil {
		errs = append(errs, fmt.Errorf("starter: %w", err))
	}
	v, err = appendSlots(v, s.Hand, handSlots)
	if err != nil {
		errs = append(errs, fmt.Errorf("hand: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return v, nil
}

func appendSlots(v []float64, cards []card.Card, slots int) ([]float64, error) {
	if len(cards) > slots {
		return v, fmt.Errorf("%w: %d cards for %d slots", ErrTooManyCards, len(cards), slots)
	}
	for i := 0; i < slots; i++ {
		if i >= len(cards) {
			v = append(v, make([]float64, CardWidth)...)
			continue
		}
		enc, err := EncodeCard(cards[i])
		if err != nil {
			return v, err
		}
		v = append(v, enc[:]...)
	}
	return v, nil
}

// normScore caps the score at the winning line and scales it to [0, 1].
func normScore(points int) float64 {
	return float64(min(points, scoring.WinningScore)) / scoring.WinningScore
}

func bit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
