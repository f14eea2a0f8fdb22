package discard

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/luca-patrignani/cribbage/domain/card"
)

const (
	// HandSize is the number of cards dealt to each player.
	HandSize = 6
	// SamplesPerPair is the number of (starter, opponent discard) futures
	// weighed for each discard: 46 starters times C(45,2) opponent pairs.
	SamplesPerPair = 46 * 990

	// net scores lie in [-35, 70]
	histOffset = 40
	histSize   = 112
)

// Pair is an unordered pair of discarded cards.
type Pair [2]card.Card

// Equal reports whether both pairs hold the same two cards in any order.
func (p Pair) Equal(o Pair) bool {
	return (p[0] == o[0] && p[1] == o[1]) || (p[0] == o[1] && p[1] == o[0])
}

func (p Pair) String() string {
	return card.Join(p[:])
}

// Stats summarises the futures of one discard.
type Stats struct {
	Average float64 // mean net score
	Min     int
	Max     int
	High    int     // net score at the configured percentile
	Hand    float64 // mean score of the kept hand alone

	netSum  int64
	handSum int64
}

// Evaluator estimates every discard of a six-card hand by enumerating all
// starters and opponent discards.
type Evaluator struct {
	logger     *slog.Logger
	workers    int
	percentile float64
}

// Evaluate runs the default Evaluator.
func Evaluate(hand []card.Card, dealer bool) (Report, error) {
	return NewEvaluator().Evaluate(hand, dealer)
}

// Evaluate scores all 15 discards of hand. The crib counts for the player
// when dealer is true and against them otherwise.
func (e Evaluator) Evaluate(hand []card.Card, dealer bool) (Report, error) {
	if err := validateHand(hand); err != nil {
		return Report{}, err
	}

	start := time.Now()
	t := loadPatterns(e.logger)
	deck := card.Remaining(hand)

	pairs := make([]Pair, 0, 15)
	kept := make([][4]card.Card, 0, 15)
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			pairs = append(pairs, Pair{hand[i], hand[j]})
			var k [4]card.Card
			n := 0
			for x, c := range hand {
				if x != i && x != j {
					k[n] = c
					n++
				}
			}
			kept = append(kept, k)
		}
	}

	stats := make([]Stats, len(pairs))
	errs := make([]error, len(pairs))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			stats[i], errs[i] = e.evaluatePair(t, kept[i], pairs[i], deck, dealer)
		}()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return Report{}, err
	}

	e.logger.Debug("discard evaluation finished",
		"hand", card.Join(hand),
		"dealer", dealer,
		"pairs", len(pairs),
		"samples", len(pairs)*SamplesPerPair,
		"elapsed", time.Since(start))

	return newReport(dealer, pairs, stats), nil
}

func (e Evaluator) evaluatePair(t *Table, kept [4]card.Card, mine Pair, deck []card.Card, dealer bool) (Stats, error) {
	var hist [histSize]int
	s := Stats{Min: histSize, Max: -histSize}
	samples := 0
	for si, starter := range deck {
		handScore, err := t.hand(kept, starter)
		if err != nil {
			return Stats{}, err
		}
		s.handSum += int64(handScore)

		for i := 0; i < len(deck); i++ {
			if i == si {
				continue
			}
			for j := i + 1; j < len(deck); j++ {
				if j == si {
					continue
				}
				cribScore, err := t.crib([4]card.Card{mine[0], mine[1], deck[i], deck[j]}, starter)
				if err != nil {
					return Stats{}, err
				}
				net := handScore - cribScore
				if dealer {
					net = handScore + cribScore
				}
				hist[net+histOffset]++
				s.netSum += int64(net)
				s.Min = min(s.Min, net)
				s.Max = max(s.Max, net)
				samples++
			}
		}
	}

	s.Average = float64(s.netSum) / float64(samples)
	s.Hand = float64(s.handSum) / float64(len(deck))
	s.High = quantile(hist[:], samples, e.percentile)
	return s, nil
}

// quantile returns the element at index floor(n*p) of the ascending samples
// counted in hist.
func quantile(hist []int, n int, p float64) int {
	k := min(int(float64(n)*p), n-1)
	seen := 0
	for i, count := range hist {
		seen += count
		if seen > k {
			return i - histOffset
		}
	}
	return len(hist) - 1 - histOffset
}

func validateHand(hand []card.Card) error {
	if len(hand) != HandSize {
		return fmt.Errorf("%w: hand has %d cards, want %d", ErrHandSize, len(hand), HandSize)
	}
	var errs []error
	for i, c := range hand {
		if _, err := card.NewCard(c.Suit(), c.Rank()); err != nil {
			errs = append(errs, err)
			continue
		}
		for _, other := range hand[:i] {
			if other == c {
				errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateCard, c))
			}
		}
	}
	return errors.Join(errs...)
}
