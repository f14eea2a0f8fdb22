package discard

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotRanked is returned when a discard is absent from a ranking.
var ErrNotRanked = errors.New("discard not ranked")

// Style names one ordering of the discards.
type Style string

const (
	// Recommended orders by average, ties to the better hand.
	Recommended Style = "recommended"
	// SureBet orders by minimum, ties to the better average.
	SureBet Style = "sure_bet"
	// RiskyBet orders by maximum, ties to the better average.
	RiskyBet Style = "risky_bet"
	// HailMary orders by the high percentile, ties to the better average.
	HailMary Style = "hail_mary"
	// Aggressive orders by the kept hand's mean, ties to the better average.
	Aggressive Style = "aggressive"
)

// Styles lists every ordering in a fixed order.
var Styles = []Style{Recommended, SureBet, RiskyBet, HailMary, Aggressive}

// ParseStyle accepts a style name such as "sure_bet".
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", name)
}

// Ranked is a discard with the value of the metric it was ordered by.
type Ranked struct {
	Discard Pair
	Value   float64
}

// Report holds the statistics and the five orderings of one evaluation.
type Report struct {
	Dealer   bool
	Pairs    []Pair // enumeration order
	Stats    map[Pair]Stats
	Rankings map[Style][]Ranked
}

// ordering compares by a primary and a secondary key. Every discard is
// weighed over the same number of samples, so sums order exactly like means.
type ordering struct {
	keys  func(Stats) (int64, int64)
	value func(Stats) float64
}

var orderings = map[Style]ordering{
	Recommended: {
		keys:  func(s Stats) (int64, int64) { return s.netSum, s.handSum },
		value: func(s Stats) float64 { return s.Average },
	},
	SureBet: {
		keys:  func(s Stats) (int64, int64) { return int64(s.Min), s.netSum },
		value: func(s Stats) float64 { return float64(s.Min) },
	},
	RiskyBet: {
		keys:  func(s Stats) (int64, int64) { return int64(s.Max), s.netSum },
		value: func(s Stats) float64 { return float64(s.Max) },
	},
	HailMary: {
		keys:  func(s Stats) (int64, int64) { return int64(s.High), s.netSum },
		value: func(s Stats) float64 { return float64(s.High) },
	},
	Aggressive: {
		keys:  func(s Stats) (int64, int64) { return s.handSum, s.netSum },
		value: func(s Stats) float64 { return s.Hand },
	},
}

func newReport(dealer bool, pairs []Pair, stats []Stats) Report {
	r := Report{
		Dealer:   dealer,
		Pairs:    pairs,
		Stats:    make(map[Pair]Stats, len(pairs)),
		Rankings: make(map[Style][]Ranked, len(Styles)),
	}
	for i, p := range pairs {
		r.Stats[p] = stats[i]
	}

	for _, style := range Styles {
		o := orderings[style]
		idx := make([]int, len(pairs))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			pa, sa := o.keys(stats[idx[a]])
			pb, sb := o.keys(stats[idx[b]])
			if pa != pb {
				return pa > pb
			}
			return sa > sb
		})
		ranked := make([]Ranked, len(idx))
		for i, x := range idx {
			ranked[i] = Ranked{Discard: pairs[x], Value: o.value(stats[x])}
		}
		r.Rankings[style] = ranked
	}
	return r
}

// Best returns the first discard of the style's ordering.
func (r Report) Best(style Style) (Ranked, error) {
	ranked, ok := r.Rankings[style]
	if !ok || len(ranked) == 0 {
		return Ranked{}, fmt.Errorf("no ranking for style %q", style)
	}
	return ranked[0], nil
}

// Lookup returns the statistics of a discard given in any card order.
func (r Report) Lookup(discard Pair) (Stats, bool) {
	if s, ok := r.Stats[discard]; ok {
		return s, true
	}
	s, ok := r.Stats[Pair{discard[1], discard[0]}]
	return s, ok
}

// Reward maps the position of discard in ranking to [0, 1]: 1 for the best
// discard, 0 for the worst.
func Reward(ranking []Ranked, discard Pair) (float64, error) {
	for i, r := range ranking {
		if !r.Discard.Equal(discard) {
			continue
		}
		if len(ranking) == 1 {
			return 1, nil
		}
		return 1 - float64(i)/float64(len(ranking)-1), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotRanked, discard)
}
