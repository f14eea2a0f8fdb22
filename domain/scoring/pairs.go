package scoring

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
)

// ScorePair scores cards of equal rank. A group of L cards scores L×(L−1).
//
// In Play mode only the trailing cards sharing the last card's rank count.
// In Show mode every rank held at least twice scores, one event per rank.
func ScorePair(cards []card.Card, mode Mode) Result {
	if len(cards) < 2 {
		return Result{}
	}

	if mode == Play {
		last := cards[len(cards)-1].Rank()
		length := 1
		for i := len(cards) - 2; i >= 0; i-- {
			if cards[i].Rank() != last {
				break
			}
			length++
		}
		if length < 2 {
			return Result{}
		}
		points := length * (length - 1)
		return Result{Points: points, Events: []string{fmt.Sprintf("Pair of %d for %d", length, points)}}
	}

	var counts [14]int
	for _, c := range cards {
		counts[c.Rank()]++
	}
	var r Result
	for rank := uint8(1); rank <= card.King; rank++ {
		n := counts[rank]
		if n < 2 {
			continue
		}
		group := make([]card.Card, 0, n)
		for _, c := range cards {
			if c.Rank() == rank {
				group = append(group, c)
			}
		}
		points := n * (n - 1)
		r.add(points, fmt.Sprintf("Pair of %d for %d [%s]", n, points, card.Join(group)))
	}
	return r
}
