package scoring

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
)

// Score15 scores sums of fifteen.
//
// In Play mode the whole pile must sum to exactly 15. In Show mode every
// combination of 2 to 5 cards summing to 15 scores 2, and overlapping
// combinations are all counted.
func Score15(cards []card.Card, mode Mode) Result {
	if mode == Play {
		if Total(cards) == 15 {
			return Result{Points: 2, Events: []string{"15 for 2"}}
		}
		return Result{}
	}

	var r Result
	combo := make([]card.Card, 0, 5)
	for k := 2; k <= 5; k++ {
		combinations(len(cards), k, func(idx []int) {
			sum := 0
			for _, i := range idx {
				sum += cards[i].Worth()
			}
			if sum != 15 {
				return
			}
			combo = combo[:0]
			for _, i := range idx {
				combo = append(combo, cards[i])
			}
			r.add(2, fmt.Sprintf("15 for 2 [%s]", card.Join(combo)))
		})
	}
	return r
}

// Score31 scores a pile whose total worth is exactly 31.
func Score31(cards []card.Card) Result {
	if Total(cards) == 31 {
		return Result{Points: 2, Events: []string{"31 for 2"}}
	}
	return Result{}
}

// combinations calls fn with every k-subset of 0..n-1 in lexicographic order.
// The index slice is reused between calls.
func combinations(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
