package scoring

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/card"
)

// ScoreRun scores runs of three or more consecutive ranks.
//
// In Play mode trailing windows are tried from the whole pile down to three
// cards. Each window is read backwards collecting distinct ranks until a rank
// repeats. Once fewer than three distinct ranks are collected no shorter
// window is tried. A window whose distinct ranks are contiguous scores its
// length.
//
// In Show mode the longest contiguous range of distinct ranks scores its
// length times 1 + Σ(count−1) over the ranks in the range.
func ScoreRun(cards []card.Card, mode Mode) Result {
	n := len(cards)
	if n < 3 {
		return Result{}
	}
	if mode == Play {
		return playRun(cards)
	}
	return showRun(cards)
}

func playRun(cards []card.Card) Result {
	n := len(cards)
	for length := n; length >= 3; length-- {
		var seen [14]bool
		distinct := 0
		lo, hi := uint8(card.King), uint8(card.Ace)
		for i := n - 1; i >= n-length; i-- {
			r := cards[i].Rank()
			if seen[r] {
				break
			}
			seen[r] = true
			distinct++
			lo = min(lo, r)
			hi = max(hi, r)
		}
		if distinct < 3 {
			break
		}
		if int(hi-lo) == distinct-1 {
			return Result{Points: length, Events: []string{fmt.Sprintf("Run of %d for %d", length, length)}}
		}
	}
	return Result{}
}

func showRun(cards []card.Card) Result {
	var counts [14]int
	for _, c := range cards {
		counts[c.Rank()]++
	}
	ranks := make([]uint8, 0, len(cards))
	for r := uint8(1); r <= card.King; r++ {
		if counts[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) < 3 {
		return Result{}
	}

	for length := len(ranks); length >= 3; length-- {
		for start := 0; start+length <= len(ranks); start++ {
			window := ranks[start : start+length]
			if int(window[length-1]-window[0]) != length-1 {
				continue
			}
			multiplier := 1
			for _, r := range window {
				multiplier += counts[r] - 1
			}
			lo, hi := window[0], window[length-1]
			run := make([]card.Card, 0, len(cards))
			for _, c := range cards {
				if c.Rank() >= lo && c.Rank() <= hi {
					run = append(run, c)
				}
			}
			points := length * multiplier
			return Result{Points: points, Events: []string{fmt.Sprintf("Run of %d for %d [%s]", length, points, card.Join(run))}}
		}
	}
	return Result{}
}
