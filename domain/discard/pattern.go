package discard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/luca-patrignani/cribbage/domain/card"
	"github.com/luca-patrignani/cribbage/domain/scoring"
)

var (
	// ErrUnknownPattern is returned for a rank multiset that is not in the table,
	// which only happens when a rank occurs five times.
	ErrUnknownPattern = errors.New("unknown rank pattern")
	// ErrHandSize is returned when a hand or crib has the wrong number of cards.
	ErrHandSize = errors.New("wrong number of cards")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Pattern is a sorted multiset of five ranks packed four bits per rank, the
// lowest rank in the highest nibble.
type Pattern uint32

// PatternOf packs five ranks in any order.
func PatternOf(ranks [5]uint8) Pattern {
	// insertion sort, five elements
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && ranks[j] < ranks[j-1]; j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}
	var p Pattern
	for _, r := range ranks {
		p = p<<4 | Pattern(r)
	}
	return p
}

// ParsePattern reads five rank symbols, e.g. "12345" or "55J55".
func ParsePattern(key string) (Pattern, error) {
	if len(key) != 5 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, key)
	}
	var ranks [5]uint8
	for i := 0; i < 5; i++ {
		r := strings.IndexByte(card.RankSymbols, key[i])
		if r < 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, key)
		}
		ranks[i] = uint8(r + 1)
	}
	return PatternOf(ranks), nil
}

// Ranks unpacks the pattern in ascending order.
func (p Pattern) Ranks() [5]uint8 {
	var ranks [5]uint8
	for i := 4; i >= 0; i-- {
		ranks[i] = uint8(p & 0xf)
		p >>= 4
	}
	return ranks
}

// String returns the five rank symbols in ascending order, e.g. "12345".
func (p Pattern) String() string {
	b := make([]byte, 0, 5)
	for _, r := range p.Ranks() {
		if r == 0 || r > card.King {
			return "?????"
		}
		b = append(b, card.RankSymbols[r-1])
	}
	return string(b)
}

// Table maps every physically possible five-rank multiset to its fifteens,
// runs and pairs score. It is immutable once built.
type Table struct {
	scores map[Pattern]int
}

var (
	tableOnce sync.Once
	table     *Table
)

// Patterns returns the process-wide table, building it on first use.
func Patterns() *Table {
	return loadPatterns(nil)
}

func loadPatterns(logger *slog.Logger) *Table {
	tableOnce.Do(func() {
		start := time.Now()
		table = buildTable()
		if logger != nil {
			logger.Debug("rank pattern table built", "patterns", table.Len(), "elapsed", time.Since(start))
		}
	})
	return table
}

// buildTable enumerates non-decreasing rank sequences of length five and
// drops the five-of-a-kind ones.
func buildTable() *Table {
	t := &Table{scores: make(map[Pattern]int, 6175)}
	var ranks [5]uint8
	var walk func(pos int, from uint8)
	walk = func(pos int, from uint8) {
		if pos == len(ranks) {
			if ranks[0] == ranks[4] {
				return
			}
			t.scores[PatternOf(ranks)] = scoring.ShowPoints(patternCards(ranks))
			return
		}
		for r := from; r <= card.King; r++ {
			ranks[pos] = r
			walk(pos+1, r)
		}
	}
	walk(0, card.Ace)
	return t
}

// patternCards gives repeated ranks distinct suits so the cards are legal.
// ranks must not hold five of a kind.
func patternCards(ranks [5]uint8) []card.Card {
	cards := make([]card.Card, 0, len(ranks))
	var seen [14]uint8
	for _, r := range ranks {
		c, err := card.NewCard(seen[r], r)
		if err != nil {
			// a rank seen a fifth time has no suit left
			panic(err)
		}
		seen[r]++
		cards = append(cards, c)
	}
	return cards
}

// Len returns the number of patterns in the table.
func (t *Table) Len() int {
	return len(t.scores)
}

// Score returns the fifteens, runs and pairs score of p.
func (t *Table) Score(p Pattern) (int, error) {
	s, ok := t.scores[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPattern, p)
	}
	return s, nil
}

// Lookup is Score for a rank-symbol key such as "12345".
func (t *Table) Lookup(key string) (int, error) {
	p, err := ParsePattern(key)
	if err != nil {
		return 0, err
	}
	return t.Score(p)
}
