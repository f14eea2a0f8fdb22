package scoring

import "github.com/luca-patrignani/cribbage/domain/card"

// Mode selects the scoring regime.
type Mode int

const (
	// Play scores the pile during pegging; order matters.
	Play Mode = iota
	// Show scores a hand or crib with the starter; order is irrelevant.
	Show
)

func (m Mode) String() string {
	if m == Play {
		return "play"
	}
	return "show"
}

// Result is a point total with one descriptive event per scoring trick, in
// discovery order.
type Result struct {
	Points int
	Events []string
}

func (r *Result) add(points int, event string) {
	r.Points += points
	r.Events = append(r.Events, event)
}

func (r *Result) merge(o Result) {
	r.Points += o.Points
	r.Events = append(r.Events, o.Events...)
}

func combine(results ...Result) Result {
	var total Result
	for _, r := range results {
		total.merge(r)
	}
	return total
}

// Total returns the summed worth of cards.
func Total(cards []card.Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Worth()
	}
	return sum
}
