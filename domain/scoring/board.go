package scoring

// WinningScore is the number of points that ends a game.
const WinningScore = 121

// Board keeps both players' totals.
type Board struct {
	Points [2]int
}

// Peg adds the points of r to seat's total and returns the new total.
func (b *Board) Peg(seat Seat, r Result) int {
	b.Points[seat] += r.Points
	return b.Points[seat]
}

// Winner returns the first seat that reached WinningScore.
func (b Board) Winner() (Seat, bool) {
	for _, s := range []Seat{First, Second} {
		if b.Points[s] >= WinningScore {
			return s, true
		}
	}
	return 0, false
}
