package deck

import (
	"crypto/cipher"
	"math/big"

	"github.com/luca-patrignani/cribbage/domain/card"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle puts the cards left in a uniformly random order.
func (d *Deck) Shuffle() {
	perm := permutation(len(d.cards), d.stream)
	tmp := make([]card.Card, len(d.cards))
	copy(tmp, d.cards)
	for i := range d.cards {
		d.cards[i] = tmp[perm[i]]
	}
}

// permutation draws a random permutation of [0, n) with Fisher-Yates.
func permutation(n int, stream cipher.Stream) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
