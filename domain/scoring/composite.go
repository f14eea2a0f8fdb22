package scoring

import "github.com/luca-patrignani/cribbage/domain/card"

// ScoreCard scores the card just appended to the current pile.
func ScoreCard(p Pegging) Result {
	pile := p.Pile()
	return combine(
		Score15(pile, Play),
		ScoreRun(pile, Play),
		ScorePair(pile, Play),
		Score31(pile),
		ScoreLast(p),
	)
}

// ScoreHand scores a player's hand with the starter. The flush check looks at
// the hand cards only and never adds a point for a matching starter.
func ScoreHand(hand []card.Card, starter card.Card) Result {
	cards := withStarter(hand, starter)
	return combine(
		Score15(cards, Show),
		ScoreRun(cards, Show),
		ScorePair(cards, Show),
		ScoreFlush(hand, Show),
		ScoreNobs(hand, starter),
	)
}

// ScoreCrib scores the dealer's crib with the starter. A flush needs all five
// cards.
func ScoreCrib(crib []card.Card, starter card.Card) Result {
	cards := withStarter(crib, starter)
	return combine(
		Score15(cards, Show),
		ScoreRun(cards, Show),
		ScorePair(cards, Show),
		ScoreFlush(cards, Show),
	)
}

// ShowPoints is the suit-independent part of show scoring: fifteens, runs
// and pairs. Any two card sets with the same ranks score the same.
func ShowPoints(cards []card.Card) int {
	return Score15(cards, Show).Points + ScoreRun(cards, Show).Points + ScorePair(cards, Show).Points
}

func withStarter(cards []card.Card, starter card.Card) []card.Card {
	out := make([]card.Card, 0, len(cards)+1)
	out = append(out, cards...)
	return append(out, starter)
}
