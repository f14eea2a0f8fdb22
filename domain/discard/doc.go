// Package discard chooses which two cards to lay away into the crib.
//
// # Rank patterns
//
// The fifteens, runs and pairs of five cards depend on their ranks alone.
// Patterns returns a table of that score for each of the 6175 possible rank
// multisets, built once with the scoring package's own rules and shared by
// every caller. FastScoreHand and FastScoreCrib add the suit-dependent bonuses
// on top of a table lookup.
//
// # Search
//
// For each of the 15 ways to discard two of six cards, Evaluate weighs every
// starter the hand has not seen (46) against every pair the opponent could
// add to the crib (990): 45,540 futures per discard. A future's net score is
// the kept hand's score plus the crib's for the dealer, minus it otherwise.
//
// # Rankings
//
// A Report orders the 15 discards five ways, one per Style, each descending on
// a primary metric with a secondary tie-break:
//
//	recommended  average         then hand mean
//	sure_bet     minimum         then average
//	risky_bet    maximum         then average
//	hail_mary    95th percentile then average
//	aggressive   hand mean       then average
//
// Callers take the first entry of the ordering matching their play style.
package discard
