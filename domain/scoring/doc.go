// Package scoring implements the cribbage scoring rules.
//
// Every scorer is a pure function returning a Result: the points and a
// readable trace with one event per trick, such as "15 for 2 [5S TD]" or
// "Run of 3 for 6 [4S 5D 6C 6S]". Inputs are never modified and are assumed
// to come from one legal deck partition.
//
// # Regimes
//
// Play scores the pegging pile after each card: sums of 15 and 31 over the
// whole pile, and pairs and runs formed by the trailing cards. The GO and
// last-card points need the round's Pegging state.
//
// Show scores a hand or crib together with the starter: every fifteen, the
// longest run with its duplicates, every pair group, the flush, and his nobs
// for hands.
//
// # Shared core
//
// ShowPoints is the suit-independent fifteens, runs and pairs total. The
// discard evaluator tabulates it per rank multiset, so the two never diverge.
package scoring
