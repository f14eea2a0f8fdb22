// Package card is the canonical representation of a single playing card.
//
// A Card is an immutable (suit, rank) value. Ranks run from 1 (Ace) to 13
// (King); suits from 0 to 3. Cards are written as two-symbol identifiers: a
// rank symbol from "123456789TJQK" followed by a suit symbol from "SDCH", so
// "TS" is the ten of spades and "1H" the ace of hearts.
//
// The package also enumerates the 52-card deck, which the discard evaluator
// uses to build the set of cards a hand has not seen.
package card
