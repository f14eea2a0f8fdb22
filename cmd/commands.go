package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/cribbage/domain/card"
	"github.com/luca-patrignani/cribbage/domain/deck"
	"github.com/luca-patrignani/cribbage/domain/discard"
	"github.com/luca-patrignani/cribbage/domain/scoring"
)

type command struct {
	name  string
	usage string
	run   func(args []string, logger *slog.Logger) error
}

var commands = []command{
	{"score", "[-crib] -starter C CARDS(4)  score a hand or crib with the starter", scoreCommand},
	{"peg", "CARDS(<=8)  peg the cards in order, the pone leading", pegCommand},
	{"discard", "[-dealer] [-style S] [-top N] CARDS(6)  rank the 15 discards", discardCommand},
	{"deal", "[-dealer] [-style S]  deal a random hand, discard and cut", dealCommand},
}

func scoreCommand(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	starterFlag := fs.String("starter", "", "starter card, e.g. 5H")
	cribFlag := fs.Bool("crib", false, "score the cards as the crib")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cards, err := parseCards(fs.Args(), 4)
	if err != nil {
		return err
	}
	starter, err := card.ParseCard(*starterFlag)
	if err != nil {
		return fmt.Errorf("starter: %w", err)
	}
	if card.Contains(cards, starter) {
		return fmt.Errorf("%w: starter %s is also in the hand", discard.ErrDuplicateCard, starter)
	}

	title, r := show(cards, starter, *cribFlag)
	logger.Debug("show scored", "cards", card.Join(cards), "starter", starter.String(), "points", r.Points)
	pterm.Println(cardsLine(cards) + "  starter " + starter.Symbol())
	pterm.Println(resultBox(title, r))
	return nil
}

func show(cards []card.Card, starter card.Card, crib bool) (string, scoring.Result) {
	if crib {
		return "CRIB", scoring.ScoreCrib(cards, starter)
	}
	return "HAND", scoring.ScoreHand(cards, starter)
}

func pegCommand(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("peg", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 || fs.NArg() > scoring.CardsPerRound {
		return fmt.Errorf("%w: peg takes 1 to %d cards, got %d", errUsage, scoring.CardsPerRound, fs.NArg())
	}
	cards, err := parseCards(fs.Args(), fs.NArg())
	if err != nil {
		return err
	}

	plays, board := peg(cards)
	logger.Debug("round pegged", "cards", len(cards), "dealer", board.Points[scoring.First], "pone", board.Points[scoring.Second])
	if err := pterm.DefaultTable.WithHasHeader().WithData(pegRows(plays)).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("dealer %d, pone %d", board.Points[scoring.First], board.Points[scoring.Second])
	return nil
}

// play is one line of a pegging round: a card laid down, or a GO when
// played is false.
type play struct {
	seat   scoring.Seat
	card   card.Card
	played bool
	count  int
	result scoring.Result
}

// peg lays the cards down alternately, the pone (Second) first. A card that
// would pass 31 closes the pile with a GO for the other seat, and a pile that
// reached 31 is closed before the next card.
func peg(cards []card.Card) ([]play, scoring.Board) {
	var (
		p     scoring.Pegging
		board scoring.Board
		plays []play
	)
	p.Piles = [][]card.Card{nil}
	seat := scoring.Second
	for _, c := range cards {
		switch {
		case p.Count() == 31:
			p.Piles = append(p.Piles, nil)
		case p.Count()+c.Worth() > 31:
			to, r := scoring.ScoreGo(seat)
			board.Peg(to, r)
			plays = append(plays, play{seat: to, count: p.Count(), result: r})
			p.Piles = append(p.Piles, nil)
		}
		last := len(p.Piles) - 1
		p.Piles[last] = append(p.Piles[last], c)

		r := scoring.ScoreCard(p)
		board.Peg(seat, r)
		plays = append(plays, play{seat: seat, card: c, played: true, count: p.Count(), result: r})
		seat = seat.Other()
	}
	return plays, board
}

func discardCommand(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("discard", flag.ContinueOnError)
	dealerFlag := fs.Bool("dealer", false, "the crib is yours")
	styleFlag := fs.String("style", string(discard.Recommended), "ranking to print: recommended, sure_bet, risky_bet, hail_mary, aggressive")
	topFlag := fs.Int("top", 15, "number of discards to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	style, err := discard.ParseStyle(*styleFlag)
	if err != nil {
		return err
	}
	hand, err := parseCards(fs.Args(), discard.HandSize)
	if err != nil {
		return err
	}

	report, err := evaluate(hand, *dealerFlag, logger)
	if err != nil {
		return err
	}
	pterm.Println(cardsLine(hand))
	return pterm.DefaultTable.WithHasHeader().WithData(reportRows(report, style, *topFlag)).Render()
}

func dealCommand(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	dealerFlag := fs.Bool("dealer", false, "the crib is yours")
	styleFlag := fs.String("style", string(discard.Recommended), "ranking used to pick the discard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	style, err := discard.ParseStyle(*styleFlag)
	if err != nil {
		return err
	}

	d := deck.NewDeck()
	d.Shuffle()
	hand, err := d.Deal(discard.HandSize)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("dealt %s", cardsLine(hand))

	report, err := evaluate(hand, *dealerFlag, logger)
	if err != nil {
		return err
	}
	best, err := report.Best(style)
	if err != nil {
		return err
	}
	kept := keep(hand, best.Discard)
	pterm.Info.Printfln("%s discard %s, keeping %s", style, cardsLine(best.Discard[:]), cardsLine(kept))

	cut, err := d.Deal(1)
	if err != nil {
		return err
	}
	starter := cut[0]
	pterm.Info.Printfln("starter %s", starter.Symbol())
	if heels := scoring.ScoreHeels(starter); heels.Points > 0 && *dealerFlag {
		pterm.Success.Println(heels.Events[0])
	}
	_, r := show(kept, starter, false)
	pterm.Println(resultBox("HAND", r))
	return nil
}

func evaluate(hand []card.Card, dealer bool, logger *slog.Logger) (discard.Report, error) {
	spinner, _ := pterm.DefaultSpinner.Start("Weighing the 15 discards ...")
	report, err := discard.NewEvaluator(discard.WithLogger(logger)).Evaluate(hand, dealer)
	if err != nil {
		spinner.Fail()
		return discard.Report{}, err
	}
	spinner.Success()
	return report, nil
}

// parseCards decodes exactly n identifiers.
func parseCards(ids []string, n int) ([]card.Card, error) {
	if len(ids) != n {
		return nil, fmt.Errorf("%w: expected %d cards, got %d", errUsage, n, len(ids))
	}
	cards, err := card.ParseCards(ids...)
	if err != nil {
		return nil, err
	}
	var errs []error
	for i, c := range cards {
		if card.Contains(cards[:i], c) {
			errs = append(errs, fmt.Errorf("%w: %s", discard.ErrDuplicateCard, c))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cards, nil
}

func keep(hand []card.Card, thrown discard.Pair) []card.Card {
	kept := make([]card.Card, 0, len(hand)-2)
	for _, c := range hand {
		if c != thrown[0] && c != thrown[1] {
			kept = append(kept, c)
		}
	}
	return kept
}
