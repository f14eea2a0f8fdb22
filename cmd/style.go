package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/cribbage/domain/card"
	"github.com/luca-patrignani/cribbage/domain/discard"
	"github.com/luca-patrignani/cribbage/domain/scoring"
)

func cardsLine(cards []card.Card) string {
	symbols := make([]string, len(cards))
	for i, c := range cards {
		symbols[i] = c.Symbol()
	}
	return strings.Join(symbols, " ")
}

func resultBox(title string, r scoring.Result) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := strings.Join(r.Events, "\n")
	if body == "" {
		body = pterm.LightRed("Nineteen")
	}
	body += "\n" + pterm.LightGreen(fmt.Sprintf("Total %d", r.Points))
	return pbox.WithTitle(pterm.LightYellow("|"+title+"|")).WithTitleTopCenter().Sprint(body)
}

func seatName(s scoring.Seat) string {
	if s == scoring.First {
		return "dealer"
	}
	return "pone"
}

func pegRows(plays []play) [][]string {
	rows := [][]string{{"Seat", "Card", "Count", "Points", "Events"}}
	for _, p := range plays {
		c := "GO"
		if p.played {
			c = p.card.Symbol()
		}
		rows = append(rows, []string{
			seatName(p.seat),
			c,
			strconv.Itoa(p.count),
			strconv.Itoa(p.result.Points),
			strings.Join(p.result.Events, ", "),
		})
	}
	return rows
}

// reportRows lists the first top discards of the style's ordering with all
// their statistics.
func reportRows(r discard.Report, style discard.Style, top int) [][]string {
	rows := [][]string{{"#", "Discard", string(style), "Average", "Min", "Max", "High", "Hand"}}
	for i, ranked := range r.Rankings[style] {
		if i >= top {
			break
		}
		s, _ := r.Lookup(ranked.Discard)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cardsLine(ranked.Discard[:]),
			strconv.FormatFloat(ranked.Value, 'f', 3, 64),
			strconv.FormatFloat(s.Average, 'f', 3, 64),
			strconv.Itoa(s.Min),
			strconv.Itoa(s.Max),
			strconv.Itoa(s.High),
			strconv.FormatFloat(s.Hand, 'f', 3, 64),
		})
	}
	return rows
}
