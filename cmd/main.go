package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

var errUsage = errors.New("usage")

func main() {
	debugFlag := flag.Bool("debug", false, "log at debug level")
	quietFlag := flag.Bool("quiet", false, "do not print the banner")
	flag.Usage = usage
	flag.Parse()

	if *debugFlag {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	if !*quietFlag {
		title, err := pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("ribbage", pterm.FgDarkGray.ToStyle()),
		).Srender()
		if err != nil {
			logger.Error(err.Error())
		}
		pterm.Print(title)
	}

	if err := run(flag.Args(), logger); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], logger)
		}
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-debug] [-quiet] <command> [OPTIONS] CARDS...\n\ncommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(os.Stderr, "\ncards are written rank then suit: 1-9 T J Q K and S D C H, e.g. 5H TS 1C")
}
