package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/klabast/yearplan/internal/app"
	"github.com/klabast/yearplan/internal/logger"
)

// Fixed handles the fixed subcommand: a planner with the constant German
// weekday table, for the year given as the only positional argument.
func Fixed(ctx context.Context, args []string) int {
	return runFixed(ctx, args, os.Stdout, os.Stderr)
}

func runFixed(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	year := 0
	switch len(args) {
	case 0:
	case 1:
		if args[0] == "-h" || args[0] == "--help" {
			fmt.Fprintf(stderr, "Usage: yearplan fixed [YEAR]\n\n")
			fmt.Fprintf(stderr, "Creates year_plan_<YEAR>.pdf with German weekday abbreviations.\n")
			fmt.Fprintf(stderr, "YEAR defaults to next year.\n")
			return 0
		}
		y, err := app.ParseYear(args[0])
		if err != nil {
			fmt.Fprintf(stdout, "Invalid year %q: please pass a number such as 2027\n", args[0])
			return 1
		}
		year = y
	default:
		fmt.Fprintf(stdout, "Usage: yearplan fixed [YEAR]\n")
		return 2
	}

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	res, err := app.Generate(ctx, app.Options{
		Year:     year,
		Strategy: app.Fixed,
		Format:   app.FormatPDF,
		Logger:   log,
	})
	if err != nil {
		log.Error("failed to create year plan", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printCreated(stdout, res)
	return 0
}
