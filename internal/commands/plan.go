package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/klabast/yearplan/internal/app"
	"github.com/klabast/yearplan/internal/logger"
)

// Plan handles the default command and returns the process exit status
func Plan(ctx context.Context, args []string) int {
	return runPlan(ctx, args, os.Stdout, os.Stderr)
}

func runPlan(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("yearplan", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntP("year", "y", 0, "Year to generate (default: next year)")
	fs.StringP("language", "l", app.DefaultLanguage, "Language for month and weekday names ("+strings.Join(app.SupportedLanguages, ", ")+")")
	fs.StringP("output", "o", "", "Output filename (default: year_plan_{year}_{lang}.pdf)")
	fs.StringP("format", "f", "", "Output format: pdf, png or trace (default: from the output extension, else pdf)")
	fs.String("holidays", "", "Mark public holidays of a region (de, nrw)")
	fs.Float64("scale", 2, "Pixels per point for png output")
	fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	fs.String("log-format", logger.FormatAuto, "Log format (auto, console, json)")
	fs.String("log-output", "stderr", "Log output (stdout, stderr or a file path)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: yearplan [OPTIONS]\n")
		fmt.Fprintf(stderr, "       yearplan fixed [YEAR]\n\n")
		fmt.Fprintf(stderr, "Creates a one-page year planner.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(stderr, "  %s_<OPTION>  Any option, e.g. %s_LANGUAGE=de or %s_LOG_LEVEL=debug\n", app.EnvPrefix, app.EnvPrefix, app.EnvPrefix)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := app.LoadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	res, err := app.Generate(ctx, app.Options{
		Year:     cfg.Year,
		Language: cfg.Language,
		Strategy: app.Localized,
		Output:   cfg.Output,
		Format:   app.Format(cfg.Format),
		Holidays: cfg.Holidays,
		Scale:    cfg.Scale,
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

func printCreated(w io.Writer, res *app.Result) {
	fmt.Fprintf(w, "%s created: %s\n", strings.ToUpper(string(res.Format)), res.Path)
	if res.Fingerprint != "" {
		fmt.Fprintf(w, "Fingerprint: %s\n", res.Fingerprint)
	}
}
