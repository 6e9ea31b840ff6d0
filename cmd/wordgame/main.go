package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/jask/wordgame/internal/config"
	"github.com/jask/wordgame/internal/database"
	"github.com/jask/wordgame/internal/database/repository"
	"github.com/jask/wordgame/internal/game"
	"github.com/jask/wordgame/internal/logging"
	"github.com/jask/wordgame/internal/service"
	"github.com/jask/wordgame/internal/settings"
	"github.com/jask/wordgame/internal/tui"
)

const usage = `usage: wordgame [flags] <dictionary>

Find every word spelled from a set of letters. The dictionary is a JSON
list, a JSON object keyed by word, or a text file with one word per line.

flags:
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("wordgame", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	solveLetters := fs.StringP("solve", "s", "", "print every answer for `letters` (first letter required) and exit")
	minLength := fs.IntP("min", "m", -1, "minimum word length for --solve (default from config)")
	clearCache := fs.Bool("clear-cache", false, "delete the dictionary cache and exit")
	writeConfig := fs.Bool("write-config", false, "write the effective config file and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	logger, closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	if *writeConfig {
		path, err := config.Save(cfg)
		if err != nil {
			return fatal(stderr, logger, err)
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return 0
	}

	db := openCache(cfg.Dictionary.CachePath, logger)
	if db != nil {
		defer db.Close()
	}

	if *clearCache {
		maintenance := &service.MaintenanceService{DB: db}
		if err := maintenance.Reset(ctx); err != nil {
			return fatal(stderr, logger, err)
		}
		fmt.Fprintln(stdout, "dictionary cache cleared")
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		fmt.Fprintln(stderr, "\nerror: a dictionary file is required")
		return 1
	}
	path := fs.Arg(0)

	dictionaries := &service.DictionaryService{Logger: logger}
	if db != nil {
		dictionaries.Dictionaries = repository.NewDictionaryRepo(db)
	}

	if *solveLetters != "" {
		n := *minLength
		if n < 0 {
			n = cfg.Game.DefaultMinLength
		}
		if err := solve(ctx, dictionaries.Source(path), *solveLetters, n, stdout); err != nil {
			return fatal(stderr, logger, err)
		}
		return 0
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		return fatal(stderr, logger, errors.New("wordgame needs an interactive terminal"))
	}
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		logger.Debug().Int("width", w).Int("height", h).Msg("terminal size")
	}

	session := game.NewSession(game.Config{
		Settings: settings.Options{
			LetterCounts:       cfg.Game.LetterCounts,
			DefaultLetterCount: cfg.Game.DefaultLetterCount,
			MinLengths:         cfg.Game.MinLengths,
			DefaultMinLength:   cfg.Game.DefaultMinLength,
			MaxManualLetters:   cfg.Game.MaxManualLetters,
		},
		MaxGuessLength: cfg.Game.MaxGuessLength,
		Logger:         logger,
	})
	app := tui.New(ctx, cfg.UI, session, dictionaries.Source(path), logger)
	logger.Info().Str("session", session.ID()).Str("dictionary", path).Msg("starting")

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fatal(stderr, logger, err)
	}
	if err := app.Err(); err != nil {
		return fatal(stderr, logger, err)
	}
	logger.Info().Int("found", len(session.FoundWords())).Int("total", session.Total()).
		Str("state", session.State().String()).Msg("exiting")
	return 0
}

// openCache opens the dictionary cache. A cache that cannot be opened is
// logged and skipped.
func openCache(path string, logger zerolog.Logger) *sql.DB {
	if path == "" {
		return nil
	}
	db, err := database.OpenMigrated(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("dictionary cache disabled")
		return nil
	}
	return db
}

func fatal(stderr io.Writer, logger zerolog.Logger, err error) int {
	logger.Error().Err(err).Msg("fatal")
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}
