package main

import (
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spotle/internal/game"
	"github.com/robalobadob/spotle/internal/mask"
	"github.com/robalobadob/spotle/internal/tui"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	setupLogOutput()

	rows := getEnvInt("SPOTLE_ROWS", 6)
	cols := getEnvInt("SPOTLE_COLS", 5)
	answer := getEnv("SPOTLE_ANSWER", "world")
	if len(answer) != cols {
		log.Fatal().Str("answer", answer).Int("cols", cols).Msg("answer length must match word length")
	}

	g := game.New(game.Config{
		Answer: answer,
		Rows:   rows,
		Cols:   cols,
		Mask:   mask.Default(rows, cols),
	})
	app := tui.NewApp(g, tui.ThemeByName(getEnv("SPOTLE_THEME", "dark")))

	log.Info().Int("rows", rows).Int("cols", cols).Msg("starting spotle")
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal ui exited")
	}
}

// setupLogOutput keeps zerolog off the screen while tview owns the terminal:
// logs go to SPOTLE_LOG_FILE when set and are discarded otherwise.
func setupLogOutput() {
	path := os.Getenv("SPOTLE_LOG_FILE")
	if path == "" {
		log.Logger = log.Output(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = log.Output(io.Discard)
		return
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
