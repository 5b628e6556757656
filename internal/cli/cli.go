// Package cli carries the zpack command-line surface: flag and environment
// handling, the cobra command tree, and the per-family terminal report.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config collects the flags shared by every subcommand.
type Config struct {
	WorkDir      string
	ConfigPath   string
	LogLvl       string
	SkipValidate bool
	NoProgress   bool
}

// defaultConfig reads environment defaults the same way flags do.
func defaultConfig() *Config {
	return &Config{
		WorkDir: envStr("ZPACK_WORKDIR", "."),
		LogLvl:  envStr("ZPACK_LOG_LEVEL", "info"),
	}
}

// newLogger builds the console logger used by one invocation.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	root := buildRootCmdWith(defaultConfig())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/zpack.
func Main() int { return MainWithArgs(os.Args[1:]) }

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}
