// Command re-match reports whether a pattern accepts a whole text.
//
// Usage:
//
//	re-match [-log-level debug|info|warn|error] [-q] PATTERN TEXT
//
// It prints true or false and exits 0 on a match, 1 on no match and 2 on
// a usage error, a syntax error or an internal fault. The log level may also
// be set with REX_LOG_LEVEL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/matpuk/rex"
	"github.com/matpuk/rex/simd"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	fs := flag.NewFlagSet("re-match", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: re-match [flags] PATTERN TEXT")
		fs.PrintDefaults()
	}
	logLevel := fs.String("log-level", getEnv("REX_LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	quiet := fs.Bool("q", false, "print nothing, report through the exit code only")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitError
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal fault", "panic", r)
			fmt.Fprintf(stderr, "error: internal fault: %v\n", r)
			code = exitError
		}
	}()

	pattern, text := fs.Arg(0), fs.Arg(1)
	logger.Debug("compiling", "version", Version, "simd", simd.Features(), "pattern", pattern)

	re, err := rex.Compile(pattern)
	if err != nil {
		if errors.Is(err, rex.ErrSyntax) {
			logger.Debug("syntax error", "pattern", pattern, "error", err)
		} else {
			logger.Error("compile failed", "pattern", pattern, "error", err)
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	logger.Debug("compiled", "pattern", pattern, "strategy", re.Strategy())

	matched := re.MatchString(text)
	logger.Info("matched", "pattern", pattern, "text_len", len(text), "result", matched)

	if !*quiet {
		fmt.Fprintln(stdout, matched)
	}
	if matched {
		return exitMatch
	}
	return exitNoMatch
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
