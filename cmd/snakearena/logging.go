package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "snakearena.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns the process logger
// With debug, JSON records go to logs/snakearena.log, rotated when over maxLogSize;
// the returned file must be closed by the caller. Without debug, warnings and
// errors go to fallback as text, or nowhere when fallback is nil
func setupLogging(debug bool, fallback io.Writer) (*slog.Logger, *os.File) {
	if !debug {
		if fallback == nil {
			fallback = io.Discard
		}
		return slog.New(slog.NewTextHandler(fallback, &slog.HandlerOptions{Level: slog.LevelWarn})), nil
	}

	f, err := openLogFile()
	if err != nil {
		if fallback == nil {
			fallback = os.Stderr
		}
		fmt.Fprintf(fallback, "debug log unavailable: %v\n", err)
		return slog.New(slog.NewTextHandler(fallback, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snakearena-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
