package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewLogger builds the CLI logger on stderr. quiet drops everything below Error;
// format "text" switches from JSON to slog's text handler.
func NewLogger(quiet bool, format string) *slog.Logger {
	return newLogger(os.Stderr, quiet, format)
}

func newLogger(w io.Writer, quiet bool, format string) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeSourceKey cleans up a source identifier typed or pasted on the command line.
// It accepts cache filenames ("eng_webp.html") and strips quotes and trailing punctuation.
func SanitizeSourceKey(raw string) string {
	cleaned := strings.TrimSpace(raw)

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	cleaned = filepath.Base(cleaned)
	cleaned = strings.TrimSuffix(cleaned, ".html")

	return strings.TrimSpace(cleaned)
}
