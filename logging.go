package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// logPath is where -debug writes. The terminal belongs to the UI, so logs
// never go to stdout or stderr.
var logPath = filepath.Join(os.TempDir(), "garland.log")

// setupLogging routes the standard logger to the debug file, or discards it.
// The returned file is nil when debug is off.
func setupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(logPath, "garland")
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
