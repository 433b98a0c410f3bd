package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/garland/internal/canvas"
	"github.com/olivier-w/garland/internal/garland"
	"github.com/olivier-w/garland/internal/hue"
	"github.com/olivier-w/garland/internal/scene"
	"github.com/olivier-w/garland/internal/settings"
	"github.com/olivier-w/garland/internal/texture"
	"github.com/olivier-w/garland/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logFile, err := setupLogging(opts.debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("garland: starting with %d lights, %s, %s", opts.cfg.NumberOfLights, opts.cfg.AnimationStyle, opts.cfg.ColorMode)

	sprites := texture.NewSpriteStore(garland.Palette())
	renderer := garland.New(scene.NewSurface(scene.Size{}), sprites, hue.NewManager(sprites))
	store := settings.NewStore(opts.cfg)
	enc := canvas.NewEncoder(canvas.DetectProfile())
	log.Printf("garland: color profile %v", enc.Profile())
	model := ui.New(store, renderer, enc)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
