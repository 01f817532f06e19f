package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/moby/term"
	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// IsTerminal reports whether v is a file descriptor attached to a terminal.
func IsTerminal(v any) bool {
	_, isTerm := term.GetFdInfo(v)
	return isTerm
}

func newRenderer(out io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	switch {
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case mode == ColorNever, !IsTerminal(out):
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
