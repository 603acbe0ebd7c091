package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const defaultWrapWidth = 100

// renderMarkdown styles a markdown report for the terminal. The style follows
// the terminal background and degrades to plain text when stdout is not a TTY.
func renderMarkdown(md []byte, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return string(out), nil
}
