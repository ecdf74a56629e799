package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akolanti/StudyGuideAPI/internal/adapter"
	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func isKnownFormat(format string) bool {
	switch format {
	case formatText, formatMarkdown, formatJSON:
		return true
	}
	return false
}

func writeGuide(w io.Writer, g commonModels.StudyGuide, format string) error {
	switch format {
	case formatMarkdown:
		_, err := io.WriteString(w, guide.RenderMarkdown(g))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(adapter.ToGuideResponse(&g))
	default:
		if color.NoColor {
			_, err := fmt.Fprintf(w, "Study Guide: %s\n\n%s", g.DocumentName, guide.RenderText(g))
			return err
		}
		return writeColoredText(w, g)
	}
}

// writeColoredText is the terminal form of RenderText.
func writeColoredText(w io.Writer, g commonModels.StudyGuide) error {
	title := color.New(color.Bold)
	heading := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	if _, err := title.Fprintf(w, "Study Guide: %s\n", g.DocumentName); err != nil {
		return err
	}
	for _, entry := range g.Entries {
		fmt.Fprintln(w)
		heading.Fprintln(w, entry.Topic)
		if len(entry.Resources) == 0 {
			faint.Fprintf(w, "  %s\n", guide.FallbackMessage)
			continue
		}
		for _, r := range entry.Resources {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
	return nil
}
