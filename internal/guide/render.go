package guide

import (
	"fmt"
	"strings"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
)

// FallbackMessage stands in for the resource list of a topic with no results.
const FallbackMessage = "No specific resources found for this topic."

// RenderMarkdown groups resources under one heading per topic.
func RenderMarkdown(g commonModels.StudyGuide) string {
	var b strings.Builder
	title := "Study Guide"
	if g.DocumentName != "" {
		title = fmt.Sprintf("Study Guide: %s", g.DocumentName)
	}
	fmt.Fprintf(&b, "# %s\n", title)

	for _, entry := range g.Entries {
		fmt.Fprintf(&b, "\n## %s\n\n", entry.Topic)
		if len(entry.Resources) == 0 {
			fmt.Fprintf(&b, "_%s_\n", FallbackMessage)
			continue
		}
		for _, r := range entry.Resources {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	return b.String()
}

// RenderText is the plain form used when stdout is not a terminal.
func RenderText(g commonModels.StudyGuide) string {
	var b strings.Builder
	for i, entry := range g.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", entry.Topic)
		if len(entry.Resources) == 0 {
			fmt.Fprintf(&b, "  %s\n", FallbackMessage)
			continue
		}
		for _, r := range entry.Resources {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}
	return b.String()
}
