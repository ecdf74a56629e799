package guide

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
)

var (
	// ErrNoText means the document yielded no text, usually a scanned PDF.
	ErrNoText = errors.New("no text could be extracted from the document")
	// ErrNoTopics means text was found but no line looked like a topic.
	ErrNoTopics = errors.New("no topics could be detected in the document")
)

const (
	noTextMessage   = "No text could be extracted. The document might be image-based, empty or in an unsupported format."
	noTopicsMessage = "Could not extract topics. The PDF might be image-based or in an unrecognized format."
)

// IsWarning reports whether err halts the guide without being a failure.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoText) || errors.Is(err, ErrNoTopics)
}

// WarningMessage is the user-facing text for a warning, "" for anything else.
func WarningMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoText):
		return noTextMessage
	case errors.Is(err, ErrNoTopics):
		return noTopicsMessage
	default:
		return ""
	}
}

// OriginalName strips the staging prefix from a staged path:
// "/tmp/1700000000000000000-syllabus.pdf" -> "syllabus.pdf".
func OriginalName(stagedPath string) string {
	base := filepath.Base(stagedPath)
	prefix, rest, found := strings.Cut(base, "-")
	if !found || rest == "" || strings.Trim(prefix, "0123456789") != "" || prefix == "" {
		return base
	}
	return rest
}

func (s *service) removeStaged(docPath string) {
	if docPath == "" {
		return
	}
	if err := os.Remove(docPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("Could not remove staged document", "path", docPath, "error", err)
		return
	}
	s.logger.Debug("Removed staged document", "path", docPath)
}

type silentProgress struct{}

func (silentProgress) Stage(jobModel.InternalStatus) {}
func (silentProgress) Advance(int, int, string)      {}
