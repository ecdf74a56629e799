// Package topics finds study topics in syllabus text.
package topics

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

// ErrUnrecognizedFormat means the text produced no usable topic.
var ErrUnrecognizedFormat = errors.New("could not extract topics: syllabus format not recognized")

var trailingNumbering = regexp.MustCompile(`[\d.:-]*$`)

// CandidateExtractor proposes raw topic strings. Swap it to change how topics
// are found; cleaning and dedup stay in Detector.
type CandidateExtractor interface {
	Candidates(text string) []string
}

type Detector struct {
	extractor CandidateExtractor
	minLength int
	logger    *logger_i.Logger
}

// NewDetector falls back to the pattern heuristic when extractor is nil.
func NewDetector(extractor CandidateExtractor) *Detector {
	if extractor == nil {
		extractor = NewPatternExtractor()
	}
	return &Detector{
		extractor: extractor,
		minLength: config.MinTopicLength,
		logger:    logger_i.NewLogger("TopicDetector"),
	}
}

// Detect returns cleaned topics in first-seen order without duplicates.
func (d *Detector) Detect(text string) ([]string, error) {
	seen := make(map[string]struct{})
	var topics []string

	for _, candidate := range d.extractor.Candidates(text) {
		topic := Clean(candidate)
		if utf8.RuneCountInString(topic) < d.minLength {
			continue
		}
		if _, dup := seen[topic]; dup {
			continue
		}
		seen[topic] = struct{}{}
		topics = append(topics, topic)
	}

	if len(topics) == 0 {
		d.logger.Warn("Could not automatically extract topics. The syllabus format may not be recognized.")
		return nil, ErrUnrecognizedFormat
	}
	d.logger.Debug("Detected topics", "count", len(topics))
	return topics, nil
}

// Clean trims a candidate and drops trailing numbering such as "12." or "1-3:".
func Clean(candidate string) string {
	topic := strings.TrimSpace(candidate)
	topic = trailingNumbering.ReplaceAllString(topic, "")
	return strings.TrimSpace(topic)
}
