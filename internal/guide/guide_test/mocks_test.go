package guide_test

import (
	"context"
	"sync"

	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
)

// MockExtractor implements guide.TextExtractor
type MockExtractor struct {
	OnExtract func(path string) string
}

func (m *MockExtractor) Extract(path string) string {
	if m.OnExtract != nil {
		return m.OnExtract(path)
	}
	return "Unit 1: Arrays and Lists\nUnit 2: Sorting"
}

// MockDetector implements guide.TopicDetector
type MockDetector struct {
	OnDetect func(text string) ([]string, error)
}

func (m *MockDetector) Detect(text string) ([]string, error) {
	if m.OnDetect != nil {
		return m.OnDetect(text)
	}
	return []string{"Arrays and Lists", "Sorting"}, nil
}

// MockFinder implements guide.ResourceLookup and remembers the topics it was asked about.
type MockFinder struct {
	OnFindResources func(ctx context.Context, topic string) []string

	mu     sync.Mutex
	Topics []string
}

func (m *MockFinder) FindResources(ctx context.Context, topic string) []string {
	m.mu.Lock()
	m.Topics = append(m.Topics, topic)
	m.mu.Unlock()
	if m.OnFindResources != nil {
		return m.OnFindResources(ctx, topic)
	}
	return []string{"[Video] " + topic + ": https://www.youtube.com/watch?v=x"}
}

type advance struct {
	Done  int
	Total int
	Topic string
}

// RecordingProgress implements guide.ProgressReporter
type RecordingProgress struct {
	Steps    []jobModel.InternalStatus
	Advances []advance
}

func (r *RecordingProgress) Stage(step jobModel.InternalStatus) {
	r.Steps = append(r.Steps, step)
}

func (r *RecordingProgress) Advance(done int, total int, topic string) {
	r.Advances = append(r.Advances, advance{Done: done, Total: total, Topic: topic})
}
