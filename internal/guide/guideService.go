// Package guide turns a staged syllabus into a study guide: text, then topics,
// then resources per topic.
package guide

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/extract"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
	"github.com/akolanti/StudyGuideAPI/internal/pacing"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

// Service is the only thing the worker and the CLI call. It owns the staged
// document for the duration of the call.
type Service interface {
	BuildGuide(ctx context.Context, docPath string, progress ProgressReporter) (commonModels.StudyGuide, error)
}

type TextExtractor interface {
	Extract(path string) string
}

type TopicDetector interface {
	Detect(text string) ([]string, error)
}

type ResourceLookup interface {
	FindResources(ctx context.Context, topic string) []string
}

// ProgressReporter hears about every step change and every topic lookup.
// Advance is called with done topics so far, the total and the topic in hand.
type ProgressReporter interface {
	Stage(step jobModel.InternalStatus)
	Advance(done int, total int, topic string)
}

type service struct {
	extractor   TextExtractor
	detector    TopicDetector
	finder      ResourceLookup
	lookupDelay time.Duration
	logger      *logger_i.Logger
}

func NewService(extractor TextExtractor, detector TopicDetector, finder ResourceLookup, lookupDelay time.Duration) Service {
	return &service{
		extractor:   extractor,
		detector:    detector,
		finder:      finder,
		lookupDelay: lookupDelay,
		logger:      logger_i.NewLogger("GuideService"),
	}
}

// BuildGuide always removes docPath before returning. On ErrNoText and
// ErrNoTopics the returned guide carries the document name and no entries.
func (s *service) BuildGuide(ctx context.Context, docPath string, progress ProgressReporter) (commonModels.StudyGuide, error) {
	start := time.Now()
	defer s.removeStaged(docPath)
	if progress == nil {
		progress = silentProgress{}
	}
	log := s.logger.WithTrace(ctx)

	guide := commonModels.StudyGuide{DocumentName: OriginalName(docPath)}

	text := s.executeExtractStep(log, progress, docPath)
	if extract.IsBlank(text) {
		return guide, ErrNoText
	}

	topics, err := s.executeDetectStep(log, progress, text)
	if err != nil {
		return guide, err
	}

	entries, err := s.executeLookupStep(ctx, log, progress, topics)
	guide.Entries = entries
	if err != nil {
		return guide, err
	}

	progress.Stage(jobModel.Complete)
	log.Info("Study guide built", "document", guide.DocumentName, "topics", len(guide.Entries), "elapsed", time.Since(start))
	return guide, nil
}

func (s *service) executeExtractStep(log *logger_i.Logger, progress ProgressReporter, docPath string) string {
	progress.Stage(jobModel.ExtractText)
	log.Debug("BuildGuide", "Current Step", jobModel.ExtractText)
	return s.extractor.Extract(docPath)
}

func (s *service) executeDetectStep(log *logger_i.Logger, progress ProgressReporter, text string) ([]string, error) {
	progress.Stage(jobModel.DetectTopics)
	log.Debug("BuildGuide", "Current Step", jobModel.DetectTopics)

	topics, err := s.detector.Detect(text)
	if err != nil || len(topics) == 0 {
		log.Warn("No topics detected", "error", err)
		if err == nil {
			return nil, ErrNoTopics
		}
		return nil, fmt.Errorf("%w: %w", ErrNoTopics, err)
	}
	metrics.CaptureTopicCount(len(topics))
	return topics, nil
}

// executeLookupStep resolves topics one at a time, pausing lookupDelay after
// each lookup. The pause is scoped to this guide.
func (s *service) executeLookupStep(ctx context.Context, log *logger_i.Logger, progress ProgressReporter, topics []string) ([]commonModels.TopicResources, error) {
	progress.Stage(jobModel.FetchResources)
	log.Debug("BuildGuide", "Current Step", jobModel.FetchResources, "topics", len(topics))

	polite := pacing.NewPoliteness(s.lookupDelay)
	entries := make([]commonModels.TopicResources, 0, len(topics))
	total := len(topics)

	for i, topic := range topics {
		if err := polite.Wait(ctx); err != nil {
			log.Warn("Resource lookup stopped", "done", i, "total", total, "error", err)
			return entries, fmt.Errorf("looking up resources: %w", err)
		}
		progress.Advance(i, total, topic)

		found := s.finder.FindResources(ctx, topic)
		polite.Done()
		entries = append(entries, commonModels.TopicResources{
			Topic:     topic,
			Resources: found,
		})
		progress.Advance(i+1, total, topic)
	}
	return entries, nil
}
