package guide_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/extract"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/akolanti/StudyGuideAPI/internal/topics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stage(t *testing.T, name string, content string) string {
	t.Helper()
	path, err := guide.StageDocument(t.TempDir(), name, strings.NewReader(content))
	require.NoError(t, err)
	return path
}

func assertRemoved(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "staged document %s should be removed", path)
}

func TestBuildGuide_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(e *MockExtractor, d *MockDetector, f *MockFinder)
		expectedErr   error
		expectedTopic []string
		expectedSteps []jobModel.InternalStatus
	}{
		{
			name:          "Success_Full_Flow",
			setupMocks:    func(e *MockExtractor, d *MockDetector, f *MockFinder) {},
			expectedTopic: []string{"Arrays and Lists", "Sorting"},
			expectedSteps: []jobModel.InternalStatus{jobModel.ExtractText, jobModel.DetectTopics, jobModel.FetchResources, jobModel.Complete},
		},
		{
			name: "Warning_No_Text",
			setupMocks: func(e *MockExtractor, d *MockDetector, f *MockFinder) {
				e.OnExtract = func(path string) string { return "  \n\t " }
			},
			expectedErr:   guide.ErrNoText,
			expectedSteps: []jobModel.InternalStatus{jobModel.ExtractText},
		},
		{
			name: "Warning_No_Topics",
			setupMocks: func(e *MockExtractor, d *MockDetector, f *MockFinder) {
				d.OnDetect = func(text string) ([]string, error) { return nil, topics.ErrUnrecognizedFormat }
			},
			expectedErr:   guide.ErrNoTopics,
			expectedSteps: []jobModel.InternalStatus{jobModel.ExtractText, jobModel.DetectTopics},
		},
		{
			name: "Warning_Empty_Topic_List",
			setupMocks: func(e *MockExtractor, d *MockDetector, f *MockFinder) {
				d.OnDetect = func(text string) ([]string, error) { return []string{}, nil }
			},
			expectedErr:   guide.ErrNoTopics,
			expectedSteps: []jobModel.InternalStatus{jobModel.ExtractText, jobModel.DetectTopics},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mExtract := &MockExtractor{}
			mDetect := &MockDetector{}
			mFind := &MockFinder{}
			tt.setupMocks(mExtract, mDetect, mFind)

			s := guide.NewService(mExtract, mDetect, mFind, 0)
			path := stage(t, "syllabus.pdf", "%PDF-1.4")
			progress := &RecordingProgress{}

			result, err := s.BuildGuide(context.Background(), path, progress)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, guide.IsWarning(err))
				assert.Empty(t, result.Entries)
				assert.Empty(t, mFind.Topics, "no lookups after a warning")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "syllabus.pdf", result.DocumentName)
			assert.Equal(t, tt.expectedTopic, mFind.Topics)
			assert.Equal(t, tt.expectedSteps, progress.Steps)
			assertRemoved(t, path)
		})
	}
}

func TestBuildGuide_EntriesKeepTopicOrderAndResources(t *testing.T) {
	mFind := &MockFinder{OnFindResources: func(ctx context.Context, topic string) []string {
		if topic == "Sorting" {
			return nil
		}
		return []string{"[Video] A: https://www.youtube.com/watch?v=a", "[Article] B: https://example.com/b"}
	}}
	s := guide.NewService(&MockExtractor{}, &MockDetector{}, mFind, 0)

	result, err := s.BuildGuide(context.Background(), stage(t, "course.txt", "x"), nil)

	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, []string{"Arrays and Lists", "Sorting"}, result.Topics())
	assert.Len(t, result.Entries[0].Resources, 2)
	assert.Empty(t, result.Entries[1].Resources)
}

func TestBuildGuide_ReportsProgressPerTopic(t *testing.T) {
	s := guide.NewService(&MockExtractor{}, &MockDetector{}, &MockFinder{}, 0)
	progress := &RecordingProgress{}

	_, err := s.BuildGuide(context.Background(), stage(t, "course.pdf", "x"), progress)

	require.NoError(t, err)
	assert.Equal(t, []advance{
		{Done: 0, Total: 2, Topic: "Arrays and Lists"},
		{Done: 1, Total: 2, Topic: "Arrays and Lists"},
		{Done: 1, Total: 2, Topic: "Sorting"},
		{Done: 2, Total: 2, Topic: "Sorting"},
	}, progress.Advances)
}

func TestBuildGuide_PacesTopicLookups(t *testing.T) {
	mDetect := &MockDetector{OnDetect: func(string) ([]string, error) {
		return []string{"Arrays", "Trees", "Graphs"}, nil
	}}
	s := guide.NewService(&MockExtractor{}, mDetect, &MockFinder{}, 40*time.Millisecond)

	start := time.Now()
	_, err := s.BuildGuide(context.Background(), stage(t, "course.pdf", "x"), nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond, "three lookups need two full delays")
}

func TestBuildGuide_DelayFollowsSlowLookups(t *testing.T) {
	mDetect := &MockDetector{OnDetect: func(string) ([]string, error) {
		return []string{"Arrays", "Trees", "Graphs"}, nil
	}}
	mFind := &MockFinder{OnFindResources: func(context.Context, string) []string {
		time.Sleep(60 * time.Millisecond)
		return nil
	}}
	s := guide.NewService(&MockExtractor{}, mDetect, mFind, 40*time.Millisecond)

	start := time.Now()
	_, err := s.BuildGuide(context.Background(), stage(t, "course.pdf", "x"), nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond, "three lookups plus a full delay after each of the first two")
}

func TestBuildGuide_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mFind := &MockFinder{OnFindResources: func(context.Context, string) []string {
		cancel()
		return nil
	}}
	s := guide.NewService(&MockExtractor{}, &MockDetector{}, mFind, time.Hour)
	path := stage(t, "course.pdf", "x")

	result, err := s.BuildGuide(ctx, path, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, guide.IsWarning(err))
	assert.Len(t, result.Entries, 1, "the topic looked up before cancellation is kept")
	assertRemoved(t, path)
}

func TestBuildGuide_RemovesStagedFileOnFinderPanic(t *testing.T) {
	mFind := &MockFinder{OnFindResources: func(context.Context, string) []string { panic("boom") }}
	s := guide.NewService(&MockExtractor{}, &MockDetector{}, mFind, 0)
	path := stage(t, "course.pdf", "x")

	assert.Panics(t, func() { _, _ = s.BuildGuide(context.Background(), path, nil) })
	assertRemoved(t, path)
}

func TestBuildGuide_WithRealExtractorAndDetector(t *testing.T) {
	s := guide.NewService(extract.NewExtractor(), topics.NewDetector(nil), &MockFinder{}, 0)
	path := stage(t, "syllabus.txt", "Course Outline\nUnit 1: Arrays and Lists\n1. Binary Search\n- Recursion\n- Recursion\n")

	result, err := s.BuildGuide(context.Background(), path, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Arrays and Lists", "Binary Search", "Recursion"}, result.Topics())
	assertRemoved(t, path)
}

func TestBuildGuide_ImageOnlyDocumentWarns(t *testing.T) {
	s := guide.NewService(extract.NewExtractor(), topics.NewDetector(nil), &MockFinder{}, 0)
	path := stage(t, "scan.pdf", "not really a pdf")

	_, err := s.BuildGuide(context.Background(), path, nil)

	require.ErrorIs(t, err, guide.ErrNoText)
	assert.Contains(t, guide.WarningMessage(err), "No text could be extracted")
	assertRemoved(t, path)
}

func TestWarningMessage(t *testing.T) {
	assert.Equal(t,
		"Could not extract topics. The PDF might be image-based or in an unrecognized format.",
		guide.WarningMessage(guide.ErrNoTopics))
	assert.NotEmpty(t, guide.WarningMessage(guide.ErrNoText))
	assert.Empty(t, guide.WarningMessage(errors.New("other")))
	assert.False(t, guide.IsWarning(context.DeadlineExceeded))
}

func TestStageDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "staging")

	path, err := guide.StageDocument(dir, "../../etc/syllabus.pdf", bytes.NewReader([]byte("%PDF-1.4 body")))

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path), "path components in the upload name are dropped")
	assert.True(t, strings.HasSuffix(path, "-syllabus.pdf"))
	assert.Equal(t, "syllabus.pdf", guide.OriginalName(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(content))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestStageDocument_FailedCopyLeavesNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := guide.StageDocument(dir, "syllabus.pdf", failingReader{})

	require.Error(t, err)
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestOriginalName(t *testing.T) {
	assert.Equal(t, "syllabus.pdf", guide.OriginalName("/tmp/x/1700000000-syllabus.pdf"))
	assert.Equal(t, "my-notes.txt", guide.OriginalName("/tmp/x/42-my-notes.txt"))
	assert.Equal(t, "my-notes.txt", guide.OriginalName("/tmp/x/my-notes.txt"))
}

func TestRenderMarkdown(t *testing.T) {
	g := commonModels.StudyGuide{
		DocumentName: "syllabus.pdf",
		Entries: []commonModels.TopicResources{
			{Topic: "Sorting", Resources: []string{"[Video] Sorting: https://www.youtube.com/watch?v=s"}},
			{Topic: "Graphs"},
		},
	}

	md := guide.RenderMarkdown(g)

	assert.Contains(t, md, "# Study Guide: syllabus.pdf")
	assert.Contains(t, md, "## Sorting\n\n- [Video] Sorting: https://www.youtube.com/watch?v=s\n")
	assert.Contains(t, md, "## Graphs\n\n_"+guide.FallbackMessage+"_\n")
	assert.Less(t, strings.Index(md, "## Sorting"), strings.Index(md, "## Graphs"))

	text := guide.RenderText(g)
	assert.Contains(t, text, "Graphs\n  "+guide.FallbackMessage)
}
