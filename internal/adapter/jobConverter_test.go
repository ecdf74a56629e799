package adapter

import (
	"net/http"
	"testing"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInitJobResponse(t *testing.T) {
	res := ToInitJobResponse("abc")

	assert.Equal(t, "abc", res.Id)
	assert.Equal(t, "/status/abc", res.StatusURL)
	assert.Equal(t, "/guide/abc", res.GuideURL)
}

func TestToAPIResponse_RunningJob(t *testing.T) {
	job := jobModel.Job{
		Id:          "job-1",
		Status:      jobModel.JobStatusRunning,
		CurrentStep: jobModel.FetchResources,
		CreatedTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Progress:    jobModel.JobProgress{TopicsDone: 1, TopicsTotal: 3, CurrentTopic: "Sorting"},
	}

	res := ToAPIResponse(job)

	assert.Equal(t, "RUNNING", res.Result.Status)
	assert.Equal(t, "FetchResources", res.Result.Step)
	require.NotNil(t, res.Result.Progress)
	assert.Equal(t, 1, res.Result.Progress.Completed)
	assert.Equal(t, 3, res.Result.Progress.Total)
	assert.Equal(t, 33.3, res.Result.Progress.Percent)
	assert.Equal(t, "Sorting", res.Result.Progress.CurrentTopic)
	assert.Nil(t, res.Result.Guide)
	assert.Nil(t, res.Error)
}

func TestToAPIResponse_QueuedJobHasNoProgress(t *testing.T) {
	res := ToAPIResponse(jobModel.Job{Id: "job-2", Status: jobModel.JobStatusQueued})

	assert.Nil(t, res.Result.Progress)
}

func TestToAPIResponse_CompleteJobWithFallback(t *testing.T) {
	job := jobModel.Job{
		Id:     "job-3",
		Status: jobModel.JobStatusComplete,
		JobPayload: jobModel.JobPayload{Guide: &commonModels.StudyGuide{
			DocumentName: "syllabus.pdf",
			Entries: []commonModels.TopicResources{
				{Topic: "Sorting", Resources: []string{"[Article] Sorting: https://example.com"}},
				{Topic: "Graphs"},
			},
		}},
	}

	res := ToAPIResponse(job)

	require.NotNil(t, res.Result.Guide)
	topics := res.Result.Guide.Topics
	require.Len(t, topics, 2)
	assert.Empty(t, topics[0].Message)
	assert.Equal(t, guide.FallbackMessage, topics[1].Message)
	assert.NotNil(t, topics[1].Resources, "empty resources encode as [] not null")
}

func TestToAPIResponse_WarningAndError(t *testing.T) {
	warned := ToAPIResponse(jobModel.Job{Status: jobModel.JobStatusWarning, Warning: "Could not extract topics."})
	assert.Equal(t, "Could not extract topics.", warned.Result.Warning)
	assert.Nil(t, warned.Error)

	failed := ToAPIResponse(jobModel.Job{
		Status: jobModel.JobStatusError,
		Error:  jobModel.JobError{Code: http.StatusInternalServerError, Message: "boom", Retry: true},
	})
	require.NotNil(t, failed.Error)
	assert.Equal(t, http.StatusInternalServerError, failed.Error.Code)
	assert.True(t, failed.Error.Retry)
}

func TestBadRequest(t *testing.T) {
	res := BadRequest("id-1", "Job not found", http.StatusNotFound)

	assert.Equal(t, "Error", res.Result.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, http.StatusNotFound, res.Error.Code)
	assert.False(t, res.Error.Retry)
	assert.True(t, BadRequest("", "slow down", http.StatusTooManyRequests).Error.Retry)
}
