package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusWarning  JobStatus = "WARNING"
	JobStatusError    JobStatus = "Error"

	GuideInit      InternalStatus = "Init"
	ExtractText    InternalStatus = "ExtractText"
	DetectTopics   InternalStatus = "DetectTopics"
	FetchResources InternalStatus = "FetchResources"
	Error          InternalStatus = "Error"

	Complete InternalStatus = "Complete"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobPayload  JobPayload     `json:"job_payload"`
	Progress    JobProgress    `json:"progress"`
	Warning     string         `json:"warning,omitempty"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	DocumentName string                   `json:"document_name,omitempty"`
	DocumentPath string                   `json:"document_path,omitempty"`
	Guide        *commonModels.StudyGuide `json:"guide,omitempty"`
}

type JobProgress struct {
	TopicsDone   int    `json:"topics_done"`
	TopicsTotal  int    `json:"topics_total"`
	CurrentTopic string `json:"current_topic,omitempty"`
}

// Percent is 0 until topics are known.
func (p JobProgress) Percent() float64 {
	if p.TopicsTotal <= 0 {
		return 0
	}
	return float64(p.TopicsDone) * 100 / float64(p.TopicsTotal)
}

func (j Job) IsFinished() bool {
	return j.Status == JobStatusComplete || j.Status == JobStatusWarning || j.Status == JobStatusError
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
