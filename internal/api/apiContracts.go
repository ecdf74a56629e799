package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"5f0c6f8e-2b7a-4c1e-9a55-0d3c1d7e4b21"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status   string            `json:"status" example:"RUNNING"`
	Step     string            `json:"step,omitempty" example:"FetchResources"`
	Progress *ProgressResponse `json:"progress,omitempty"`
	Warning  string            `json:"warning,omitempty" example:"Could not extract topics. The PDF might be image-based or in an unrecognized format."`
	Guide    *GuideResponse    `json:"guide,omitempty"`
}

type ProgressResponse struct {
	Completed    int     `json:"completed" example:"3"`
	Total        int     `json:"total" example:"8"`
	Percent      float64 `json:"percent" example:"37.5"`
	CurrentTopic string  `json:"current_topic,omitempty" example:"Binary Search"`
}

type GuideResponse struct {
	DocumentName string          `json:"document_name" example:"syllabus.pdf"`
	Topics       []TopicResponse `json:"topics"`
}

type TopicResponse struct {
	Topic     string   `json:"topic" example:"Binary Search"`
	Resources []string `json:"resources"`
	Message   string   `json:"message,omitempty" example:"No specific resources found for this topic."`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
	GuideURL  string `json:"guide_url"`
}
