package adapter

import (
	"fmt"
	"math"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/api"
	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("/status/%s", id),
		GuideURL:  fmt.Sprintf("/guide/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {
	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:   string(job.Status),
		Step:     string(job.CurrentStep),
		Progress: ToProgressResponse(job.Progress),
		Warning:  job.Warning,
		Guide:    ToGuideResponse(job.JobPayload.Guide),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

// ToProgressResponse is nil until the topic count is known.
func ToProgressResponse(p jobModel.JobProgress) *api.ProgressResponse {
	if p.TopicsTotal == 0 {
		return nil
	}
	return &api.ProgressResponse{
		Completed:    p.TopicsDone,
		Total:        p.TopicsTotal,
		Percent:      math.Round(p.Percent()*10) / 10,
		CurrentTopic: p.CurrentTopic,
	}
}

// ToGuideResponse fills in the fallback message for topics without resources.
func ToGuideResponse(g *commonModels.StudyGuide) *api.GuideResponse {
	if g == nil {
		return nil
	}
	topics := make([]api.TopicResponse, 0, len(g.Entries))
	for _, entry := range g.Entries {
		t := api.TopicResponse{
			Topic:     entry.Topic,
			Resources: entry.Resources,
		}
		if len(entry.Resources) == 0 {
			t.Resources = []string{}
			t.Message = guide.FallbackMessage
		}
		topics = append(topics, t)
	}
	return &api.GuideResponse{
		DocumentName: g.DocumentName,
		Topics:       topics,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   code == 429,
		},
	}
}
