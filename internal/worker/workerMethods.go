package worker

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	jobmodel "github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

const finalSaveTimeout = 5 * time.Second

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobTimeout)
	defer cancel()
	log := logger.With("traceId", job.TraceId, "jobId", job.Id)
	log.Debug("Processing job", "document", job.JobPayload.DocumentName)

	job.CurrentStep = jobmodel.GuideInit
	saveJobState(ctx, job, jobmodel.JobStatusRunning, log)
	job.Status = jobmodel.JobStatusRunning

	reporter := &jobProgress{ctx: ctx, job: &job, log: log}
	studyGuide, err := _guideService.BuildGuide(ctx, job.JobPayload.DocumentPath, reporter)
	job = finishJob(job, studyGuide, err, log)

	// the job context may already be spent, the final state must still land
	saveCtx, saveCancel := context.WithTimeout(ctxTrace, finalSaveTimeout)
	defer saveCancel()
	saveJobState(saveCtx, job, job.Status, log)
}

// finishJob maps the outcome of BuildGuide onto the job.
func finishJob(job jobmodel.Job, studyGuide commonModels.StudyGuide, err error, log *logger_i.Logger) jobmodel.Job {
	job.EndTime = time.Now()
	job.JobPayload.DocumentPath = ""

	switch {
	case err == nil:
		job.JobPayload.Guide = &studyGuide
		job.Status = jobmodel.JobStatusComplete
		job.CurrentStep = jobmodel.Complete
		log.Info("Job complete", "topics", len(studyGuide.Entries))

	case guide.IsWarning(err):
		job.JobPayload.Guide = &studyGuide
		job.Warning = guide.WarningMessage(err)
		job.Status = jobmodel.JobStatusWarning
		log.Warn("Job halted", "reason", err)

	default:
		if len(studyGuide.Entries) > 0 {
			job.JobPayload.Guide = &studyGuide
		}
		job.Error = jobmodel.JobError{
			Code:    http.StatusInternalServerError,
			Message: "Study guide could not be completed",
			Retry:   true,
		}
		job.Status = jobmodel.JobStatusError
		job.CurrentStep = jobmodel.Error
		log.Error("Job failed", "error", err)
	}
	return job
}

// drainQueue empties the job channel at shutdown. Nothing will pick these jobs
// up again, so their uploads are removed and they are closed out as errors.
func drainQueue() {
	for {
		select {
		case queued := <-_jobService.JobChannel:
			abandonJob(queued)
			metrics.DecrementJobsInQueue()
		default:
			return
		}
	}
}

func abandonJob(job jobmodel.Job) {
	log := logger.With("traceId", job.TraceId, "jobId", job.Id)
	if path := job.JobPayload.DocumentPath; path != "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Error("Failed to remove staged upload", "path", path, "err", err)
		}
	}

	job.JobPayload.DocumentPath = ""
	job.EndTime = time.Now()
	job.CurrentStep = jobmodel.Error
	job.Error = jobmodel.JobError{
		Code:    http.StatusServiceUnavailable,
		Message: "Server shut down before the study guide was built",
		Retry:   true,
	}

	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, finalSaveTimeout)
	defer cancel()
	saveJobState(ctx, job, jobmodel.JobStatusError, log)
	log.Warn("Dropped queued job at shutdown")
}

func removeWorker(reason string) {
	releaseWorker(reason, atomic.AddInt64(&currentWorkerCount, -1))
}

// releaseWorker finishes a worker whose slot in currentWorkerCount is already given back.
func releaseWorker(reason string, count int64) {
	workerWaitGroup.Done()
	logger.Info("Removed worker", "reason", reason, "workerCount", count)
	metrics.DecrementActiveWorkerCount()
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus, log *logger_i.Logger) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		log.Error("Failed to update job state", "err", err)
	}
}

// jobProgress writes every step and topic advance through to the job store so
// pollers see the guide being built.
type jobProgress struct {
	ctx context.Context
	job *jobmodel.Job
	log *logger_i.Logger
}

func (p *jobProgress) Stage(step jobmodel.InternalStatus) {
	p.job.CurrentStep = step
	saveJobState(p.ctx, *p.job, p.job.Status, p.log)
}

func (p *jobProgress) Advance(done int, total int, topic string) {
	p.job.Progress = jobmodel.JobProgress{
		TopicsDone:   done,
		TopicsTotal:  total,
		CurrentTopic: topic,
	}
	saveJobState(p.ctx, *p.job, p.job.Status, p.log)
}
