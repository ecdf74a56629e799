package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akolanti/StudyGuideAPI/internal/adapter"
	"github.com/akolanti/StudyGuideAPI/internal/adapter/utils"
	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are gone, only the log can say what happened
		logRH.Error("Error encoding response", "error", err)
	}
}

func validateId(id string, traceId string) (result jobModel.Job, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return jobModel.Job{}, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.WithTrace(ctx).Warn("context error", "error", ctx.Err())
		return false
	}
	return true
}

func traceIdFrom(ctx context.Context) string {
	trace, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return trace
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func stagingDir() string {
	if handlerInstance != nil && handlerInstance.service.StagingDir != "" {
		return handlerInstance.service.StagingDir
	}
	return guide.StagingDir(config.StagingDirName)
}

func processNewJobData(request *http.Request, w http.ResponseWriter, docName string, docPath string) {
	newJob := newJobData{
		id:           utils.GetNewUUID(),
		traceId:      traceIdFrom(request.Context()),
		documentName: docName,
		documentPath: docPath,
	}
	CreateNewJob(newJob)
	res := adapter.ToInitJobResponse(newJob.id)
	writeJsonResponse(w, http.StatusAccepted, res)
}
