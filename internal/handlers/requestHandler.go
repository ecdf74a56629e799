package handlers

import (
	"net/http"

	"github.com/akolanti/StudyGuideAPI/internal/adapter"
	"github.com/akolanti/StudyGuideAPI/internal/adapter/utils"
	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/extract"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id           string
	traceId      string
	documentName string
	documentPath string
}

// GetHandler godoc
// @Summary      Health check
// @Tags         Health
// @Success      200
// @Router       /healthz [get]
func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// PostGuideHandler godoc
// @Summary      Upload a syllabus
// @Description  Receives a syllabus via multipart/form-data, stages it and queues a study guide job.
// @Tags         Guide
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The syllabus (pdf, docx, odt, rtf, txt or md)"
// @Success      202  {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400  {object}  api.JobResponse      "Missing, unsupported or oversized file"
// @Failure      429  {object}  api.JobResponse      "Rate limit exceeded"
// @Failure      500  {object}  api.JobResponse      "Storage error"
// @Router       /guide [post]
func PostGuideHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request", "remoteAddr", r.RemoteAddr)
		return
	}
	log := logRH.WithTrace(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		log.Warn("Bad upload", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if !extract.IsSupported(fileMetadata.Filename) {
		log.Warn("Unsupported document type", "filename", fileMetadata.Filename)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Unsupported document type, upload a pdf, docx, odt, rtf, txt or md syllabus")
		return
	}

	stagedPath, err := guide.StageDocument(stagingDir(), fileMetadata.Filename, fileReader)
	if err != nil {
		log.Error("Could not stage upload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Storage error")
		return
	}
	processNewJobData(r, w, guide.OriginalName(stagedPath), stagedPath)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Progress of a study guide job, and the guide once it is complete.
// @Tags         Guide
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse  "The current state of the job"
// @Failure      404  {object}  api.JobResponse  "Job not found"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")
	logRH.Debug("Get Status Request", "URL path", r.URL.Path)

	result, isFound := validateId(idString, traceIdFrom(r.Context()))
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
}

// GetGuideViewHandler godoc
// @Summary      View a study guide
// @Description  HTML page with one expandable section per topic. Refreshes itself while the guide is being built.
// @Tags         Guide
// @Produce      html
// @Param        id   path      string  true  "Job ID"
// @Success      200  {string}  string  "HTML page"
// @Failure      404  {string}  string  "HTML page"
// @Router       /guide/{id} [get]
func GetGuideViewHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")

	result, isFound := validateId(idString, traceIdFrom(r.Context()))
	if !isFound {
		writeGuidePage(w, http.StatusNotFound, notFoundView(idString))
		return
	}
	writeGuidePage(w, http.StatusOK, toGuideView(result))
}
