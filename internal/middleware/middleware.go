package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/StudyGuideAPI/internal/adapter/utils"
	"github.com/akolanti/StudyGuideAPI/internal/handlers"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var PostGuideHandler = WrapLimited(handlers.PostGuideHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)
var GetGuideViewHandler = Wrap(handlers.GetGuideViewHandler)

// Wrap adds trace injection and request metrics.
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, false)
}

// WrapLimited is Wrap plus the per-IP rate limiter, for the routes that start work.
func WrapLimited(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, true)
}

func wrap(next http.HandlerFunc, limited bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec}, limited)

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(utils.GetRoutePattern(r), strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct, limited bool) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re.logger.Info("New request received", "method", re.req.Method, "path", re.req.URL.Path)

	if limited {
		re = rateLimiter(re)
	}
	return re
}
