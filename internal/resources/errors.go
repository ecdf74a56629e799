package resources

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
)

var errDecode = errors.New("decoding response")

// withAPIKey signs requests with key. option.WithAPIKey is ignored once a
// custom client is supplied, so the key rides on the transport instead.
func withAPIKey(client *http.Client, key string) *http.Client {
	return &http.Client{
		Timeout:   client.Timeout,
		Transport: &transport.APIKey{Key: key, Transport: client.Transport},
	}
}

// wrapSearchError keeps *googleapi.Error reachable through errors.As and tags
// body decoding failures with errDecode.
func wrapSearchError(what string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: %w: %w", what, errDecode, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// errorReason is the first reason in a Google error envelope, "" if none.
func errorReason(err error) string {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	for _, item := range apiErr.Errors {
		if item.Reason != "" {
			return item.Reason
		}
	}
	return ""
}

// isQuota reports quota and rate errors. They come back as 403 with a reason,
// so the status code alone cannot tell them apart from a bad key.
func isQuota(err error) bool {
	switch errorReason(err) {
	case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded", "userRateLimitExceeded":
		return true
	}
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}

// IsTransient reports whether err is worth another attempt: quota, throttling
// and server-side errors.
func IsTransient(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return isQuota(err) || apiErr.Code >= http.StatusInternalServerError
}

// failureReason is the label used for the backend failure metric.
func failureReason(err error) string {
	var apiErr *googleapi.Error
	switch {
	case errorReason(err) != "":
		return errorReason(err)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("http_%d", apiErr.Code)
	case errors.Is(err, errDecode):
		return "decode"
	default:
		return "transport"
	}
}
