package dto

import (
	"net/http"

	"github.com/junaidrashid-git/shop-api/apperr"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope order endpoints always answer with. Failures are
// reported through Status and StatusCode, never as a transport error.
type Response struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"statusCode"`
}

func Success(message string, data interface{}) Response {
	return Response{
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
		StatusCode: http.StatusOK,
	}
}

func Failure(err error) Response {
	return Response{
		Status:     StatusError,
		Message:    apperr.Message(err),
		StatusCode: apperr.HTTPStatus(err),
	}
}
