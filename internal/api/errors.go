package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/session"
)

// Error codes returned in ErrorInfo.Code.
const (
	CodeInputTooShort    = "INPUT_TOO_SHORT"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeExtraction       = "EXTRACTION_FAILED"
	CodeUnsupportedType  = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapError maps core errors to HTTP error responses.
func MapError(err error) ErrorResponse {
	var short *classify.InputTooShortError
	switch {
	case errors.As(err, &short):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       CodeInputTooShort,
			Message:    short.Error(),
		}
	case errors.Is(err, classify.ErrInputTooShort):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       CodeInputTooShort,
			Message:    "please provide more resume text",
		}
	case errors.Is(err, classify.ErrModelUnavailable):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       CodeModelUnavailable,
			Message:    "classification model is not available; " + model.ExportHint,
		}
	case errors.Is(err, extract.ErrUnsupportedFileType):
		return ErrorResponse{
			StatusCode: http.StatusUnsupportedMediaType,
			Code:       CodeUnsupportedType,
			Message:    "unsupported file type; upload a PDF, DOCX or plain text file",
		}
	case errors.Is(err, extract.ErrExtractionFailed):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       CodeExtraction,
			Message:    "could not extract text from the document; paste the resume text instead or try another file",
		}
	case errors.Is(err, session.ErrNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    "no analysis for this session",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternal,
			Message:    "internal server error",
		}
	}
}

// HandleError sends the mapped response for err.
func HandleError(c *gin.Context, err error) {
	errResp := MapError(err)
	if errResp.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}
