package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
	"github.com/muhammadolammi/resumeclf/internal/session"
)

// PreviewChars bounds the extracted-text preview in upload responses.
const PreviewChars = 500

// multipartSlack is the room left in an upload body for multipart framing
// and form fields on top of the file itself.
const multipartSlack = 64 << 10

// Classifier is satisfied by *classify.Pipeline.
type Classifier interface {
	Classify(ctx context.Context, text string) (*classify.Result, error)
}

// Extractor is satisfied by *extract.Extractor.
type Extractor interface {
	ExtractResumeText(mediaType string, data []byte) (*extract.Extraction, error)
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

// ExtractionReport describes how an upload was read.
type ExtractionReport struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Strategy  string `json:"strategy"`
	Length    int    `json:"length"`
	Preview   string `json:"preview"`
}

// AnalysisOutput is returned by both classify endpoints.
type AnalysisOutput struct {
	SessionID string           `json:"session_id"`
	Result    *classify.Result `json:"result"`
	recommend.Advice
	Extraction *ExtractionReport `json:"extraction,omitempty"`
}

// ClassifyHandler serves the classification and session endpoints.
type ClassifyHandler struct {
	classifier     Classifier
	extractor      Extractor
	sessions       *session.Store
	maxUploadBytes int64
	log            *zap.Logger
}

func NewClassifyHandler(classifier Classifier, extractor Extractor, sessions *session.Store, maxUploadBytes int64, log *zap.Logger) *ClassifyHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClassifyHandler{
		classifier:     classifier,
		extractor:      extractor,
		sessions:       sessions,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// Classify handles POST /api/v1/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, "invalid request body")
		return
	}
	sessionID, ok := resolveSessionID(c, req.SessionID)
	if !ok {
		return
	}

	out, err := h.analyze(c.Request.Context(), sessionID, req.Text, session.SourceText, nil)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, out)
}

// Upload handles POST /api/v1/classify/upload
func (h *ClassifyHandler) Upload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		limit := h.maxUploadBytes + multipartSlack
		if c.Request.ContentLength > limit {
			h.fileTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fileTooLarge(c)
			return
		}
		HandleInvalidRequest(c, "multipart field \"file\" is required")
		return
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		h.fileTooLarge(c)
		return
	}
	sessionID, ok := resolveSessionID(c, c.PostForm("session_id"))
	if !ok {
		return
	}

	f, err := fh.Open()
	if err != nil {
		HandleInvalidRequest(c, "could not read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		HandleInvalidRequest(c, "could not read uploaded file")
		return
	}

	mediaType := extract.DetectMediaType(fh.Filename, fh.Header.Get("Content-Type"))
	ex, err := h.extractor.ExtractResumeText(mediaType, data)
	if err != nil {
		h.log.Info("Upload could not be read",
			zap.String("filename", fh.Filename),
			zap.String("media_type", mediaType),
			zap.Error(err))
		HandleError(c, err)
		return
	}

	out, err := h.analyze(c.Request.Context(), sessionID, ex.Text, session.SourceUpload, ex)
	if err != nil {
		HandleError(c, err)
		return
	}
	out.Extraction = &ExtractionReport{
		Filename:  fh.Filename,
		MediaType: ex.MediaType,
		Strategy:  ex.Strategy,
		Length:    ex.Length,
		Preview:   ex.Preview(PreviewChars),
	}
	respondSuccess(c, http.StatusOK, out)
}

func (h *ClassifyHandler) fileTooLarge(c *gin.Context) {
	respondError(c, http.StatusRequestEntityTooLarge, CodeFileTooLarge,
		fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes))
}

// GetResult handles GET /api/v1/sessions/:id/result
func (h *ClassifyHandler) GetResult(c *gin.Context) {
	a, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, AnalysisOutput{
		SessionID: a.SessionID,
		Result:    a.Result,
		Advice:    recommend.AdviceFor(a.Result.Category),
	})
}

// ClearResult handles DELETE /api/v1/sessions/:id/result
func (h *ClassifyHandler) ClearResult(c *gin.Context) {
	if !h.sessions.Clear(c.Param("id")) {
		HandleError(c, session.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClassifyHandler) analyze(ctx context.Context, sessionID, text, source string, ex *extract.Extraction) (*AnalysisOutput, error) {
	res, err := h.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}
	h.sessions.Put(session.Analysis{
		SessionID:  sessionID,
		Source:     source,
		Result:     res,
		Extraction: ex,
	})
	return &AnalysisOutput{
		SessionID: sessionID,
		Result:    res,
		Advice:    recommend.AdviceFor(res.Category),
	}, nil
}

// resolveSessionID returns the given session ID, or a new one when empty.
// A malformed ID is rejected with 400.
func resolveSessionID(c *gin.Context, id string) (string, bool) {
	if id == "" {
		return session.NewID(), true
	}
	if _, err := uuid.Parse(id); err != nil {
		HandleInvalidRequest(c, "invalid session_id")
		return "", false
	}
	return id, true
}
