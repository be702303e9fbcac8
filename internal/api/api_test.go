package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/model/modeltest"
	"github.com/muhammadolammi/resumeclf/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockClassifier is a mock implementation of Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (*classify.Result, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classify.Result), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
	Meta    *MetaInfo       `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	return env
}

func dataScienceResult() *classify.Result {
	return &classify.Result{
		Category:          "Data Science",
		Confidence:        0.82,
		ConfidencePercent: 82,
		Level:             classify.LevelHigh,
		Distribution: []classify.CategoryProbability{
			{Category: "Data Science", Probability: 0.82},
			{Category: "Design", Probability: 0.18},
		},
	}
}

type testServer struct {
	router     *gin.Engine
	classifier *MockClassifier
	sessions   *session.Store
}

func newTestServer(t *testing.T, maxUpload int64) *testServer {
	t.Helper()
	sessions, err := session.NewStore(16)
	require.NoError(t, err)
	b, err := modeltest.FitSamples()
	require.NoError(t, err)

	cl := new(MockClassifier)
	r := Setup(Deps{
		Classifier:     cl,
		Models:         model.Preloaded(b),
		Extractor:      extract.NewExtractor(nil, nil),
		Sessions:       sessions,
		MaxUploadBytes: maxUpload,
	})
	return &testServer{router: r, classifier: cl, sessions: sessions}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, filename, contentType string, content []byte, sessionID string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if sessionID != "" {
		require.NoError(t, mw.WriteField("session_id", sessionID))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestClassify_Success(t *testing.T) {
	s := newTestServer(t, 0)
	s.classifier.On("Classify", mock.Anything, "resume text").Return(dataScienceResult(), nil)

	w := s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{"text":"resume text"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)

	var out AnalysisOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "Data Science", out.Result.Category)
	assert.Equal(t, "Data Scientist", out.Jobs[0].Title)
	assert.NotEmpty(t, out.Skills)
	require.NotNil(t, out.Tips)
	assert.Equal(t, "Data Science & Analytics", out.Tips.Title)
	require.NotNil(t, out.Salary)
	assert.Equal(t, 85000, out.Salary.Entry)
	assert.Nil(t, out.Extraction)
	_, err := uuid.Parse(out.SessionID)
	assert.NoError(t, err)

	stored, err := s.sessions.Get(out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SourceText, stored.Source)
	s.classifier.AssertExpectations(t)
}

func TestClassify_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"too short", `{"text":"short"}`, &classify.InputTooShortError{Length: 5, MinChars: 50}, http.StatusUnprocessableEntity, CodeInputTooShort},
		{"model unavailable", `{"text":"long enough"}`, classify.ErrModelUnavailable, http.StatusServiceUnavailable, CodeModelUnavailable},
		{"unexpected", `{"text":"long enough"}`, errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, 0)
			s.classifier.On("Classify", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := s.do(jsonRequest(http.MethodPost, "/api/v1/classify", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			env := decode(t, w)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Zero(t, s.sessions.Len())
		})
	}

	t.Run("too short message distinguishes empty input", func(t *testing.T) {
		s := newTestServer(t, 0)
		s.classifier.On("Classify", mock.Anything, "").Return(nil, &classify.InputTooShortError{MinChars: 50})

		w := s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{"text":""}`))

		env := decode(t, w)
		assert.Equal(t, "please enter some resume text", env.Error.Message)
	})
}

func TestClassify_InvalidRequests(t *testing.T) {
	s := newTestServer(t, 0)

	w := s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{"text":"x","session_id":"not-a-uuid"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidRequest, decode(t, w).Error.Code)

	s.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t, 0)
	id := uuid.NewString()
	path := "/api/v1/sessions/" + id + "/result"

	w := s.do(httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	first := dataScienceResult()
	second := &classify.Result{Category: "Finance", Confidence: 0.6, ConfidencePercent: 60, Level: classify.LevelMedium}
	s.classifier.On("Classify", mock.Anything, "first").Return(first, nil).Once()
	s.classifier.On("Classify", mock.Anything, "second").Return(second, nil).Once()

	s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{"text":"first","session_id":"`+id+`"}`))
	s.do(jsonRequest(http.MethodPost, "/api/v1/classify", `{"text":"second","session_id":"`+id+`"}`))

	w = s.do(httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var out AnalysisOutput
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &out))
	assert.Equal(t, "Finance", out.Result.Category)
	assert.Equal(t, id, out.SessionID)
	assert.Equal(t, "Financial Analyst", out.Jobs[0].Title)
	assert.Equal(t, "Finance & Investment", out.Tips.Title)

	w = s.do(httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpload(t *testing.T) {
	t.Run("plain text file", func(t *testing.T) {
		s := newTestServer(t, 1<<20)
		text := strings.Repeat("Experienced data scientist. ", 30)
		s.classifier.On("Classify", mock.Anything, strings.TrimSpace(text)).Return(dataScienceResult(), nil)
		id := uuid.NewString()

		w := s.do(uploadRequest(t, "cv.txt", "text/plain", []byte(text), id))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out AnalysisOutput
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &out))
		assert.Equal(t, id, out.SessionID)
		require.NotNil(t, out.Extraction)
		assert.Equal(t, "cv.txt", out.Extraction.Filename)
		assert.Equal(t, extract.MediaTypeText, out.Extraction.MediaType)
		assert.Equal(t, "plain_text", out.Extraction.Strategy)
		assert.Equal(t, len(strings.TrimSpace(text)), out.Extraction.Length)
		assert.Equal(t, PreviewChars+3, len([]rune(out.Extraction.Preview)))

		stored, err := s.sessions.Get(id)
		require.NoError(t, err)
		assert.Equal(t, session.SourceUpload, stored.Source)
		assert.Equal(t, "plain_text", stored.Extraction.Strategy)
	})

	t.Run("unsupported type", func(t *testing.T) {
		s := newTestServer(t, 1<<20)
		w := s.do(uploadRequest(t, "photo.png", "image/png", []byte("\x89PNG\r\n"), ""))
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.Equal(t, CodeUnsupportedType, decode(t, w).Error.Code)
		s.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})

	t.Run("unreadable pdf", func(t *testing.T) {
		s := newTestServer(t, 1<<20)
		w := s.do(uploadRequest(t, "cv.pdf", "application/pdf", []byte{0x00, 0x01, 0x02, 0xff}, ""))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, CodeExtraction, decode(t, w).Error.Code)
	})

	t.Run("too large", func(t *testing.T) {
		s := newTestServer(t, 64)
		w := s.do(uploadRequest(t, "cv.txt", "text/plain", bytes.Repeat([]byte("a"), 65), ""))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, CodeFileTooLarge, decode(t, w).Error.Code)
	})

	t.Run("body far beyond the limit", func(t *testing.T) {
		s := newTestServer(t, 64)
		w := s.do(uploadRequest(t, "cv.txt", "text/plain", bytes.Repeat([]byte("a"), 128<<10), ""))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("file of exactly the limit", func(t *testing.T) {
		s := newTestServer(t, 64)
		text := strings.Repeat("a", 64)
		s.classifier.On("Classify", mock.Anything, text).Return(dataScienceResult(), nil)

		w := s.do(uploadRequest(t, "cv.txt", "text/plain", []byte(text), ""))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("missing file field", func(t *testing.T) {
		s := newTestServer(t, 1<<20)
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("session_id", uuid.NewString()))
		require.NoError(t, mw.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		w := s.do(req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t, 0)

	t.Run("categories", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var data struct {
			Categories []string `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Len(t, data.Categories, 10)
	})

	t.Run("jobs by near name", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories/data%20scientist%20role/jobs", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var advice CategoryAdvice
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &advice))
		assert.True(t, advice.Matched)
		assert.Equal(t, "Data Science", advice.Category)
		assert.Equal(t, "data scientist role", advice.Requested)
		assert.Len(t, advice.Jobs, 4)
	})

	t.Run("unknown category falls back", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories/Underwater%20Basket%20Weaving/jobs", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var advice CategoryAdvice
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &advice))
		assert.False(t, advice.Matched)
		require.Len(t, advice.Jobs, 1)
		assert.Equal(t, "Senior roles in your field", advice.Jobs[0].Title)
	})

	t.Run("skills", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories/Design/skills", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var advice CategoryAdvice
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &advice))
		assert.Contains(t, advice.Skills, "Figma")
	})

	t.Run("tips fall back to general advice", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories/Underwater%20Basket%20Weaving/tips", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var advice CategoryAdvice
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &advice))
		require.NotNil(t, advice.Tips)
		assert.Equal(t, "General Career Tips", advice.Tips.Title)
	})

	t.Run("insights", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "salary_by_level")
	})

	t.Run("samples", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/samples/design", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.do(httptest.NewRequest(http.MethodGet, "/api/v1/samples/Astronomy", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t, 0)

	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var status ModelStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ready", status.Status)
	assert.Len(t, status.Categories, 9)
	assert.Positive(t, status.Features)

	t.Run("not ready when artifacts are missing", func(t *testing.T) {
		r := Setup(Deps{Models: model.NewLoader(model.DirSource{Dir: t.TempDir()}, nil)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var status ModelStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "not ready", status.Status)
		assert.Equal(t, model.ExportHint, status.Hint)
		assert.Contains(t, status.Reason, model.VectorizerArtifact)
	})

	w = s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEnd_RealPipeline(t *testing.T) {
	b, err := modeltest.FitSamples()
	require.NoError(t, err)
	sessions, err := session.NewStore(4)
	require.NoError(t, err)
	loader := model.Preloaded(b)
	r := Setup(Deps{
		Classifier: classify.NewPipeline(loader, 0, nil),
		Models:     loader,
		Extractor:  extract.NewExtractor(nil, nil),
		Sessions:   sessions,
	})

	body, err := json.Marshal(ClassifyRequest{Text: "Product designer skilled in Figma, Sketch, wireframing, prototyping, usability testing and design systems."})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/classify", string(body)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out AnalysisOutput
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &out))
	assert.Equal(t, "Design", out.Result.Category)
	assert.Equal(t, out.Result.Distribution[0].Category, out.Result.Category)
}
