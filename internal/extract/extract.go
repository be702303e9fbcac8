// Package extract turns uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/metrics"
)

// Supported media types.
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrExtractionFailed means no readable text could be recovered. The
	// caller should suggest pasting the text or uploading another file.
	ErrExtractionFailed = errors.New("could not extract text from document")

	// ErrUnsupportedFileType is returned before any extraction is attempted.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Extraction is the text recovered from a document and how it was obtained.
type Extraction struct {
	Text      string `json:"text"`
	MediaType string `json:"media_type"`
	Strategy  string `json:"strategy"`
	Length    int    `json:"length"`
}

// Preview returns at most n runes of the text, with an ellipsis if cut.
func (e *Extraction) Preview(n int) string {
	runes := []rune(e.Text)
	if len(runes) <= n {
		return e.Text
	}
	return string(runes[:n]) + "..."
}

// Extractor dispatches on media type. PDFs go through the fallback chain.
type Extractor struct {
	chain *Chain
	log   *zap.Logger
}

func NewExtractor(chain *Chain, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	if chain == nil {
		chain = NewChain(log)
	}
	return &Extractor{chain: chain, log: log}
}

// ExtractResumeText returns the text of a document of the given media type.
func (e *Extractor) ExtractResumeText(mediaType string, data []byte) (*Extraction, error) {
	var (
		text     string
		strategy string
	)
	switch mediaType {
	case MediaTypeText:
		text, strategy = strings.TrimSpace(strings.ToValidUTF8(string(data), "")), "plain_text"
	case MediaTypePDF:
		var ok bool
		text, strategy, ok = e.chain.Extract(data)
		if !ok {
			text = ""
		}
	case MediaTypeDocx:
		var err error
		text, err = extractDocxText(data)
		if err != nil {
			e.log.Debug("DOCX extraction failed", zap.Error(err))
			text = ""
		}
		strategy = "docx"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, mediaType)
	}

	if text == "" {
		metrics.Extractions.WithLabelValues(mediaType, "none").Inc()
		return nil, ErrExtractionFailed
	}
	metrics.Extractions.WithLabelValues(mediaType, strategy).Inc()
	return &Extraction{
		Text:      text,
		MediaType: mediaType,
		Strategy:  strategy,
		Length:    len([]rune(text)),
	}, nil
}

// DetectMediaType resolves the media type of an upload from its declared
// content type, falling back to the file extension.
func DetectMediaType(filename, declared string) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			switch mt {
			case MediaTypeText, MediaTypePDF, MediaTypeDocx:
				return mt
			}
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return MediaTypeText
	case ".pdf":
		return MediaTypePDF
	case ".docx":
		return MediaTypeDocx
	}
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			return mt
		}
	}
	return "application/octet-stream"
}

var reTags = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// Paragraph ends become line breaks before the markup is dropped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = reTags.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content)), nil
}
