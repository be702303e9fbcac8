package extract

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Strategy is one way of pulling text out of a PDF. Implementations may fail
// or even panic on malformed input; the Chain contains both.
type Strategy interface {
	Name() string
	Extract(data []byte) (string, error)
}

// DefaultStrategies is the production order: two independent PDF parsers,
// then a permissive decode of the raw bytes.
func DefaultStrategies() []Strategy {
	return []Strategy{
		TextLayerStrategy{},
		PdftotextStrategy{},
		RawBytesStrategy{},
	}
}

// Chain tries its strategies in order and returns the first non-empty result.
type Chain struct {
	Strategies []Strategy
	Log        *zap.Logger
}

// NewChain returns a chain over DefaultStrategies.
func NewChain(log *zap.Logger) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{Strategies: DefaultStrategies(), Log: log}
}

// Extract runs each strategy at most once. ok is false when none of them
// produced text; individual strategy errors are only logged.
func (c *Chain) Extract(data []byte) (text, strategy string, ok bool) {
	for _, s := range c.Strategies {
		out, err := runStrategy(s, data)
		if err != nil {
			c.logger().Debug("Extraction strategy failed",
				zap.String("strategy", s.Name()), zap.Error(err))
			continue
		}
		if out = strings.TrimSpace(out); out != "" {
			return out, s.Name(), true
		}
		c.logger().Debug("Extraction strategy produced no text", zap.String("strategy", s.Name()))
	}
	return "", "", false
}

func (c *Chain) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

func runStrategy(s Strategy, data []byte) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Extract(data)
}

// TextLayerStrategy reads the text layer page by page with ledongthuc/pdf.
type TextLayerStrategy struct{}

func (TextLayerStrategy) Name() string { return "text_layer" }

func (TextLayerStrategy) Extract(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// PdftotextStrategy converts through docconv, which shells out to poppler's
// pdftotext and so parses the document with an unrelated implementation.
type PdftotextStrategy struct{}

func (PdftotextStrategy) Name() string { return "pdftotext" }

func (PdftotextStrategy) Extract(data []byte) (string, error) {
	body, _, err := docconv.ConvertPDF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}
	var b strings.Builder
	for _, page := range strings.Split(body, "\f") {
		if strings.TrimSpace(page) == "" {
			continue
		}
		b.WriteString(page)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RawBytesStrategy decodes the document as UTF-8, dropping invalid sequences,
// and keeps printable ASCII plus newline, carriage return and tab.
type RawBytesStrategy struct{}

func (RawBytesStrategy) Name() string { return "raw_bytes" }

func (RawBytesStrategy) Extract(data []byte) (string, error) {
	return PrintableASCII(strings.ToValidUTF8(string(data), "")), nil
}

// PrintableASCII removes every rune outside 0x20-0x7E except \n, \r and \t.
func PrintableASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 0x20 && r <= 0x7e) || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, s)
}
