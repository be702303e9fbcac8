package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
)

// Session update statuses published on the session_updates exchange.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type WorkerConfig struct {
	Pipeline  *classify.Pipeline
	Extractor *extract.Extractor
	// Blobs fetches resume files from R2. Jobs carrying an object key fail
	// when it is nil.
	Blobs       model.ObjectGetter
	R2Bucket    string
	RABBITMQUrl string
	Queue       string
	Exchange    string
	Log         *zap.Logger
}

// AnalysisJob is one message on the analyses queue. Either Text or
// ObjectKey must be set; Text wins when both are.
type AnalysisJob struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	ObjectKey string    `json:"object_key,omitempty"`
	Mime      string    `json:"mime,omitempty"`
	Text      string    `json:"text,omitempty"`
}

// SessionUpdate is published for every status change of a job.
type SessionUpdate struct {
	SessionID uuid.UUID        `json:"session_id"`
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Result    *classify.Result `json:"result,omitempty"`
	recommend.Advice
	Timestamp time.Time `json:"timestamp"`
}

// publisher is the part of an AMQP channel used to send updates.
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}
