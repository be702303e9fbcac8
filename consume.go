package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/metrics"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
)

const downloadAttempts = 3

var errNoResume = errors.New("job has neither text nor object key")

// analyze resolves the resume text of a job and classifies it.
func analyze(ctx context.Context, wc *WorkerConfig, job AnalysisJob) (*classify.Result, error) {
	text := job.Text
	if text == "" {
		if job.ObjectKey == "" {
			return nil, errNoResume
		}
		if wc.Blobs == nil {
			return nil, fmt.Errorf("no R2 client configured for object %s", job.ObjectKey)
		}

		// Network failures are transient; extraction and classification are not.
		data, err := retry(ctx, downloadAttempts, func() ([]byte, error) {
			return DownloadFromR2(ctx, wc.Blobs, wc.R2Bucket, job.ObjectKey)
		})
		if err != nil {
			return nil, fmt.Errorf("file download error: %w", err)
		}

		mediaType := extract.DetectMediaType(job.ObjectKey, job.Mime)
		ex, err := wc.Extractor.ExtractResumeText(mediaType, data)
		if err != nil {
			return nil, fmt.Errorf("text extraction error: %w", err)
		}
		wc.Log.Debug("Resume text extracted",
			zap.String("object_key", job.ObjectKey),
			zap.String("strategy", ex.Strategy),
			zap.Int("length", ex.Length))
		text = ex.Text
	}

	return wc.Pipeline.Classify(ctx, text)
}

// failureMessage is the user-facing message for a failed job.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, classify.ErrInputTooShort):
		return err.Error()
	case errors.Is(err, classify.ErrModelUnavailable):
		return "classification model is not available"
	case errors.Is(err, extract.ErrUnsupportedFileType):
		return "unsupported file type"
	case errors.Is(err, extract.ErrExtractionFailed):
		return "could not extract text from the document; paste the resume text instead"
	default:
		return "analysis failed"
	}
}

// handleDelivery processes one message body, publishing a processing update
// and then a completed or failed one.
func handleDelivery(ctx context.Context, wc *WorkerConfig, ch publisher, body []byte) {
	publish := func(update SessionUpdate) {
		if err := publishSessionUpdate(ch, wc.Exchange, update); err != nil {
			wc.Log.Warn("Failed to publish session update",
				zap.String("session_id", update.SessionID.String()),
				zap.String("status", update.Status),
				zap.Error(err))
		}
	}

	var job AnalysisJob
	if err := json.Unmarshal(body, &job); err != nil || job.SessionID == uuid.Nil {
		wc.Log.Warn("Discarding malformed job", zap.Error(err), zap.ByteString("body", body))
		metrics.WorkerJobs.WithLabelValues(StatusFailed).Inc()
		if job.SessionID != uuid.Nil {
			publish(SessionUpdate{SessionID: job.SessionID, Status: StatusFailed, Message: "analysis failed"})
		}
		return
	}

	log := wc.Log.With(zap.String("session_id", job.SessionID.String()))
	log.Info("Processing analysis job")
	publish(SessionUpdate{SessionID: job.SessionID, Status: StatusProcessing, Message: "analysis started"})

	res, err := analyze(ctx, wc, job)
	if err != nil {
		log.Warn("Analysis failed", zap.Error(err))
		metrics.WorkerJobs.WithLabelValues(StatusFailed).Inc()
		publish(SessionUpdate{SessionID: job.SessionID, Status: StatusFailed, Message: failureMessage(err)})
		return
	}

	log.Info("Analysis completed",
		zap.String("category", res.Category),
		zap.Float64("confidence", res.Confidence))
	metrics.WorkerJobs.WithLabelValues(StatusCompleted).Inc()
	publish(SessionUpdate{
		SessionID: job.SessionID,
		Status:    StatusCompleted,
		Message:   "analysis completed",
		Result:    res,
		Advice:    recommend.AdviceFor(res.Category),
	})
}

func worker(ctx context.Context, id int, wc *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := wc.Log.With(zap.Int("worker", id+1))

	conn, err := amqp.Dial(wc.RABBITMQUrl)
	if err != nil {
		log.Error("Error dialling RabbitMQ", zap.Error(err))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Error opening RabbitMQ channel", zap.Error(err))
		return
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		wc.Exchange, // name
		"topic",     // kind
		true,        // durable
		false,       // auto-delete
		false,       // internal
		false,       // no-wait
		nil,         // arguments
	); err != nil {
		log.Error("Failed to declare exchange", zap.Error(err))
		return
	}
	if _, err := ch.QueueDeclare(
		wc.Queue, // queue name
		true,     // durable (survives broker restarts)
		false,    // auto-delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		log.Error("Failed to declare queue", zap.Error(err))
		return
	}

	msgs, err := ch.Consume(
		wc.Queue, // queue name
		"",       // consumer tag
		true,     // auto-ack
		false,    // exclusive
		false,    // no-local
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		log.Error("Error consuming RabbitMQ messages", zap.Error(err))
		return
	}

	log.Info("Worker started", zap.String("queue", wc.Queue))
	for {
		select {
		case <-ctx.Done():
			log.Info("Worker stopping")
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Warn("Delivery channel closed")
				return
			}
			handleDelivery(ctx, wc, ch, msg.Body)
		}
	}
}

// StartConsumerWorkerPool blocks until every worker has stopped.
func (wc *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := range numWorkers {
		go worker(ctx, i, wc, &wg)
	}
	wg.Wait()
}
