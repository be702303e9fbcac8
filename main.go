package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/api"
	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/config"
	"github.com/muhammadolammi/resumeclf/internal/extract"
	"github.com/muhammadolammi/resumeclf/internal/logger"
	"github.com/muhammadolammi/resumeclf/internal/mcpserver"
	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
	"github.com/muhammadolammi/resumeclf/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every subcommand shares.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	loader    *model.Loader
	pipeline  *classify.Pipeline
	extractor *extract.Extractor
	blobs     model.ObjectGetter
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "resumeclf",
		Short:         "Classify resumes into career categories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides "+config.FileEnv+")")

	setup := func(cmd *cobra.Command) (*app, error) {
		return newApp(cmd.Context(), configPath)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer func() { _ = a.log.Sync() }()
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "worker",
			Short: "Consume analysis jobs from RabbitMQ",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer func() { _ = a.log.Sync() }()
				return a.work(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "mcp",
			Short: "Serve classification tools over MCP stdio",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer func() { _ = a.log.Sync() }()
				return mcpserver.New(a.pipeline, a.log).ServeStdio()
			},
		},
		&cobra.Command{
			Use:   "classify [file|-]",
			Short: "Classify one resume file, or stdin, and print the result as JSON",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := setup(cmd)
				if err != nil {
					return err
				}
				defer func() { _ = a.log.Sync() }()
				name := "-"
				if len(args) == 1 {
					name = args[0]
				}
				return a.classifyOnce(cmd.Context(), name, cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
	)
	return root
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, extractor: extract.NewExtractor(nil, log)}
	if cfg.R2.Configured() {
		client, err := newR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		a.blobs = client
	}

	var source model.Source = model.DirSource{Dir: cfg.Artifacts.Dir}
	if cfg.Artifacts.Bucket != "" {
		source = model.BucketSource{Client: a.blobs, Bucket: cfg.Artifacts.Bucket, Prefix: cfg.Artifacts.Prefix}
	}
	a.loader = model.NewLoader(source, log)
	a.pipeline = classify.NewPipeline(a.loader, cfg.Classify.MinResumeChars, log)
	return a, nil
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(a.cfg.Server.Mode)
	sessions, err := session.NewStore(a.cfg.Classify.SessionCapacity)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	// Load eagerly so a missing model shows up in the logs at startup. The
	// server still starts and reports it on /ready.
	if err := a.pipeline.Ready(ctx); err != nil {
		a.log.Warn("Model not ready, classification requests will fail", zap.Error(err))
	}

	r := api.Setup(api.Deps{
		Classifier:     a.pipeline,
		Models:         a.loader,
		Extractor:      a.extractor,
		Sessions:       sessions,
		MaxUploadBytes: a.cfg.Server.MaxUploadBytes,
		Logger:         a.log,
	})

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.log.Info("Server exited")
	return nil
}

func (a *app) work(ctx context.Context) error {
	if a.cfg.RabbitMQ.URL == "" {
		return errors.New("empty RABBITMQ_URL in environment")
	}
	if a.blobs == nil {
		a.log.Warn("R2 not configured, jobs referencing stored files will fail")
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.pipeline.Ready(ctx); err != nil {
		a.log.Warn("Model not ready, every job will fail", zap.Error(err))
	}

	wc := &WorkerConfig{
		Pipeline:    a.pipeline,
		Extractor:   a.extractor,
		Blobs:       a.blobs,
		R2Bucket:    a.cfg.R2.Bucket,
		RABBITMQUrl: a.cfg.RabbitMQ.URL,
		Queue:       a.cfg.RabbitMQ.Queue,
		Exchange:    a.cfg.RabbitMQ.Exchange,
		Log:         a.log,
	}
	a.log.Info("Starting consumer worker pool", zap.Int("workers", a.cfg.RabbitMQ.WorkerCount))
	wc.StartConsumerWorkerPool(ctx, a.cfg.RabbitMQ.WorkerCount)
	return nil
}

// classifyOutput is what the classify subcommand prints.
type classifyOutput struct {
	Result *classify.Result `json:"result"`
	recommend.Advice
	Extraction *extract.Extraction `json:"extraction,omitempty"`
}

// classifyOnce reads name ("-" for stdin), extracting text from files by
// extension, and writes the result as indented JSON.
func (a *app) classifyOnce(ctx context.Context, name string, stdin io.Reader, stdout io.Writer) error {
	var (
		text string
		ex   *extract.Extraction
	)
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	} else {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		ex, err = a.extractor.ExtractResumeText(extract.DetectMediaType(name, ""), data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		text = ex.Text
	}

	res, err := a.pipeline.Classify(ctx, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(classifyOutput{
		Result:     res,
		Advice:     recommend.AdviceFor(res.Category),
		Extraction: ex,
	})
}
