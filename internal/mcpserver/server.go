// Package mcpserver exposes classification and recommendations as MCP tools
// over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
)

const (
	serverName    = "resumeclf"
	serverVersion = "0.1.0"
)

// Classifier is satisfied by *classify.Pipeline.
type Classifier interface {
	Classify(ctx context.Context, text string) (*classify.Result, error)
}

// Server wraps the classifier to expose it via MCP.
type Server struct {
	classifier Classifier
	log        *zap.Logger
	mcp        *server.MCPServer
}

// New registers every tool on a fresh MCP server.
func New(classifier Classifier, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		classifier: classifier,
		log:        log,
		mcp:        server.NewMCPServer(serverName, serverVersion, server.WithLogging()),
	}

	s.mcp.AddTool(
		mcp.NewTool(
			"classify_resume",
			mcp.WithDescription("Predict the career category of a resume and return the probability of every category."),
			mcp.WithString("text", mcp.Required(), mcp.Description("Plain resume text, more than 50 characters")),
		),
		s.handleClassify,
	)
	s.mcp.AddTool(
		mcp.NewTool(
			"job_recommendations",
			mcp.WithDescription("List recommended roles, hiring companies and key skills for a career category."),
			mcp.WithString("category", mcp.Required(), mcp.Description("Category name such as \"Data Science\"")),
		),
		s.handleJobs,
	)
	s.mcp.AddTool(
		mcp.NewTool(
			"skill_suggestions",
			mcp.WithDescription("List skills worth adding to a resume in a career category."),
			mcp.WithString("category", mcp.Required(), mcp.Description("Category name such as \"Design\"")),
		),
		s.handleSkills,
	)
	s.mcp.AddTool(
		mcp.NewTool(
			"market_insights",
			mcp.WithDescription("Salary, hiring trend and in-demand skill tables across categories."),
		),
		s.handleInsights,
	)
	return s
}

// ServeStdio blocks serving MCP on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ClassifyOutput is the JSON payload of classify_resume.
type ClassifyOutput struct {
	*classify.Result
	recommend.Advice
}

func (s *Server) handleClassify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text, ok := args["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text argument required"), nil
	}

	res, err := s.classifier.Classify(ctx, text)
	switch {
	case errors.Is(err, classify.ErrInputTooShort):
		return mcp.NewToolResultError(err.Error()), nil
	case errors.Is(err, classify.ErrModelUnavailable):
		s.log.Error("Classification unavailable", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	case err != nil:
		return nil, fmt.Errorf("classify: %w", err)
	}

	return jsonResult(ClassifyOutput{
		Result: res,
		Advice: recommend.AdviceFor(res.Category),
	})
}

func (s *Server) handleJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, ok := request.GetArguments()["category"].(string)
	if !ok {
		return mcp.NewToolResultError("category argument required"), nil
	}
	return jsonResult(recommend.JobsFor(category))
}

func (s *Server) handleSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, ok := request.GetArguments()["category"].(string)
	if !ok {
		return mcp.NewToolResultError("category argument required"), nil
	}
	return jsonResult(recommend.SkillsFor(category))
}

func (s *Server) handleInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(recommend.Insights())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
