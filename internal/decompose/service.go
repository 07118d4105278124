package decompose

import (
	"context"
	"errors"
	"log"

	"github.com/tinysteps/backend/internal/llm"
	"github.com/tinysteps/backend/internal/model"
	"github.com/tinysteps/backend/internal/pkg/json"
)

const (
	decomposeMaxTokens = 1000
	subStepsMaxTokens  = 500
)

// Service turns a task into an ordered step breakdown via the generation
// provider. Errors returned here are user-facing; provider details are
// logged server-side and never leak to the client.
type Service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Decompose produces a full breakdown for the task. The provider-supplied
// total is never trusted; the sum of per-step estimates is recomputed here.
func (s *Service) Decompose(ctx context.Context, req *model.DecomposeRequest) (*model.TaskBreakdown, error) {
	style := req.Style
	if style == "" {
		style = model.StyleStandard
	}

	systemPrompt := stylePrompts[style] + contextAddition(req.Context)
	userPrompt := "Break down this task: " + req.Task

	content, err := s.provider.CompleteJSON(ctx, systemPrompt, userPrompt, decomposeMaxTokens)
	if err != nil {
		log.Printf("Decompose: provider call failed: %v", err)
		return nil, errors.New("AI service temporarily unavailable")
	}

	var parsed struct {
		Title         string       `json:"title"`
		Steps         []model.Step `json:"steps"`
		Encouragement string       `json:"encouragement"`
	}
	if err := json.UnmarshalString(content, &parsed); err != nil {
		log.Printf("Decompose: failed to parse provider content: %v", err)
		return nil, errors.New("Failed to process task")
	}

	total := 0
	for _, step := range parsed.Steps {
		total += step.EstimatedMinutes
	}

	title := parsed.Title
	if title == "" {
		title = req.Task
	}
	encouragement := parsed.Encouragement
	if encouragement == "" {
		encouragement = "You've got this!"
	}

	return &model.TaskBreakdown{
		Title:                 title,
		Steps:                 parsed.Steps,
		TotalEstimatedMinutes: total,
		Encouragement:         encouragement,
	}, nil
}

// SubSteps decomposes one step the user is stuck on into 3-5 micro-actions.
func (s *Service) SubSteps(ctx context.Context, step, taskContext string) (*model.SubStepsResponse, error) {
	userPrompt := "Step I'm stuck on: " + step
	if taskContext != "" {
		userPrompt = "Task context: " + taskContext + "\n\n" + userPrompt
	}

	content, err := s.provider.CompleteJSON(ctx, subStepsPrompt, userPrompt, subStepsMaxTokens)
	if err != nil {
		log.Printf("SubSteps: provider call failed: %v", err)
		return nil, errors.New("AI service temporarily unavailable")
	}

	var parsed struct {
		Substeps      []string `json:"substeps"`
		Encouragement string   `json:"encouragement"`
	}
	if err := json.UnmarshalString(content, &parsed); err != nil {
		log.Printf("SubSteps: failed to parse provider content: %v", err)
		return nil, errors.New("Failed to break down step")
	}

	return &model.SubStepsResponse{
		Success:       true,
		Substeps:      parsed.Substeps,
		Encouragement: parsed.Encouragement,
	}, nil
}
