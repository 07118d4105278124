package model

import (
	"bytes"

	"github.com/tinysteps/backend/internal/pkg/json"
)

type TaskStyle string

const (
	StyleStandard TaskStyle = "standard"
	StyleQuick    TaskStyle = "quick"
	StyleGentle   TaskStyle = "gentle"
)

func (s TaskStyle) Valid() bool {
	switch s {
	case StyleStandard, StyleQuick, StyleGentle:
		return true
	}
	return false
}

// DefaultStepMinutes is assumed when the provider omits a per-step estimate.
const DefaultStepMinutes = 5

type Step struct {
	Action           string `json:"action"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

// UnmarshalJSON accepts both the current object shape and the legacy bare
// string shape older prompts produced, so callers only ever see one Step type.
func (s *Step) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var action string
		if err := json.Unmarshal(data, &action); err != nil {
			return err
		}
		s.Action = action
		s.EstimatedMinutes = DefaultStepMinutes
		return nil
	}

	var raw struct {
		Action           string `json:"action"`
		EstimatedMinutes *int   `json:"estimatedMinutes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Action = raw.Action
	s.EstimatedMinutes = DefaultStepMinutes
	if raw.EstimatedMinutes != nil {
		s.EstimatedMinutes = *raw.EstimatedMinutes
	}
	return nil
}

type TaskBreakdown struct {
	Title                 string `json:"title"`
	Steps                 []Step `json:"steps"`
	TotalEstimatedMinutes int    `json:"totalEstimatedMinutes"`
	Encouragement         string `json:"encouragement"`
}

type TaskContext struct {
	TimeOfDay string `json:"timeOfDay,omitempty"`
	Energy    string `json:"energy,omitempty"`
}

type DecomposeRequest struct {
	Task    string       `json:"task"`
	Style   TaskStyle    `json:"style,omitempty"`
	Context *TaskContext `json:"context,omitempty"`
}

type DecomposeResponse struct {
	Success bool           `json:"success"`
	Task    *TaskBreakdown `json:"task"`
	Cached  bool           `json:"cached"`
}

type SubStepsRequest struct {
	Step        string `json:"step"`
	TaskContext string `json:"taskContext,omitempty"`
}

type SubStepsResponse struct {
	Success       bool     `json:"success"`
	Substeps      []string `json:"substeps"`
	Encouragement string   `json:"encouragement"`
}
