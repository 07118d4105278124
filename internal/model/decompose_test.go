package model

import (
	"testing"

	"github.com/tinysteps/backend/internal/pkg/json"
)

func TestStepUnmarshalObject(t *testing.T) {
	var step Step
	if err := json.Unmarshal([]byte(`{"action":"open the door","estimatedMinutes":3}`), &step); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if step.Action != "open the door" {
		t.Fatalf("action mismatch: got %q", step.Action)
	}
	if step.EstimatedMinutes != 3 {
		t.Fatalf("expected 3 minutes, got %d", step.EstimatedMinutes)
	}
}

func TestStepUnmarshalObjectWithoutMinutes(t *testing.T) {
	var step Step
	if err := json.Unmarshal([]byte(`{"action":"open the door"}`), &step); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if step.EstimatedMinutes != DefaultStepMinutes {
		t.Fatalf("expected default %d minutes, got %d", DefaultStepMinutes, step.EstimatedMinutes)
	}
}

func TestStepUnmarshalLegacyString(t *testing.T) {
	var steps []Step
	if err := json.Unmarshal([]byte(`["grab a trash bag","pick up five things"]`), &steps); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Action != "grab a trash bag" {
		t.Fatalf("action mismatch: got %q", steps[0].Action)
	}
	for _, s := range steps {
		if s.EstimatedMinutes != DefaultStepMinutes {
			t.Fatalf("expected default minutes on legacy steps, got %d", s.EstimatedMinutes)
		}
	}
}

func TestStepUnmarshalMixedFormats(t *testing.T) {
	var steps []Step
	data := `["stand up",{"action":"stretch","estimatedMinutes":2}]`
	if err := json.Unmarshal([]byte(data), &steps); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if steps[0].EstimatedMinutes != DefaultStepMinutes || steps[1].EstimatedMinutes != 2 {
		t.Fatalf("mixed-format minutes wrong: %+v", steps)
	}
}

func TestTaskStyleValid(t *testing.T) {
	for _, s := range []TaskStyle{StyleStandard, StyleQuick, StyleGentle} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []TaskStyle{"", "brutal", "Standard"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
