package decompose

import "github.com/tinysteps/backend/internal/model"

const jsonFormat = `
Respond with JSON only:
{
  "title": "<short descriptive title for the task>",
  "steps": [
    { "action": "<clear action description>", "estimatedMinutes": <minutes for this step> }
  ],
  "encouragement": "<brief motivating message>"
}`

var stylePrompts = map[model.TaskStyle]string{
	model.StyleStandard: `You are an ADHD task coach. Break down the given task into small, actionable steps.

Rules:
- Each step should take 2-10 minutes max
- Use clear, specific action verbs (grab, open, write, move)
- Include micro-steps that might seem obvious (ADHD brains need explicit steps)
- Add brief context/location when helpful
- 5-8 steps is ideal
- End with a small reward or acknowledgment step
- Each step must include a realistic time estimate in minutes
` + jsonFormat,

	model.StyleQuick: `You are an ADHD task coach. Break down the given task into exactly 5 quick steps.

Rules:
- Maximum 5 steps, no more
- Each step ultra-concise (under 10 words)
- Action verbs only
- No fluff, just essentials
- Each step must include a realistic time estimate in minutes
` + jsonFormat,

	model.StyleGentle: `You are a supportive ADHD coach. Break down the given task with extra care and gentleness.

Rules:
- Smaller steps than usual (1-5 minutes each)
- Include permission to pause between steps
- Add sensory grounding cues (take a breath, notice your feet)
- Acknowledge difficulty without judgment
- Include self-compassion reminders
- 6-10 steps is fine
- Each step must include a realistic time estimate in minutes
` + jsonFormat,
}

const subStepsPrompt = `You are an ADHD task coach helping someone who is stuck on a step.

Break this step into 3-5 MICRO-steps that are:
- Extremely small (1-3 minutes each)
- Physical and concrete (stand up, open app, move hand)
- Include the very first tiny action to start
- No thinking or decision-making required

The goal is to make starting feel effortless.

Respond with JSON only:
{
  "substeps": ["micro-step 1", "micro-step 2", ...],
  "encouragement": "<brief, warm encouragement>"
}`

var timeOfDayHints = map[string]string{
	"morning":   "Consider morning energy levels and routines.",
	"afternoon": "Account for post-lunch energy dip.",
	"evening":   "Keep steps simple, energy may be low.",
	"night":     "Ultra-simple steps only, minimal cognitive load.",
}

var energyHints = map[string]string{
	"low":    "User has low energy - make steps extra small and gentle.",
	"medium": "Normal energy level.",
	"high":   "User has good energy - can handle slightly bigger steps.",
}

// contextAddition appends one fixed hint sentence per present context field.
// Both hints may apply.
func contextAddition(ctx *model.TaskContext) string {
	if ctx == nil {
		return ""
	}

	var additions []string
	if hint, ok := timeOfDayHints[ctx.TimeOfDay]; ok {
		additions = append(additions, hint)
	}
	if hint, ok := energyHints[ctx.Energy]; ok {
		additions = append(additions, hint)
	}

	if len(additions) == 0 {
		return ""
	}
	out := "\n\nContext: " + additions[0]
	for _, a := range additions[1:] {
		out += " " + a
	}
	return out
}
