package icumcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds canned analysis workflows. Each prompt resolves to a
// single user message that walks the model through the right tool sequence.
func registerPrompts(s *mcp.Server) {
	s.AddPrompt(&mcp.Prompt{
		Name:        "analyze_training_load",
		Title:       "Analyze training load",
		Description: "Review fitness, fatigue and form over the last weeks and flag overtraining risk.",
		Arguments: []*mcp.PromptArgument{
			{Name: "days", Description: "How many days back to analyze (default 42)"},
		},
	}, func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		days := promptArg(req, "days", "42")
		text := fmt.Sprintf(
			"Analyze my training load for the last %s days.\n\n"+
				"1. Call get_training_load for the period and look at the CTL/ATL/form trend.\n"+
				"2. Call get_activities for the same period and check how the load was distributed across sports and weeks.\n"+
				"3. Summarize: current fitness and form, whether the ramp rate is sustainable, and any overtraining or detraining risk.\n"+
				"4. Finish with one concrete recommendation for the coming week.", days)
		return promptResult("Training load analysis", text), nil
	})

	s.AddPrompt(&mcp.Prompt{
		Name:        "plan_next_week",
		Title:       "Plan next week",
		Description: "Draft a week of workouts on the calendar based on current form and upcoming events.",
	}, func(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := "Plan my training for next week.\n\n" +
			"1. Call get_training_load to see my current fitness and form.\n" +
			"2. Call get_events for the next 30 days to find planned races or targets.\n" +
			"3. Call get_sport_settings so planned intensities match my thresholds.\n" +
			"4. Propose a day-by-day plan (include rest days) and, after I confirm, create it with bulk_create_events.\n" +
			"Do not create any events before I approve the plan."
		return promptResult("Weekly planning", text), nil
	})

	s.AddPrompt(&mcp.Prompt{
		Name:        "review_recovery",
		Title:       "Review recovery",
		Description: "Check recent wellness markers (sleep, HRV, resting HR, soreness) against the training done.",
		Arguments: []*mcp.PromptArgument{
			{Name: "days", Description: "How many days back to review (default 7)"},
		},
	}, func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		days := promptArg(req, "days", "7")
		text := fmt.Sprintf(
			"Review my recovery for the last %s days.\n\n"+
				"1. Call get_wellness for the period: sleep, HRV, resting HR, fatigue, soreness.\n"+
				"2. Call get_activities for the same period to relate the markers to the training done.\n"+
				"3. Tell me whether I am recovering well, which marker is most off, and whether tomorrow should be trained as planned, easier, or taken off.", days)
		return promptResult("Recovery review", text), nil
	})
}

func promptArg(req *mcp.GetPromptRequest, name, fallback string) string {
	if req != nil && req.Params != nil {
		if v, ok := req.Params.Arguments[name]; ok && v != "" {
			return v
		}
	}
	return fallback
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
