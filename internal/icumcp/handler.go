package icumcp

import (
	"context"
	"errors"

	"github.com/johnkeller101/intervals-icu-mcp/internal/config"
	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"
	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"
	"github.com/johnkeller101/intervals-icu-mcp/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// Client is the slice of the Intervals.icu client the tool handlers use.
// Kept as an interface so tests can swap in a mock without a live server.
type Client interface {
	AthleteID() string
	GetAthlete(ctx context.Context) (*intervals.Athlete, error)
	ListGear(ctx context.Context) ([]intervals.Gear, error)
	ListActivities(ctx context.Context, oldest, newest string) ([]intervals.Activity, error)
	GetActivity(ctx context.Context, activityID string) (*intervals.Activity, error)
	GetActivityIntervals(ctx context.Context, activityID string) (*intervals.ActivityIntervals, error)
	UpdateActivity(ctx context.Context, activityID string, patch map[string]any) (*intervals.Activity, error)
	ListWellness(ctx context.Context, oldest, newest string) ([]intervals.Wellness, error)
	GetWellness(ctx context.Context, date string) (*intervals.Wellness, error)
	UpdateWellness(ctx context.Context, date string, patch map[string]any) (*intervals.Wellness, error)
	ListEvents(ctx context.Context, oldest, newest string) ([]intervals.Event, error)
	CreateEvent(ctx context.Context, eventData map[string]any) (*intervals.Event, error)
	UpdateEvent(ctx context.Context, eventID int, eventData map[string]any) (*intervals.Event, error)
	DeleteEvent(ctx context.Context, eventID int) error
	BulkCreateEvents(ctx context.Context, events []map[string]any) ([]intervals.Event, error)
	BulkDeleteEvents(ctx context.Context, oldest, newest, category string) error
	MarkEventDone(ctx context.Context, eventID int) (map[string]any, error)
	DuplicateEvent(ctx context.Context, eventID int, newDate string) (*intervals.Event, error)
	ListSportSettings(ctx context.Context) ([]intervals.SportSettings, error)
	CreateSportSettings(ctx context.Context, settingsData map[string]any) (*intervals.SportSettings, error)
	UpdateSportSettings(ctx context.Context, sportID int, settingsData map[string]any) (*intervals.SportSettings, error)
	ApplySportSettings(ctx context.Context, sportID int, oldest string) (map[string]any, error)
	DeleteSportSettings(ctx context.Context, sportID int) error
	GetPowerCurves(ctx context.Context, curveType, oldest, newest string) (*intervals.PowerCurve, error)
}

// Handler handles MCP tool requests: checks credentials, calls the API client,
// wraps the outcome into the data/analysis/metadata envelope.
//
// Credentials are read through the creds func on every invocation, so a key
// added to the environment after startup is picked up without a restart.
type Handler struct {
	creds     func() (config.Credentials, error)
	newClient func(config.Credentials) Client
	metrics   *metrics.Manager
}

type NewHandlerParams struct {
	Creds     func() (config.Credentials, error)
	NewClient func(config.Credentials) Client
	Metrics   *metrics.Manager
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		creds:     params.Creds,
		newClient: params.NewClient,
		metrics:   params.Metrics,
	}
}

// toolOutcome is what a tool body produces on success.
type toolOutcome struct {
	Data     any
	Analysis any
	Metadata respond.Meta
}

// envelopeError carries an already-built error envelope out of a tool body,
// used when the body has better diagnostics than the generic error mapping
// (e.g. field-level suggestions for a rejected event payload).
type envelopeError struct {
	envelope string
}

func (e *envelopeError) Error() string { return "tool returned error envelope" }

// runTool wraps a tool body with the shared plumbing: the credentials gate
// (no upstream call happens without valid credentials), envelope building
// and invocation metrics. Tool errors are returned as error envelopes with
// IsError set, never as protocol errors, so the caller always gets the
// three-part JSON.
func runTool[In any](
	h *Handler,
	tool, queryType string,
	fn func(ctx context.Context, c Client, in In) (toolOutcome, error),
) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		creds, err := h.creds()
		if err != nil {
			h.metrics.ToolInvocation(tool, "setup_error")
			return errorResult(respond.MissingCredentials(err)), nil, nil
		}

		out, err := fn(ctx, h.newClient(creds), in)
		if err != nil {
			log.WithError(err).WithField("tool", tool).Warn("tool invocation failed")
			h.metrics.ToolInvocation(tool, "error")
			var envErr *envelopeError
			if errors.As(err, &envErr) {
				return errorResult(envErr.envelope), nil, nil
			}
			return errorResult(respond.FromError(err)), nil, nil
		}

		envelope, err := respond.Build(out.Data, respond.Options{
			Analysis:  out.Analysis,
			Metadata:  out.Metadata,
			QueryType: queryType,
		})
		if err != nil {
			h.metrics.ToolInvocation(tool, "error")
			return errorResult(respond.FromError(err)), nil, nil
		}

		h.metrics.ToolInvocation(tool, "ok")
		return textResult(envelope), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
