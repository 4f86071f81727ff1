package icumcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/johnkeller101/intervals-icu-mcp/internal/respond"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const athleteProfileURI = "intervals://athlete/profile"

// registerAthleteResource exposes the athlete profile as a readable resource
// so clients can load it as context without a tool call.
func registerAthleteResource(s *mcp.Server, h *Handler) {
	s.AddResource(&mcp.Resource{
		URI:         athleteProfileURI,
		Name:        "athlete_profile",
		Title:       "Athlete profile",
		Description: "The configured athlete's Intervals.icu profile: name, location, timezone, weight, resting HR.",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		creds, err := h.creds()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", respond.ErrMissingCredentials, err)
		}

		athlete, err := h.newClient(creds).GetAthlete(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch athlete profile: %w", err)
		}

		raw, err := json.MarshalIndent(athlete, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode athlete profile: %w", err)
		}

		uri := athleteProfileURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(raw),
			}},
		}, nil
	})
}
