package intervals

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(NewClientParams{
		BaseURL:    server.URL,
		APIKey:     "dummy-api-key",
		AthleteID:  "i42",
		HTTPClient: server.Client(),
	})
	return client, server
}

func TestClient_BasicAuthOnEveryRequest(t *testing.T) {
	apiCallsCount := 0
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("API_KEY:dummy-api-key"))

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		apiCallsCount++
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/athlete/i42":
			pkg.WriteResponse(w, "application/json", `{"id":"i42","name":"Test Athlete"}`, http.StatusOK)
		case "/athlete/i42/activities":
			pkg.WriteResponse(w, "application/json", `[{"id":"a1","name":"Morning Ride","type":"Ride","start_date_local":"2026-08-30T07:00:00"}]`, http.StatusOK)
		default:
			http.Error(w, "unexpected path", http.StatusBadRequest)
		}
	})

	ctx := context.Background()

	athlete, err := client.GetAthlete(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test Athlete", athlete.Name)

	activities, err := client.ListActivities(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Morning Ride", activities[0].Name)

	assert.Equal(t, 2, apiCallsCount)
}

func TestClient_ListActivities_DateRangeQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("oldest"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("newest"))
		pkg.WriteResponse(w, "application/json", `[]`, http.StatusOK)
	})

	_, err := client.ListActivities(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
}

func TestClient_APIError(t *testing.T) {
	t.Run("404 carries status and upstream message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			pkg.WriteResponse(w, "application/json", `{"error":"Activity not found"}`, http.StatusNotFound)
		})

		_, err := client.GetActivity(context.Background(), "nope")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Activity not found", apiErr.Message)
		assert.Equal(t, CategoryNotFound, apiErr.Category())
		assert.NotErrorIs(t, err, ErrRequestFailed)
	})

	t.Run("message never empty", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetAthlete(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.NotEmpty(t, apiErr.Message)
		assert.Equal(t, CategoryServer, apiErr.Category())
	})

	t.Run("category mapping", func(t *testing.T) {
		cases := []struct {
			status int
			want   ErrorCategory
		}{
			{http.StatusUnauthorized, CategoryAuth},
			{http.StatusForbidden, CategoryAuth},
			{http.StatusNotFound, CategoryNotFound},
			{http.StatusTooManyRequests, CategoryRateLimited},
			{http.StatusBadGateway, CategoryServer},
			{http.StatusBadRequest, CategoryClient},
		}
		for _, tc := range cases {
			apiErr := &APIError{StatusCode: tc.status, Message: "x"}
			assert.Equal(t, tc.want, apiErr.Category(), "status %d", tc.status)
		}
	})
}

func TestClient_NetworkErrorDistinctFromAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(NewClientParams{
		BaseURL:    server.URL,
		APIKey:     "dummy-api-key",
		AthleteID:  "i42",
		HTTPClient: server.Client(),
	})
	server.Close() // connection refused from now on

	_, err := client.GetAthlete(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	client.timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := client.GetAthlete(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_CreateEvent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/athlete/i42/events", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		pkg.WriteResponse(w, "application/json",
			`{"id":123,"start_date_local":"2026-09-01T00:00:00","name":"Easy Ride","category":"WORKOUT"}`,
			http.StatusOK)
	})

	event, err := client.CreateEvent(context.Background(), map[string]any{
		"start_date_local": "2026-09-01T00:00:00",
		"name":             "Easy Ride",
		"category":         "WORKOUT",
	})
	require.NoError(t, err)
	assert.Equal(t, 123, event.ID)
	assert.Equal(t, "WORKOUT", event.Category)
}

func TestClient_DeleteEvent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/athlete/i42/events/77", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.DeleteEvent(context.Background(), 77))
}

func TestClient_GetPowerCurves(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/athlete/i42/power-curves", r.URL.Path)
		assert.Equal(t, "Ride", r.URL.Query().Get("type"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("oldest"))
		pkg.WriteResponse(w, "application/json", `{"secs":[5,60,300],"values":[900,420,330]}`, http.StatusOK)
	})

	curve, err := client.GetPowerCurves(context.Background(), "Ride", "2026-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 60, 300}, curve.Secs)
	assert.Equal(t, []float64{900, 420, 330}, curve.Values)
}

func TestClient_BadJSONResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, "application/json", `{not json`, http.StatusOK)
	})

	_, err := client.GetAthlete(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
