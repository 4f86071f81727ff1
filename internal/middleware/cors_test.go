package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		origin         string
		path           string
		method         string
		expectCors     bool
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "McpNoOrigin",
			path:           "/mcp",
			method:         "POST",
			expectCors:     true,
			expectedOrigin: "*",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "McpWithOrigin",
			origin:         "http://localhost:3000",
			path:           "/mcp",
			method:         "POST",
			expectCors:     true,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Health",
			path:           "/health",
			method:         "GET",
			expectCors:     true,
			expectedOrigin: "*",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "UnknownPath",
			path:           "/admin",
			method:         "GET",
			expectCors:     false,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "McpPreflight",
			origin:         "http://localhost:3000",
			path:           "/mcp",
			method:         "OPTIONS",
			expectCors:     true,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest(tc.method, tc.path, nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			handler := Cors()(nextHandler)

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectCors {
				assert.Equal(t, tc.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
