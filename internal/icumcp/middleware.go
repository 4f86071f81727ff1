package icumcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// observe logs every MCP method with its duration and feeds the request
// histogram. Tool failures are already turned into error envelopes before
// this point, so err here means a protocol-level problem.
func (h *Handler) observe() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			result, err := next(ctx, method, req)
			elapsed := time.Since(start)

			h.metrics.MethodHandled(method, elapsed)

			entry := log.WithFields(log.Fields{
				"method":  method,
				"elapsed": elapsed.String(),
			})
			if err != nil {
				entry.WithError(err).Error("mcp method failed")
			} else {
				entry.Debug("mcp method handled")
			}

			return result, err
		}
	}
}
