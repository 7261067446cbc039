package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/metrics"
)

// ObserveInterceptor records one outcome per RPC: a log line and, when m is
// non-nil, the request counter and latency histogram. Both share the same
// result code ("ok" or the connect code name) and duration.
func ObserveInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(procedure, code, elapsed)

			attrs := []any{
				"procedure", procedure,
				"code", code,
				"device_id", GetDeviceID(ctx),
				"duration_ms", elapsed.Milliseconds(),
			}
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case serverFault(connect.CodeOf(err)):
				slog.Error("RPC error", append(attrs, "error", err)...)
			default:
				slog.Warn("RPC error", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}

// serverFault reports codes that point at the server rather than the caller.
func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}
