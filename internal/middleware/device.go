package middleware

import (
	"context"

	"connectrpc.com/connect"
)

// DeviceHeader carries the caller's device id for session lookups.
const DeviceHeader = "X-Device-Id"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// DeviceIDKey is the context key for the calling device id.
const DeviceIDKey contextKey = "device_id"

// GetDeviceID extracts the device id from the context.
// Returns empty string if not found.
func GetDeviceID(ctx context.Context) string {
	deviceID, _ := ctx.Value(DeviceIDKey).(string)
	return deviceID
}

// WithDeviceID returns a context carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDKey, deviceID)
}

// DeviceInterceptor copies the X-Device-Id header, when present, into the context.
// Requests without it pass through unchanged.
func DeviceInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if deviceID := req.Header().Get(DeviceHeader); deviceID != "" {
				ctx = WithDeviceID(ctx, deviceID)
			}
			return next(ctx, req)
		}
	}
}
