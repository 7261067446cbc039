package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

const procedure = "/splitledger.v1.LedgerService/GetGroup"

// setupEchoServer serves a single procedure that reports the device id it saw
// as the group name, or fails with NotFound for group "missing".
func setupEchoServer(t *testing.T, interceptors ...connect.Interceptor) *connect.Client[ledgerapi.GetGroupRequest, ledgerapi.GetGroupResponse] {
	t.Helper()

	handler := connect.NewUnaryHandler(procedure,
		func(ctx context.Context, req *connect.Request[ledgerapi.GetGroupRequest]) (*connect.Response[ledgerapi.GetGroupResponse], error) {
			if req.Msg.GroupID == "missing" {
				return nil, connect.NewError(connect.CodeNotFound, errors.New("group missing"))
			}
			return connect.NewResponse(&ledgerapi.GetGroupResponse{
				Group: ledgerapi.Group{ID: req.Msg.GroupID, Name: GetDeviceID(ctx)},
			}), nil
		},
		connect.WithCodec(ledgerapi.Codec),
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(procedure, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return connect.NewClient[ledgerapi.GetGroupRequest, ledgerapi.GetGroupResponse](
		http.DefaultClient, server.URL+procedure, connect.WithCodec(ledgerapi.Codec),
	)
}

func TestDeviceInterceptor(t *testing.T) {
	client := setupEchoServer(t, DeviceInterceptor(), ObserveInterceptor(nil))

	req := connect.NewRequest(&ledgerapi.GetGroupRequest{GroupID: "g1"})
	req.Header().Set(DeviceHeader, "phone-1")
	resp, err := client.CallUnary(context.Background(), req)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if resp.Msg.Group.Name != "phone-1" {
		t.Errorf("device id = %q, want phone-1", resp.Msg.Group.Name)
	}

	resp, err = client.CallUnary(context.Background(), connect.NewRequest(&ledgerapi.GetGroupRequest{GroupID: "g1"}))
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if resp.Msg.Group.Name != "" {
		t.Errorf("expected empty device id, got %q", resp.Msg.Group.Name)
	}
}

func TestGetDeviceID_Empty(t *testing.T) {
	if id := GetDeviceID(context.Background()); id != "" {
		t.Errorf("expected empty device id, got %q", id)
	}
	if id := GetDeviceID(WithDeviceID(context.Background(), "d")); id != "d" {
		t.Errorf("expected d, got %q", id)
	}
}

// captureLogs routes the default slog logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestObserveInterceptor(t *testing.T) {
	logs := captureLogs(t)
	m := metrics.New()
	client := setupEchoServer(t, DeviceInterceptor(), ObserveInterceptor(m))
	ctx := context.Background()

	req := connect.NewRequest(&ledgerapi.GetGroupRequest{GroupID: "g1"})
	req.Header().Set(DeviceHeader, "phone-1")
	if _, err := client.CallUnary(ctx, req); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if _, err := client.CallUnary(ctx, connect.NewRequest(&ledgerapi.GetGroupRequest{GroupID: "missing"})); err == nil {
		t.Fatal("expected error")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	for _, want := range []string{
		`splitledger_rpc_requests_total{code="ok",procedure="` + procedure + `"} 1`,
		`splitledger_rpc_requests_total{code="not_found",procedure="` + procedure + `"} 1`,
	} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("expected %s in exposition", want)
		}
	}

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), logs.String())
	}

	var ok, failed map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatalf("bad log line: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatalf("bad log line: %v", err)
	}

	if ok["level"] != "INFO" || ok["code"] != "ok" || ok["device_id"] != "phone-1" || ok["procedure"] != procedure {
		t.Errorf("unexpected success entry: %v", ok)
	}
	if failed["level"] != "WARN" || failed["code"] != "not_found" {
		t.Errorf("unexpected failure entry: %v", failed)
	}
	if _, found := failed["duration_ms"]; !found {
		t.Errorf("expected duration_ms in %v", failed)
	}
}

func TestServerFault(t *testing.T) {
	tests := []struct {
		code connect.Code
		want bool
	}{
		{connect.CodeInternal, true},
		{connect.CodeUnavailable, true},
		{connect.CodeUnknown, true},
		{connect.CodeNotFound, false},
		{connect.CodeInvalidArgument, false},
		{connect.CodeFailedPrecondition, false},
	}

	for _, tt := range tests {
		if got := serverFault(tt.code); got != tt.want {
			t.Errorf("serverFault(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
