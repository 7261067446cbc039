package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRPC(t *testing.T) {
	m := New()

	m.ObserveRPC("/splitledger.v1.LedgerService/GetBalances", "ok", 20*time.Millisecond)
	m.ObserveRPC("/splitledger.v1.LedgerService/GetBalances", "ok", 30*time.Millisecond)
	m.ObserveRPC("/splitledger.v1.LedgerService/GetGroup", "not_found", time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/splitledger.v1.LedgerService/GetBalances", "ok")); got != 2 {
		t.Errorf("GetBalances ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("/splitledger.v1.LedgerService/GetGroup", "not_found")); got != 1 {
		t.Errorf("GetGroup not_found count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestObserveDebts(t *testing.T) {
	m := New()
	m.ObserveDebts(0)
	m.ObserveDebts(3)

	if got := testutil.ToFloat64(m.debtCalculations); got != 2 {
		t.Errorf("debt calculations = %v, want 2", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("p", "ok", time.Second)
	m.ObserveDebts(1)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveDebts(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"splitledger_debt_calculations_total 1", "splitledger_suggested_debts_bucket", "go_goroutines"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("Expected %q in exposition", name)
		}
	}
}
