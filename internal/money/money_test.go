package money

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{in: "10", want: 1000},
		{in: "10.5", want: 1050},
		{in: " 3.33 ", want: 333},
		{in: "0.005", want: 1},
		{in: "0.004", want: 0},
		{in: "-2.50", want: -250},
		{in: "-0.005", want: -1},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1,50", wantErr: true},
		{in: "92233720368547758.07", want: MaxAmount},
		{in: "-92233720368547758.07", want: MinAmount},
		{in: "92233720368547758.08", wantErr: true},
		{in: "100000000000000000000", wantErr: true},
		{in: "1e30", wantErr: true},
		{in: "-1e30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidAmount", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromDecimalSaturates(t *testing.T) {
	if got := FromDecimal(decimal.RequireFromString("1e30")); got != MaxAmount {
		t.Errorf("FromDecimal(1e30) = %d, want MaxAmount", got)
	}
	if got := FromDecimal(decimal.RequireFromString("-1e30")); got != MinAmount {
		t.Errorf("FromDecimal(-1e30) = %d, want MinAmount", got)
	}
	if got := Cents(100).Percent(decimal.RequireFromString("1e40")); got != MaxAmount {
		t.Errorf("Percent(1e40) = %d, want MaxAmount", got)
	}
}

func TestUnmarshalJSONOutOfRange(t *testing.T) {
	var c Cents
	err := json.Unmarshal([]byte(`100000000000000000000`), &c)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Unmarshal(1e20) error = %v, want ErrInvalidAmount", err)
	}
	if c != 0 {
		t.Errorf("Unmarshal(1e20) left %d, want untouched zero", c)
	}
}

func TestParseOrZero(t *testing.T) {
	if got := ParseOrZero("not a number"); got != 0 {
		t.Errorf("ParseOrZero(garbage) = %d, want 0", got)
	}
	if got := ParseOrZero("7.25"); got != 725 {
		t.Errorf("ParseOrZero(7.25) = %d, want 725", got)
	}
}

func TestFromFloat(t *testing.T) {
	// 0.1 + 0.2 is the classic float drift case.
	if got := FromFloat(0.1 + 0.2); got != 30 {
		t.Errorf("FromFloat(0.1+0.2) = %d, want 30", got)
	}
	if got := FromFloat(2.675); got != 268 {
		t.Errorf("FromFloat(2.675) = %d, want 268", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		amount Cents
		pct    string
		want   Cents
	}{
		{amount: 10000, pct: "25", want: 2500},
		{amount: 1000, pct: "33.333", want: 333},
		{amount: 1001, pct: "50", want: 501}, // 5.005 rounds half-up
		{amount: 999, pct: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.pct, func(t *testing.T) {
			got := tt.amount.Percent(decimal.RequireFromString(tt.pct))
			if got != tt.want {
				t.Errorf("%s * %s%% = %s, want %s", tt.amount, tt.pct, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := map[Cents]string{
		0:     "0.00",
		5:     "0.05",
		250:   "2.50",
		-250:  "-2.50",
		10000: "100.00",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Cents(%d).String() = %q, want %q", c, got, want)
		}
	}
}

func TestIsSettled(t *testing.T) {
	for _, c := range []Cents{0, 1, -1} {
		if !c.IsSettled() {
			t.Errorf("Cents(%d).IsSettled() = false, want true", c)
		}
	}
	for _, c := range []Cents{2, -2, 1000} {
		if c.IsSettled() {
			t.Errorf("Cents(%d).IsSettled() = true, want false", c)
		}
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		Amount Cents `json:"amount"`
	}

	data, err := json.Marshal(payload{Amount: 1050})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"amount":10.50}` {
		t.Errorf("Marshal = %s", data)
	}

	for _, in := range []string{`{"amount":10.5}`, `{"amount":"10.50"}`} {
		var p payload
		if err := json.Unmarshal([]byte(in), &p); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", in, err)
		}
		if p.Amount != 1050 {
			t.Errorf("Unmarshal(%s) = %d, want 1050", in, p.Amount)
		}
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"amount":"ten"}`), &p); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestFromMajor(t *testing.T) {
	if got := FromMajor(10, 50); got != 1050 {
		t.Errorf("FromMajor(10, 50) = %d", got)
	}
	if got := FromMajor(-2, 50); got != -250 {
		t.Errorf("FromMajor(-2, 50) = %d", got)
	}
	if got := Sum(FromMajor(3, 34), FromMajor(3, 33), FromMajor(3, 33)); got != 1000 {
		t.Errorf("Sum = %d, want 1000", got)
	}
}
