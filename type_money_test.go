package camdash

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got, want := USD(100).Add(USD(250)), USD(350); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got := USD(100).Cmp(USD(250)); got >= 0 {
		t.Errorf("Cmp() = %d, want negative", got)
	}
	if !USD(0).IsZero() {
		t.Error("USD(0).IsZero() = false, want true")
	}
}

func TestMoney_Compact(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{USD(575000), "$575K"},
		{USD(1200000), "$1.2M"},
		{USD(350), "$350"},
	}
	for _, tt := range tests {
		if got := tt.in.Compact(); got != tt.want {
			t.Errorf("Compact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoney_JSONNumber(t *testing.T) {
	data, err := json.Marshal(USD(255000))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// stored balances are bare JSON numbers
	if string(data) != "255000" {
		t.Errorf("Marshal() = %s, want 255000", data)
	}
	var back Money
	if err := json.Unmarshal([]byte("255000"), &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(USD(255000)) {
		t.Errorf("round trip = %v, want %v", back, USD(255000))
	}
	if err := json.Unmarshal([]byte(`"42.50"`), &back); err != nil {
		t.Fatalf("Unmarshal(quoted) error = %v", err)
	}
	if !back.Equal(USD(42.5)) {
		t.Errorf("quoted round trip = %v, want %v", back, USD(42.5))
	}
}
