package camdash

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_StartOfWeekly(t *testing.T) {
	monday := NewDate(2024, time.December, 9)
	tests := []struct {
		in   Date
		want Date
	}{
		{NewDate(2024, time.December, 9), monday},  // Monday
		{NewDate(2024, time.December, 11), monday}, // Wednesday
		{NewDate(2024, time.December, 15), monday}, // Sunday
	}
	for _, tt := range tests {
		if got := tt.in.StartOf(Weekly); got != tt.want {
			t.Errorf("StartOf(Weekly) on %s = %s, want %s", tt.in, got, tt.want)
		}
		if got := tt.in.EndOf(Weekly); got != monday.Add(6) {
			t.Errorf("EndOf(Weekly) on %s = %s, want %s", tt.in, got, monday.Add(6))
		}
	}
}

func TestWeeklyRange_Contains(t *testing.T) {
	week := Weekly.Range(NewDate(2024, time.December, 11))
	if !week.Contains(NewDate(2024, time.December, 9)) {
		t.Error("monday boundary should be contained")
	}
	if !week.Contains(NewDate(2024, time.December, 15)) {
		t.Error("sunday boundary should be contained")
	}
	if week.Contains(NewDate(2024, time.December, 8)) {
		t.Error("previous sunday should not be contained")
	}
	if week.Contains(NewDate(2024, time.December, 16)) {
		t.Error("next monday should not be contained")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-12-09", NewDate(2024, time.December, 9), false},
		{"2024-7-1", NewDate(2024, time.July, 1), false},
		{"2024-12-09T14:30:00Z", NewDate(2024, time.December, 9), false},
		{"not a date", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.December, 9)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-12-09"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2024-12-09"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestRange_Identifier(t *testing.T) {
	week := Weekly.Range(NewDate(2024, time.December, 11))
	if got, want := week.Identifier(), "2024-W50"; got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}
}
