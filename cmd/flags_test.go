package cmd

import (
	"testing"

	"github.com/etnz/workledger/date"
	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"go", []string{"go"}},
		{"Go, React ,,SQL ", []string{"Go", "React", "SQL"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if got == nil {
			t.Errorf("splitList(%q) = nil, want non nil", tt.in)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1500", want: "1500"},
		{in: " 8500.50 ", want: "8500.5"},
		{in: "12abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseAmount("salary", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got.String() != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseOptionalDate(t *testing.T) {
	today := date.New(2026, 2, 10)
	tests := []struct {
		in      string
		want    date.Date
		wantErr bool
	}{
		{in: "", want: date.Date{}},
		{in: "2026-6-30", want: date.New(2026, 6, 30)},
		{in: "+3m", want: date.New(2026, 5, 10)},
		{in: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseOptionalDate("deadline", tt.in, today)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOptionalDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOptionalDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
