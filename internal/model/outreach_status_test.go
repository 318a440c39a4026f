package model

import "testing"

func TestParseOutreachStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    OutreachStatus
		wantErr bool
	}{
		{"PENDING", OutreachPending, false},
		{"APPROVED", OutreachApproved, false},
		{"REJECTED", OutreachRejected, false},
		{"SENT", OutreachSent, false},
		{"pending", "", true},
		{"DONE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOutreachStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOutreachStatus(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutreachStatus(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutreachStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsOutreachTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to OutreachStatus
		want     bool
	}{
		{OutreachPending, OutreachApproved, true},
		{OutreachPending, OutreachRejected, true},
		{OutreachPending, OutreachSent, false},
		{OutreachPending, OutreachPending, false},
		{OutreachApproved, OutreachSent, true},
		{OutreachApproved, OutreachRejected, false},
		{OutreachApproved, OutreachPending, false},
		{OutreachRejected, OutreachApproved, false},
		{OutreachRejected, OutreachSent, false},
		{OutreachSent, OutreachApproved, false},
		{OutreachSent, OutreachPending, false},
	}

	for _, tt := range tests {
		if got := IsOutreachTransitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("IsOutreachTransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseSegment(t *testing.T) {
	valid := []string{"INTERNSHIP", "FRESHER_OR_LESS_THAN_1_YEAR", "ONE_TO_THREE_YEARS"}
	for _, s := range valid {
		if _, err := ParseSegment(s); err != nil {
			t.Errorf("ParseSegment(%q): unexpected error %v", s, err)
		}
	}

	invalid := []string{"", "SENIOR", "internship"}
	for _, s := range invalid {
		if _, err := ParseSegment(s); err == nil {
			t.Errorf("ParseSegment(%q): expected error", s)
		}
	}
}
