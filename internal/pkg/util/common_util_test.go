package util

import (
	"testing"
	"time"
)

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, time.March, 17, 14, 30, 45, 123, time.UTC)
	got := StartOfMonth(now)
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}

func TestIsWithinCurrentMonth(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"same month", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{"last instant of month", time.Date(2025, time.March, 31, 23, 59, 59, 999999999, time.UTC), true},
		{"previous month", time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), false},
		{"next month first instant", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), false},
		{"previous year same month", time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithinCurrentMonth(tt.ts, ref); got != tt.want {
				t.Errorf("IsWithinCurrentMonth(%v) = %v, want %v", tt.ts, got, tt.want)
			}
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name              string
		pageStr, limitStr string
		wantPage          int
		wantLimit         int
	}{
		{"defaults on empty", "", "", 1, 10},
		{"valid values", "3", "25", 3, 25},
		{"zero page", "0", "5", 1, 5},
		{"negative page", "-2", "5", 1, 5},
		{"zero limit falls back", "2", "0", 2, 10},
		{"limit capped at max", "1", "500", 1, 100},
		{"garbage input", "abc", "xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePagination(tt.pageStr, tt.limitStr, 10, 100)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("NormalizePagination(%q, %q) = (%d, %d), want (%d, %d)",
					tt.pageStr, tt.limitStr, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	got, err := StrSliceToUInt64Slice([]string{"1", "42", "18446744073709551615"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint64{1, 42, 18446744073709551615}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err = StrSliceToUInt64Slice([]string{"1", "nope"}); err == nil {
		t.Error("expected error for non-numeric member")
	}
}
