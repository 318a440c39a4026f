package dto

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		limit       int
		totalCount  int64
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"empty result", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 7, 1, false, false},
		{"exact page boundary", 1, 10, 10, 1, false, false},
		{"first of three pages", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"page beyond range", 5, 10, 25, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.currentPage, tt.limit, tt.totalCount)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNextPage != tt.wantNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tt.wantNext)
			}
			if p.HasPrevPage != tt.wantPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tt.wantPrev)
			}
			if p.CurrentPage != tt.currentPage || p.Limit != tt.limit || p.TotalCount != tt.totalCount {
				t.Errorf("echo fields mismatch: %+v", p)
			}
		})
	}
}
