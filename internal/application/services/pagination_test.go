package services

import "testing"

func TestClampPageParams(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values pass through", 3, 25, 3, 25},
		{"zero page defaults to 1", 0, 10, 1, 10},
		{"negative page defaults to 1", -5, 10, 1, 10},
		{"zero limit uses default", 2, 0, 2, 10},
		{"negative limit uses default", 2, -1, 2, 10},
		{"oversized limit clamps to max", 1, 5000, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := clampPageParams(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("clampPageParams(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		limit        int
		totalRecords int
		wantPages    int
		wantNext     bool
		wantPrev     bool
	}{
		{"empty collection", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 7, 1, false, false},
		{"exact page boundary", 1, 10, 10, 1, false, false},
		{"first of several", 1, 10, 35, 4, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"page beyond range", 9, 10, 35, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPagination(tt.page, tt.limit, tt.totalRecords)
			if p.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.page)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.TotalRecords != tt.totalRecords {
				t.Errorf("TotalRecords = %d, want %d", p.TotalRecords, tt.totalRecords)
			}
			if p.HasNextPage != tt.wantNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tt.wantNext)
			}
			if p.HasPrevPage != tt.wantPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tt.wantPrev)
			}
		})
	}
}
