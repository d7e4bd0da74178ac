package pagination

import "testing"

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied to zero values", 0, 0, 1, 15},
		{"negative page reset", -3, 20, 1, 20},
		{"per page capped at 100", 2, 500, 2, 100},
		{"valid values untouched", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", p.PerPage, tt.wantPerPage)
			}
		})
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	if pag.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext {
		t.Error("HasNext = false, want true on middle page")
	}
	if !pag.HasPrev {
		t.Error("HasPrev = false, want true on middle page")
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Error("HasNext = true on last page, want false")
	}

	first := NewPagination(1, 15, 31)
	if first.HasPrev {
		t.Error("HasPrev = true on first page, want false")
	}
}
