package db

import "testing"

func TestPrepPaginationInfos(t *testing.T) {
	t.Run("with exact page split", func(t *testing.T) {
		p := PrepPaginationInfos(20, 1, 10)
		if p.TotalPages != 2 {
			t.Errorf("unexpected total pages: %d", p.TotalPages)
		}
		if p.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", p.CurrentPage)
		}
	})

	t.Run("with partial last page", func(t *testing.T) {
		p := PrepPaginationInfos(21, 3, 10)
		if p.TotalPages != 3 {
			t.Errorf("unexpected total pages: %d", p.TotalPages)
		}
	})

	t.Run("with page beyond range", func(t *testing.T) {
		p := PrepPaginationInfos(5, 12, 10)
		if p.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", p.CurrentPage)
		}
	})

	t.Run("with invalid page and limit", func(t *testing.T) {
		p := PrepPaginationInfos(30, 0, 0)
		if p.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", p.CurrentPage)
		}
		if p.PageSize != 10 {
			t.Errorf("unexpected page size: %d", p.PageSize)
		}
	})

	t.Run("with empty collection", func(t *testing.T) {
		p := PrepPaginationInfos(0, 1, 10)
		if p.TotalPages != 0 {
			t.Errorf("unexpected total pages: %d", p.TotalPages)
		}
		if p.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", p.CurrentPage)
		}
	})
}
