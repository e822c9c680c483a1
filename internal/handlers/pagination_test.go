package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestCreatePaginatedResponse(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		totalRows int64
		wantPage  int
		wantSize  int
		wantPages int
	}{
		{"defaults", "", 45, 1, DefaultPageSize, 3},
		{"explicit page and size", "page=2&pageSize=10", 45, 2, 10, 5},
		{"size capped at max", "pageSize=500", 45, 1, MaxPageSize, 1},
		{"negative page resets", "page=-3", 0, 1, DefaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContextWithQuery(t, tt.query)
			resp := CreatePaginatedResponse(c, nil, tt.totalRows)
			if resp.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", resp.CurrentPage, tt.wantPage)
			}
			if resp.PageSize != tt.wantSize {
				t.Errorf("PageSize = %d, want %d", resp.PageSize, tt.wantSize)
			}
			if resp.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", resp.TotalPages, tt.wantPages)
			}
			if resp.TotalRows != tt.totalRows {
				t.Errorf("TotalRows = %d, want %d", resp.TotalRows, tt.totalRows)
			}
		})
	}
}
