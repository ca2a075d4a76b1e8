package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/service"
)

// parsePagination reads the page and page_size query parameters. Absent
// parameters fall back to the defaults; present ones must be valid.
func parsePagination(r *http.Request) (service.Pagination, error) {
	page, err := intQueryParam(r, "page")
	if err != nil {
		return service.Pagination{}, service.ErrInvalidPage
	}
	pageSize, err := intQueryParam(r, "page_size")
	if err != nil {
		return service.Pagination{}, service.ErrInvalidPageSize
	}
	return service.NewPaginationFromOptional(page, pageSize)
}

func intQueryParam(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func groupIDParam(r *http.Request) (domain.GroupID, error) {
	return domain.ParseGroupID(chi.URLParam(r, "groupID"))
}
