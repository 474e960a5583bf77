package product

import (
	"strconv"
	"strings"
)

const (
	// DefaultPage is assumed when the page query parameter is absent.
	DefaultPage = 1
	// DefaultLimit bounds the list payload when no limit is provided.
	DefaultLimit = 10
)

// ListParams holds the raw pagination inputs from the list endpoint.
type ListParams struct {
	Page  int
	Limit int
}

// ParseListParams reads page/limit query values, falling back to the
// defaults for absent or non-numeric input.
func ParseListParams(pageRaw, limitRaw string) ListParams {
	params := ListParams{Page: DefaultPage, Limit: DefaultLimit}
	if page, err := strconv.Atoi(strings.TrimSpace(pageRaw)); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil && limit > 0 {
		params.Limit = limit
	}
	return params
}

// Window computes the limit/offset pair for the repository.
func (p ListParams) Window() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := p.Page
	if page <= 0 {
		page = DefaultPage
	}
	return limit, (page - 1) * limit
}
