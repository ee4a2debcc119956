package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultLimit = 10

// Params is the page window requested by the client.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block attached to list responses.
type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// FromQuery reads ?page and ?limit, falling back to page 1 / 10 per page.
func FromQuery(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) MetaFor(total int64) Meta {
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   int(math.Ceil(float64(total) / float64(p.Limit))),
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}
