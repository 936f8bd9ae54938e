package contract

import (
	"math"

	"github.com/shopspring/decimal"
)

func init() {
	// Areas and productions are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func NewPageMeta(page, limit int, total int64) PageMeta {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

type AffectedResponse struct {
	Affected int64 `json:"affected"`
}
