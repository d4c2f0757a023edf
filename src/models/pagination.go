package models

import "math"

// PaginationParams holds the page, search and sort inputs shared by listing endpoints.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"date"`
	Order  string `json:"order" query:"order" example:"asc"`
}

// PaginatedResponse wraps a page of results.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

func DefaultPagination() PaginationParams {
	return PaginationParams{Page: 1, Limit: 10, SortBy: "date", Order: "asc"}
}

func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip is the number of documents to skip for the current page.
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}
