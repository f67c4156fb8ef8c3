package dto

// PaginationInsightDTO is a concrete swagger-friendly type for the paginated
// insights response (swag cannot expand the generic Pagination[T]).
// swagger:model PaginationInsightDTO
type PaginationInsightDTO struct {
	Data     []InsightDTO `json:"data"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
}
