package dto

import "time"

type ProjectDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Area      string    `json:"area"`
	Scope     string    `json:"scope"`
	Cover     string    `json:"cover"`
	Gallery   []string  `json:"gallery"`
	Order     int       `json:"order"`
}

type UpsertProjectRequestDTO struct {
	Title    string   `json:"title" binding:"required"`
	Location string   `json:"location"`
	Area     string   `json:"area"`
	Scope    string   `json:"scope"`
	Cover    string   `json:"cover"`
	Gallery  []string `json:"gallery"`
}

// ReorderProjectsRequestDTO 는 관리자 화면 드래그 정렬 결과 전체를 담는다.
// 배열 순서가 곧 노출 순서다.
type ReorderProjectsRequestDTO struct {
	IDs []string `json:"ids" binding:"required"`
}
