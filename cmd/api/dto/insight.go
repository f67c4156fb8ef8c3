package dto

import "time"

type InsightDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Body      string    `json:"body"`
	Date      string    `json:"date"`
	Thumbnail string    `json:"thumbnail"`
	URL       string    `json:"url"`
}

// UpsertInsightRequestDTO 의 Date 는 자유 형식으로 받는다.
// 저장 전에 서버가 정규형("YYYYMMDD HHMMSS")으로 변환한다.
type UpsertInsightRequestDTO struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category"`
	Body      string `json:"body" binding:"required"`
	Date      string `json:"date"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}
