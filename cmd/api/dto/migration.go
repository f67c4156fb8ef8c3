package dto

// MigrateDatesRequestDTO 는 운영자 확인을 요구한다. confirm 이 true 가
// 아니면 아무것도 실행하지 않는다.
type MigrateDatesRequestDTO struct {
	Confirm bool `json:"confirm"`
}

type MigrateDatesResponseDTO struct {
	TotalChanged    int `json:"total_changed"`
	DateConversions int `json:"date_conversions"`
}
