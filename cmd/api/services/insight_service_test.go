package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/cmd/api/services"
	"gaon-interior/datefmt"
)

func TestBuildInsightNormalizesDate(t *testing.T) {
	in := services.BuildInsight(dto.UpsertInsightRequestDTO{
		Title: "아파트 리모델링",
		Body:  "<p>본문</p>",
		Date:  "2025년 12월 16일 / 15시 27분 04초",
	})

	assert.Equal(t, "20251216 152704", in.Date)
	assert.True(t, datefmt.Canonical(in.Date))
}

func TestBuildInsightDefaultsDateToNow(t *testing.T) {
	in := services.BuildInsight(dto.UpsertInsightRequestDTO{
		Title: "공지",
		Body:  "<p>본문</p>",
	})

	assert.True(t, datefmt.Canonical(in.Date))
}

func TestBuildInsightThumbnailFallback(t *testing.T) {
	in := services.BuildInsight(dto.UpsertInsightRequestDTO{
		Title: "주방 시공기",
		Body:  `<p>사진</p><img src="https://res.cloudinary.com/gaon/image/upload/v1/a.jpg">`,
	})
	assert.Equal(t, "https://res.cloudinary.com/gaon/image/upload/v1/a.jpg", in.Thumbnail)

	explicit := services.BuildInsight(dto.UpsertInsightRequestDTO{
		Title:     "주방 시공기",
		Body:      `<img src="https://res.cloudinary.com/gaon/image/upload/v1/a.jpg">`,
		Thumbnail: "https://res.cloudinary.com/gaon/image/upload/v1/cover.jpg",
	})
	assert.Equal(t, "https://res.cloudinary.com/gaon/image/upload/v1/cover.jpg", explicit.Thumbnail)
}
