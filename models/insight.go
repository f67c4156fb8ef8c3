package models

import "time"

// Raw bson field names of the insights collection. The migration works on
// raw documents (key presence matters), so the names are shared here instead
// of being duplicated as string literals.
const (
	FieldDate      = "date"
	FieldThumbnail = "thumbnail"
	FieldURL       = "url"
)

// Insight represents one insight (blog) post document.
// Collection: insights
//
// Date 는 정규화된 "YYYYMMDD HHMMSS" 문자열이다. 과거 수기 입력으로 생긴
// 비정형 값은 마이그레이션(migration 패키지)이 일괄 변환한다.
type Insight struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	Body      string    `bson:"body" json:"body"`
	Date      string    `bson:"date" json:"date"`
	Thumbnail string    `bson:"thumbnail" json:"thumbnail"`
	URL       string    `bson:"url" json:"url"`
}
