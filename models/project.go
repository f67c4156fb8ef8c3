package models

import "time"

// Project represents a portfolio project document.
// Collection: projects
//
// Order 는 포트폴리오 갤러리의 노출 순서다. 관리자 화면의 드래그 정렬이
// 저장될 때 일괄 갱신된다.
type Project struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Title     string    `bson:"title" json:"title"`
	Location  string    `bson:"location" json:"location"`
	Area      string    `bson:"area" json:"area"`
	Scope     string    `bson:"scope" json:"scope"`
	Cover     string    `bson:"cover" json:"cover"`
	Gallery   []string  `bson:"gallery" json:"gallery"`
	Order     int       `bson:"order" json:"order"`
}
