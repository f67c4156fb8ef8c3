// Package store abstracts the content store behind the two operations the
// migration needs: a whole-collection snapshot and an atomic multi-key write.
//
// 마이그레이션 경로에서는 전역 클라이언트 핸들 대신 이 인터페이스를 주입받아
// 사용한다. 테스트에서는 Memory 구현으로 대체한다.
package store

import "context"

// Document is a raw document. Key presence is significant (the migration
// distinguishes a missing field from an empty one), so documents are plain
// maps rather than typed structs.
type Document = map[string]any

// Store is the injected content-store client.
type Store interface {
	// Snapshot reads an entire collection keyed by document id. A missing
	// collection yields an empty (or nil) map, not an error.
	Snapshot(ctx context.Context, collection string) (map[string]Document, error)

	// ApplyAll replaces every listed document in one atomic write. Either
	// all keys are applied or none are.
	ApplyAll(ctx context.Context, collection string, docs map[string]Document) error
}
