// Package migration repairs legacy insight documents in place: every date
// becomes the canonical "YYYYMMDD HHMMSS" string and every document gains
// thumbnail/url keys. The pass is idempotent, so re-running it (manually or
// by two operators at once) is always safe.
package migration

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gaon-interior/datefmt"
	"gaon-interior/models"
	"gaon-interior/store"
)

// Result summarizes one migration run.
type Result struct {
	TotalChanged    int `json:"total_changed"`
	DateConversions int `json:"date_conversions"`
}

// Plan is the computed diff before it is written.
type Plan struct {
	Staged          map[string]store.Document
	DateConversions int
}

func (p Plan) Result() Result {
	return Result{TotalChanged: len(p.Staged), DateConversions: p.DateConversions}
}

// Runner performs the one-shot repair pass over a single collection.
type Runner struct {
	store      store.Store
	collection string
}

func NewRunner(s store.Store, collection string) *Runner {
	return &Runner{store: s, collection: collection}
}

// Compute reads the whole collection and builds the set of changed copies
// without writing anything. Store errors propagate unmodified.
func (r *Runner) Compute(ctx context.Context) (Plan, error) {
	snap, err := r.store.Snapshot(ctx, r.collection)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Staged: make(map[string]store.Document)}
	for id, doc := range snap {
		updated, changed, converted := repair(doc)
		if converted {
			plan.DateConversions++
		}
		if changed {
			plan.Staged[id] = updated
		}
	}
	return plan, nil
}

// Run computes the diff and commits it as one atomic multi-key write.
// Nothing is written when no document needs repair.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	plan, err := r.Compute(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(plan.Staged) > 0 {
		if err := r.store.ApplyAll(ctx, r.collection, plan.Staged); err != nil {
			return Result{}, err
		}
	}
	return plan.Result(), nil
}

// repair builds an updated copy of one document. It reports whether the copy
// differs from the original and whether the date field was converted.
func repair(doc store.Document) (updated store.Document, changed, converted bool) {
	updated = make(store.Document, len(doc)+2)
	for k, v := range doc {
		updated[k] = v
	}

	// 키 자체가 없을 때만 빈 문자열로 채운다. 값이 있는 문서는 건드리지 않는다.
	_, hasThumbnail := doc[models.FieldThumbnail]
	_, hasURL := doc[models.FieldURL]
	if !hasThumbnail || !hasURL {
		if !hasThumbnail {
			updated[models.FieldThumbnail] = ""
		}
		if !hasURL {
			updated[models.FieldURL] = ""
		}
		changed = true
	}

	raw, hasDate := doc[models.FieldDate]
	if dt, ok := raw.(primitive.DateTime); ok {
		// bson 은 과거에 Date 타입으로 저장된 값을 primitive.DateTime 으로
		// 디코딩한다. datefmt 는 드라이버를 모르므로 여기서 변환한다.
		raw = dt.Time()
	}
	if !hasDate {
		updated[models.FieldDate] = datefmt.Normalize(nil)
		return updated, true, true
	}

	canonical := datefmt.Normalize(raw)
	if s, ok := raw.(string); ok && s == canonical {
		return updated, changed, false
	}
	updated[models.FieldDate] = canonical
	return updated, true, true
}
