package migration_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaon-interior/migration"
	"gaon-interior/store"
)

const testCollection = "insights"

var canonicalRe = regexp.MustCompile(`^\d{8} \d{6}$`)

func seed(t *testing.T, docs map[string]store.Document) *store.Memory {
	t.Helper()
	mem := store.NewMemory()
	require.NoError(t, mem.ApplyAll(context.Background(), testCollection, docs))
	return mem
}

func TestRunRepairsMixedCollection(t *testing.T) {
	mem := seed(t, map[string]store.Document{
		"a": {"title": "현장 스케치", "date": "2025년 12월 16일 / 15시 27분 04초"},
		"b": {"title": "시공 후기", "date": "20230105", "thumbnail": "https://img/x.jpg"},
		"c": {"title": "소식", "date": "2025-06-15T09:30:00.000Z", "thumbnail": "", "url": ""},
		"d": {"title": "공지"}, // no date at all
	})

	runner := migration.NewRunner(mem, testCollection)
	res, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalChanged)
	assert.Equal(t, 4, res.DateConversions)

	snap, err := mem.Snapshot(context.Background(), testCollection)
	require.NoError(t, err)
	for id, doc := range snap {
		assert.Regexp(t, canonicalRe, doc["date"], "doc %s", id)
		assert.Contains(t, doc, "thumbnail", "doc %s", id)
		assert.Contains(t, doc, "url", "doc %s", id)
	}

	assert.Equal(t, "20251216 152704", snap["a"]["date"])
	assert.Equal(t, "20230105 000000", snap["b"]["date"])
	assert.Equal(t, "https://img/x.jpg", snap["b"]["thumbnail"], "existing value kept")
	assert.Equal(t, "20250615 093000", snap["c"]["date"])
}

func TestRunBackfillOnlyDoesNotCountConversion(t *testing.T) {
	mem := seed(t, map[string]store.Document{
		"a": {"title": "x", "date": "20250101 000000"},
	})

	res, err := migration.NewRunner(mem, testCollection).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalChanged)
	assert.Equal(t, 0, res.DateConversions)

	snap, _ := mem.Snapshot(context.Background(), testCollection)
	assert.Equal(t, "20250101 000000", snap["a"]["date"])
	assert.Equal(t, "", snap["a"]["thumbnail"])
	assert.Equal(t, "", snap["a"]["url"])
}

func TestRunIsIdempotent(t *testing.T) {
	mem := seed(t, map[string]store.Document{
		"a": {"title": "x", "date": "2023년 1월 5일"},
		"b": {"title": "y"},
	})
	runner := migration.NewRunner(mem, testCollection)

	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	second, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.Result{}, second)
}

func TestRunEmptyCollection(t *testing.T) {
	runner := migration.NewRunner(store.NewMemory(), testCollection)
	res, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.Result{}, res)
}

// failingStore asserts call behavior around store errors.
type failingStore struct {
	snapshot map[string]store.Document
	snapErr  error
	applyErr error
	applied  bool
}

func (f *failingStore) Snapshot(context.Context, string) (map[string]store.Document, error) {
	return f.snapshot, f.snapErr
}

func (f *failingStore) ApplyAll(context.Context, string, map[string]store.Document) error {
	f.applied = true
	return f.applyErr
}

func TestRunPropagatesSnapshotError(t *testing.T) {
	boom := errors.New("store unreachable")
	runner := migration.NewRunner(&failingStore{snapErr: boom}, testCollection)

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRunPropagatesWriteError(t *testing.T) {
	boom := errors.New("write refused")
	fs := &failingStore{
		snapshot: map[string]store.Document{"a": {"title": "x"}},
		applyErr: boom,
	}

	_, err := migration.NewRunner(fs, testCollection).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, fs.applied)
}

func TestRunSkipsWriteWhenNothingStaged(t *testing.T) {
	fs := &failingStore{
		snapshot: map[string]store.Document{
			"a": {"title": "x", "date": "20250101 000000", "thumbnail": "", "url": ""},
		},
		applyErr: errors.New("must not be called"),
	}

	res, err := migration.NewRunner(fs, testCollection).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.Result{}, res)
	assert.False(t, fs.applied)
}

func TestComputeDoesNotWrite(t *testing.T) {
	mem := seed(t, map[string]store.Document{
		"a": {"title": "x", "date": "20230105"},
	})

	plan, err := migration.NewRunner(mem, testCollection).Compute(context.Background())
	require.NoError(t, err)
	assert.Len(t, plan.Staged, 1)
	assert.Equal(t, 1, plan.DateConversions)

	snap, _ := mem.Snapshot(context.Background(), testCollection)
	assert.Equal(t, "20230105", snap["a"]["date"], "dry computation leaves store untouched")
}
