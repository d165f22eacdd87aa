package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestRepo(t *testing.T) HistoryRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"), nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { Close(db, nil) })
	return NewHistoryRepository(db, nil)
}

func TestHistorySaveAndList(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	entries := []ExtractionEntry{
		{Source: SourceUpload, PONumber: "PO1", LineCount: 3, RecordJSON: []byte(`{"poNumber":"PO1"}`), CreatedAt: base},
		{Source: SourceDemo, PONumber: "DEMO-PO-2025", LineCount: 2, RecordJSON: []byte(`{"poNumber":"DEMO-PO-2025"}`), CreatedAt: base.Add(time.Minute)},
		{Source: SourceUpload, PONumber: "PO3", LineCount: 1, RecordJSON: []byte(`{"poNumber":"PO3"}`), CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save(%s): %v", e.PONumber, err)
		}
	}

	got, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent(): %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	// Most recent first.
	if got[0].PONumber != "PO3" || got[2].PONumber != "PO1" {
		t.Errorf("order = %s, %s, %s", got[0].PONumber, got[1].PONumber, got[2].PONumber)
	}
	if got[0].ID == uuid.Nil {
		t.Error("saved entry should get an id")
	}
	if got[1].Source != SourceDemo || got[1].LineCount != 2 {
		t.Errorf("entry = %+v", got[1])
	}
	if string(got[2].RecordJSON) != `{"poNumber":"PO1"}` {
		t.Errorf("record json = %s", got[2].RecordJSON)
	}
}

func TestHistoryListLimit(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		e := ExtractionEntry{
			Source:     SourceUpload,
			PONumber:   "PO",
			RecordJSON: []byte(`{}`),
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save(): %v", err)
		}
	}

	got, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent(): %v", err)
	}
	if len(got) != 2 {
		t.Errorf("entries = %d, want 2", len(got))
	}
}

func TestHistoryListEmpty(t *testing.T) {
	repo := openTestRepo(t)
	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent(): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("entries = %d, want 0", len(got))
	}
}
