package repo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestIdempotency_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rec, err := CreateIdempotency(ctx, db, "key-1", "req-1", http.StatusCreated, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.ExpiresAt.Sub(rec.CreatedAt) != time.Hour {
		t.Fatalf("record not populated: %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, "key-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.RequestID != "req-1" || got.Status != http.StatusCreated {
		t.Fatalf("readback mismatch: %+v", got)
	}
}

func TestIdempotency_MissingAndBlankKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := GetIdempotency(ctx, db, "nope", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown key: expected ErrNotFound, got %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "   ", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank key: expected ErrNotFound, got %v", err)
	}
}

func TestIdempotency_ExpiredIsInvisible(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "stale", "req-1", http.StatusCreated, -time.Minute); err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "stale", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired record: expected ErrNotFound, got %v", err)
	}
}

func TestIdempotency_DuplicateKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "once", "req-1", http.StatusCreated, time.Hour); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateIdempotency(ctx, db, "once", "req-2", http.StatusCreated, time.Hour)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
