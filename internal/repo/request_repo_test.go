package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contentgenius/go-content-backend/internal/domain"
)

// newTestDB opens a per-test in-memory database with the full schema applied.
// The shared-cache DSN keeps the database alive across the pooled connections
// GORM opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func TestCreateRequest_AssignsDefaults(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := CreateRequest(ctx, db, &domain.ContentRequest{
		ClientName:  "Ana Martins",
		ClientEmail: "ana@example.com",
		ContentType: "blog_post",
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("ID %q is not a UUID: %v", created.ID, err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status = %q; want pending", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("created_at not assigned")
	}

	// An explicit status survives the default.
	r2, err := CreateRequest(ctx, db, &domain.ContentRequest{
		ClientName:  "Ana Martins",
		ClientEmail: "ana@example.com",
		ContentType: "blog_post",
		Status:      domain.StatusReview,
	})
	if err != nil {
		t.Fatalf("CreateRequest explicit status: %v", err)
	}
	if r2.Status != domain.StatusReview {
		t.Fatalf("status = %q; want review", r2.Status)
	}
}

func TestGetRequest(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := CreateRequest(ctx, db, &domain.ContentRequest{
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		ContentType: "newsletter",
		Title:       strptr("October issue"),
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	got, err := GetRequest(ctx, db, created.ID)
	if err != nil {
		t.Fatalf("GetRequest: %v", err)
	}
	if got.ContentType != "newsletter" || got.Title == nil || *got.Title != "October issue" {
		t.Fatalf("readback mismatch: %+v", got)
	}

	if _, err := GetRequest(ctx, db, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: expected ErrNotFound, got %v", err)
	}
}

func TestListRequestsPage_OrderingAndCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		r, err := CreateRequest(ctx, db, &domain.ContentRequest{
			ClientName:  fmt.Sprintf("Client %d", i),
			ClientEmail: fmt.Sprintf("c%d@example.com", i),
			ContentType: "blog_post",
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		// Pin created_at so ordering is deterministic.
		if err := db.Model(&domain.ContentRequest{}).
			Where("id = ?", r.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("pin created_at: %v", err)
		}
		ids = append(ids, r.ID)
	}

	total, err := CountRequests(ctx, db)
	if err != nil || total != 3 {
		t.Fatalf("CountRequests = %d, %v", total, err)
	}

	page, err := ListRequestsPage(ctx, db, 0, 2)
	if err != nil {
		t.Fatalf("ListRequestsPage: %v", err)
	}
	if len(page) != 2 || page[0].ID != ids[2] || page[1].ID != ids[1] {
		t.Fatalf("page 1 not newest-first: %+v", page)
	}

	page2, err := ListRequestsPage(ctx, db, 2, 2)
	if err != nil {
		t.Fatalf("ListRequestsPage p2: %v", err)
	}
	if len(page2) != 1 || page2[0].ID != ids[0] {
		t.Fatalf("page 2 mismatch: %+v", page2)
	}

	all, err := ListRequests(ctx, db)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListRequests = %d items, %v", len(all), err)
	}
}

func TestUpdateRequestFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := CreateRequest(ctx, db, &domain.ContentRequest{
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		ContentType: "blog_post",
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	updated, err := UpdateRequestFields(ctx, db, created.ID, map[string]any{
		"status":               domain.StatusReview,
		"ai_generated_content": "draft text",
	})
	if err != nil {
		t.Fatalf("UpdateRequestFields: %v", err)
	}
	if updated.Status != domain.StatusReview {
		t.Fatalf("status = %q; want review", updated.Status)
	}
	if updated.AIGeneratedContent == nil || *updated.AIGeneratedContent != "draft text" {
		t.Fatalf("draft not stored: %+v", updated.AIGeneratedContent)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	if _, err := UpdateRequestFields(ctx, db, uuid.NewString(), map[string]any{"status": domain.StatusDelivered}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: expected ErrNotFound, got %v", err)
	}
}
