// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ContentRequest model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a request is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentgenius/go-content-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateRequest inserts a new ContentRequest row. The caller populates all
// specification fields; ID and CreatedAt are assigned here, and the status
// defaults to pending when unset.
func CreateRequest(ctx context.Context, db *gorm.DB, r *domain.ContentRequest) (*domain.ContentRequest, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if r.Status == "" {
		r.Status = domain.StatusPending
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetRequest fetches a single request by ID, or ErrNotFound if missing.
func GetRequest(ctx context.Context, db *gorm.DB, id string) (*domain.ContentRequest, error) {
	var r domain.ContentRequest
	if err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRequests returns all content requests ordered by creation time
// descending (most recent first).
func ListRequests(ctx context.Context, db *gorm.DB) ([]domain.ContentRequest, error) {
	var out []domain.ContentRequest
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountRequests returns the total number of content requests.
func CountRequests(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ContentRequest{}).
		Count(&total).Error
	return total, err
}

// ListRequestsPage returns a paginated slice of requests ordered by creation
// time descending. Use CountRequests to obtain the total for pagination
// metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListRequestsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.ContentRequest, error) {
	var out []domain.ContentRequest
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateRequestFields applies a partial column update to the request
// identified by id and returns the refreshed record. GORM bumps updated_at as
// a side effect of the update. Returns ErrNotFound when no row matches.
func UpdateRequestFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.ContentRequest, error) {
	res := db.WithContext(ctx).
		Model(&domain.ContentRequest{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetRequest(ctx, db, id)
}
