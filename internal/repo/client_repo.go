// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Client model.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentgenius/go-content-backend/internal/domain"
)

// ErrDuplicateEmail indicates that a client with the given email address is
// already registered. Uniqueness is enforced by the DB index on clients.email,
// so concurrent registrations race safely: exactly one insert wins.
var ErrDuplicateEmail = errors.New("client email already registered")

// CreateClient inserts a new Client row. ID and CreatedAt are assigned here;
// the subscription plan defaults to starter when unset. A unique-constraint
// violation on email is mapped to ErrDuplicateEmail.
func CreateClient(ctx context.Context, db *gorm.DB, c *domain.Client) (*domain.Client, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if c.SubscriptionPlan == "" {
		c.SubscriptionPlan = domain.PlanStarter
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

// ListClients returns all clients ordered by creation time descending.
func ListClients(ctx context.Context, db *gorm.DB) ([]domain.Client, error) {
	var out []domain.Client
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountClients returns the total number of registered clients.
func CountClients(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Client{}).
		Count(&total).Error
	return total, err
}

// ListClientsPage returns a paginated slice of clients ordered by creation
// time descending.
func ListClientsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Client, error) {
	var out []domain.Client
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// isUniqueViolation detects unique-constraint violations across drivers that
// may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
