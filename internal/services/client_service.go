// Package services – ClientService
//
// This file implements the ClientService, which manages client registration
// and listing. Email uniqueness is enforced by the database index; the
// resulting constraint violation is mapped to ErrDuplicateClient so that two
// concurrent registrations of the same address resolve deterministically:
// one wins, the other fails.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/contentgenius/go-content-backend/internal/domain"
	"github.com/contentgenius/go-content-backend/internal/repo"
)

// ClientService provides client-level operations. It validates input and
// coordinates repository operations for registration and listing.
type ClientService struct {
	// DB is the database handle used for all client operations.
	DB *gorm.DB
}

// CreateClientInput is the registration payload accepted by Create.
type CreateClientInput struct {
	Name             string
	Email            string
	Company          *string
	Phone            *string
	SubscriptionPlan string
	BrandVoice       *string
}

// Create registers a new client. The subscription plan defaults to starter
// when unspecified. Email addresses are stored as given, with no case
// normalization.
//
// Errors:
//   - *ValidationError when name or email is missing.
//   - ErrInvalidPlan when the plan is outside the allowed set.
//   - ErrDuplicateClient when the email is already registered.
func (s *ClientService) Create(ctx context.Context, in CreateClientInput) (*domain.Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, MissingField("name")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, MissingField("email")
	}
	plan := in.SubscriptionPlan
	if plan == "" {
		plan = domain.PlanStarter
	}
	if !domain.ValidPlan(plan) {
		return nil, ErrInvalidPlan
	}

	c := &domain.Client{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Company:          in.Company,
		Phone:            in.Phone,
		SubscriptionPlan: plan,
		BrandVoice:       in.BrandVoice,
	}
	created, err := repo.CreateClient(ctx, s.DB, c)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateClient
		}
		return nil, err
	}
	return created, nil
}

// ListPage returns a page of clients ordered newest-created first, applying
// defaults for invalid page/pageSize, along with the total count.
func (s *ClientService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Client, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountClients(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Client{}, 0, nil
	}

	items, err := repo.ListClientsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}
