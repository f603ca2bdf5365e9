// Package services – RequestService
//
// This file implements RequestService, the application-level component that
// owns the content request lifecycle. It validates creation input, persists
// the request as pending, evaluates the generation gate, and invokes the
// generation client inline when the specification carries enough information
// to draft content.
//
// Containment: a generation failure never fails the creation call. The
// persisted pending row is the essential outcome; the AI draft is a
// best-effort enrichment applied in a follow-up write.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// request identifiers and pagination parameters where applicable.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/contentgenius/go-content-backend/internal/domain"
	"github.com/contentgenius/go-content-backend/internal/genai"
)

// Structured-spec defaults applied at creation time when the request arrives
// without a free-text brief.
const (
	defaultTone      = "professional"
	defaultWordCount = 500
)

// RequestRepo defines the repository contract required by RequestService.
type RequestRepo interface {
	// CreateRequest inserts a new request row, assigning ID and timestamps.
	CreateRequest(ctx context.Context, db *gorm.DB, r *domain.ContentRequest) (*domain.ContentRequest, error)

	// GetRequest fetches a request by ID.
	GetRequest(ctx context.Context, db *gorm.DB, id string) (*domain.ContentRequest, error)

	// CountRequests returns the total number of requests for pagination.
	CountRequests(ctx context.Context, db *gorm.DB) (int64, error)

	// ListRequestsPage returns a page of requests, newest first.
	ListRequestsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.ContentRequest, error)

	// UpdateRequestFields applies a partial update and returns the fresh row.
	UpdateRequestFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.ContentRequest, error)
}

// RequestService coordinates request persistence and inline AI drafting.
type RequestService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the request repository used by this service.
	Repo RequestRepo
	// Gen drafts content; nil disables generation entirely (gate never opens).
	Gen genai.Generator

	// SuccessStatus, when non-empty, pins the status applied after a
	// successful generation. When empty the status follows the input shape:
	// review for structured specs, in_progress for free-text briefs.
	SuccessStatus string
}

// NewRequestService constructs a RequestService bound to db, r, and gen.
func NewRequestService(db *gorm.DB, r RequestRepo, gen genai.Generator) *RequestService {
	return &RequestService{DB: db, Repo: r, Gen: gen}
}

// CreateRequestInput is the full creation payload accepted by Create.
// Requester identity and content type are required; everything else is an
// optional part of the content specification.
type CreateRequestInput struct {
	ClientName  string
	ClientEmail string
	Company     *string

	ContentType    string
	Title          *string
	Description    *string
	Message        *string
	Keywords       *string
	Tone           *string
	TargetAudience *string
	WordCount      *int
}

// Create validates the input, persists a pending request, and, when the
// generation gate opens, drafts content inline. The returned record
// reflects the final persisted state: pending when generation was skipped or
// failed, otherwise the success status with the draft attached.
//
// Generation failures are logged and swallowed; only validation and
// persistence errors propagate to the caller.
func (s *RequestService) Create(ctx context.Context, in CreateRequestInput) (*domain.ContentRequest, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("content.type", in.ContentType)),
	)
	defer span.End()

	if err := in.validate(); err != nil {
		return nil, err
	}

	req := &domain.ContentRequest{
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientEmail:    strings.TrimSpace(in.ClientEmail),
		Company:        in.Company,
		ContentType:    strings.TrimSpace(in.ContentType),
		Title:          in.Title,
		Description:    in.Description,
		Message:        in.Message,
		Keywords:       in.Keywords,
		Tone:           in.Tone,
		TargetAudience: in.TargetAudience,
		WordCount:      in.WordCount,
		Status:         domain.StatusPending,
	}
	if !req.HasMessage() {
		if req.Tone == nil {
			req.Tone = ptr(defaultTone)
		}
		if req.WordCount == nil {
			req.WordCount = ptr(defaultWordCount)
		}
	}

	created, err := s.Repo.CreateRequest(ctx, s.DB, req)
	if err != nil {
		return nil, err
	}

	spec, target, open := s.gate(created)
	if !open || s.Gen == nil {
		return created, nil
	}

	text, genErr := s.Gen.Generate(ctx, spec)
	if genErr != nil {
		// Containment: the pending row stands; creation still succeeds.
		log.Warn().Err(genErr).Str("request_id", created.ID).Msg("content generation skipped")
		return created, nil
	}

	updated, err := s.Repo.UpdateRequestFields(ctx, s.DB, created.ID, map[string]any{
		"ai_generated_content": text,
		"status":               target,
	})
	if err != nil {
		// Same containment for the enrichment write: the pending row stands.
		log.Error().Err(err).Str("request_id", created.ID).Msg("failed to store generated content")
		return created, nil
	}
	return updated, nil
}

// Get returns the full request record, or ErrRequestNotFound.
func (s *RequestService) Get(ctx context.Context, id string) (*domain.ContentRequest, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("request.id", id)),
	)
	defer span.End()

	req, err := s.Repo.GetRequest(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListPage returns a page of requests ordered newest-created first, applying
// defaults for invalid page/pageSize, along with the total count.
func (s *RequestService) ListPage(ctx context.Context, page, pageSize int) ([]domain.ContentRequest, int64, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize)),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountRequests(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.ContentRequest{}, 0, nil
	}

	items, err := s.Repo.ListRequestsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// UpdateStatus moves a request to status and, when finalContent is non-nil,
// stores the reviewed text verbatim. Any status in the allowed set may follow
// any other; the lifecycle deliberately imposes no transition graph.
func (s *RequestService) UpdateStatus(ctx context.Context, id, status string, finalContent *string) (*domain.ContentRequest, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "UpdateStatus",
		trace.WithAttributes(
			attribute.String("request.id", id),
			attribute.String("status", status),
		),
	)
	defer span.End()

	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	fields := map[string]any{"status": status}
	if finalContent != nil {
		fields["final_content"] = *finalContent
	}

	updated, err := s.Repo.UpdateRequestFields(ctx, s.DB, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return updated, nil
}

// GeneratePreview drafts content without persisting a request. Unlike Create,
// provider failures propagate to the caller (there is no record to absorb
// them); match genai.ErrUnavailable to distinguish them from bad input.
func (s *RequestService) GeneratePreview(ctx context.Context, spec genai.Spec) (string, error) {
	tr := otel.Tracer("services/RequestService")
	ctx, span := tr.Start(ctx, "GeneratePreview",
		trace.WithAttributes(attribute.String("content.type", spec.ContentType)),
	)
	defer span.End()

	if strings.TrimSpace(spec.ContentType) == "" {
		return "", MissingField("content_type")
	}
	if strings.TrimSpace(spec.Message) == "" {
		if strings.TrimSpace(spec.Title) == "" {
			return "", MissingField("title")
		}
		if strings.TrimSpace(spec.Description) == "" {
			return "", MissingField("description")
		}
	}
	if s.Gen == nil {
		return "", genai.ErrUnavailable
	}
	return s.Gen.Generate(ctx, spec)
}

// gate evaluates the generation gate for a freshly created request. A
// free-text brief always generates and lands in in_progress on success; a
// structured spec generates only when both title and description are present
// and lands in review. Anything else stays pending.
func (s *RequestService) gate(req *domain.ContentRequest) (spec genai.Spec, target string, open bool) {
	switch {
	case req.HasMessage():
		target = domain.StatusInProgress
	case req.HasStructuredSpec():
		target = domain.StatusReview
	default:
		return genai.Spec{}, "", false
	}
	if s.SuccessStatus != "" {
		target = s.SuccessStatus
	}

	spec = genai.Spec{
		ContentType:    req.ContentType,
		Title:          strval(req.Title),
		Description:    strval(req.Description),
		Message:        strval(req.Message),
		Keywords:       strval(req.Keywords),
		Tone:           strval(req.Tone),
		TargetAudience: strval(req.TargetAudience),
		WordCount:      intval(req.WordCount),
	}
	return spec, target, true
}

// validate checks the required requester fields and content type, reporting
// the first missing field.
func (in CreateRequestInput) validate() error {
	if strings.TrimSpace(in.ClientName) == "" {
		return MissingField("client_name")
	}
	if strings.TrimSpace(in.ClientEmail) == "" {
		return MissingField("client_email")
	}
	if strings.TrimSpace(in.ContentType) == "" {
		return MissingField("content_type")
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func strval(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intval(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
