// Content request HTTP handlers.
//
// This file exposes REST endpoints for the content request resource:
//   - POST /content-requests       (create, with inline AI drafting)
//   - GET  /content-requests       (list, paginated, ETag support)
//   - GET  /content-requests/{id}  (fetch one)
//   - PUT  /content-requests/{id}  (status / final content update)
//
// Handlers are transport-thin: they validate input shape, call application
// services, and translate results into HTTP responses.
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// creation is recorded for that key, the handler replays the original
// {request_id, status} result and sets `Idempotency-Replayed: true` without
// creating a new request or re-running generation.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentgenius/go-content-backend/internal/domain"
	"github.com/contentgenius/go-content-backend/internal/genai"
	"github.com/contentgenius/go-content-backend/internal/http/middleware"
	"github.com/contentgenius/go-content-backend/internal/repo"
	"github.com/contentgenius/go-content-backend/internal/services"
	"github.com/contentgenius/go-content-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// RequestService defines content request lifecycle operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RequestService interface {
	// Create persists a request and drafts content when the gate opens.
	Create(ctx context.Context, in services.CreateRequestInput) (*domain.ContentRequest, error)
	// Get returns the full request record.
	Get(ctx context.Context, id string) (*domain.ContentRequest, error)
	// ListPage returns a page of requests and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.ContentRequest, int64, error)
	// UpdateStatus applies a status (and optional final content) update.
	UpdateStatus(ctx context.Context, id, status string, finalContent *string) (*domain.ContentRequest, error)
	// GeneratePreview drafts content without persisting a request.
	GeneratePreview(ctx context.Context, spec genai.Spec) (string, error)
}

// ClientService defines client registration operations consumed by HTTP
// handlers.
type ClientService interface {
	// Create registers a new client.
	Create(ctx context.Context, in services.CreateClientInput) (*domain.Client, error)
	// ListPage returns a page of clients and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Client, int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for content requests, clients, and
// standalone generation. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	reqSvc    RequestService
	clientSvc ClientService

	// IdempotencyTTL bounds how long a creation result can be replayed.
	IdempotencyTTL time.Duration
}

// New constructs a Handlers instance bound to the given services.
func New(reqSvc RequestService, clientSvc ClientService) *Handlers {
	return &Handlers{
		reqSvc:         reqSvc,
		clientSvc:      clientSvc,
		IdempotencyTTL: 24 * time.Hour,
	}
}

// middlewareGetIdempotencyKey is a seam for tests.
var middlewareGetIdempotencyKey = middleware.GetIdempotencyKey

// serviceDB exposes the underlying GORM handle when the service is the
// concrete implementation; used for ETag stats and idempotency records.
func (h *Handlers) serviceDB() *gorm.DB {
	if svc, ok := h.reqSvc.(*services.RequestService); ok {
		return svc.DB
	}
	return nil
}

//
// DTOs
//

// CreateRequestPayload is the JSON body for creating a content request.
// client_name, client_email, and content_type are required; the content
// specification may be structured (title, description, …) or a single
// free-text message.
type CreateRequestPayload struct {
	ClientName  string  `json:"client_name"  example:"Ana Martins"`
	ClientEmail string  `json:"client_email" example:"ana@example.com"`
	Company     *string `json:"company,omitempty" example:"Acme Ltd"`

	ContentType    string  `json:"content_type" example:"blog_post"`
	Title          *string `json:"title,omitempty" example:"Ten SEO myths"`
	Description    *string `json:"description,omitempty" example:"Debunk the most common SEO myths for small businesses"`
	Message        *string `json:"message,omitempty" example:"Write a launch announcement for our new app"`
	Keywords       *string `json:"keywords,omitempty" example:"seo, search, ranking"`
	Tone           *string `json:"tone,omitempty" example:"professional"`
	TargetAudience *string `json:"target_audience,omitempty" example:"small business owners"`
	WordCount      *int    `json:"word_count,omitempty" example:"800"`
}

// CreateRequestResponse acknowledges a created request.
type CreateRequestResponse struct {
	Message   string `json:"message" example:"content request created successfully"`
	RequestID string `json:"request_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Status    string `json:"status" example:"pending"`
}

// UpdateRequestPayload is the JSON body for updating a request's status and,
// optionally, its reviewed final content.
type UpdateRequestPayload struct {
	Status       string  `json:"status" example:"completed"`
	FinalContent *string `json:"final_content,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRequestsResponse wraps a page of requests and pagination information.
type ListRequestsResponse struct {
	Requests   []domain.ContentRequest `json:"requests"`
	Pagination Pagination              `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// failFor maps service-layer errors onto the HTTP error envelope.
func failFor(c *gin.Context, err error, fallbackCode string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, ve.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"status must be one of: pending, in_progress, review, completed, delivered")
	case errors.Is(err, services.ErrInvalidPlan):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"subscription_plan must be one of: starter, professional, enterprise")
	case errors.Is(err, services.ErrRequestNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "content request not found")
	case errors.Is(err, services.ErrDuplicateClient):
		fail(c, http.StatusConflict, ErrCodeConflict, "client with this email already exists")
	case errors.Is(err, genai.ErrUnavailable):
		fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, "failed to generate content")
	default:
		fail(c, http.StatusInternalServerError, fallbackCode, err.Error())
	}
}

//
// Handlers
//

// CreateRequest godoc
// @ID          createContentRequest
// @Summary     Submit a content request
// @Description Persists the request and, when the specification is complete enough, drafts content inline. Generation failures never fail the creation.
// @Tags        ContentRequests
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.CreateRequestPayload  true  "Creation payload"
//
// @Success     201  {object}  handlers.CreateRequestResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required field"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /content-requests [post]
func (h *Handlers) CreateRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middlewareGetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.serviceDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetRequest(ctx, db, rec.RequestID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, rec.Status, CreateRequestResponse{
						Message:   "content request created successfully",
						RequestID: prev.ID,
						Status:    prev.Status,
					})
					return
				}
			}
		}
	}

	created, err := h.reqSvc.Create(ctx, services.CreateRequestInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		Company:        req.Company,
		ContentType:    req.ContentType,
		Title:          req.Title,
		Description:    req.Description,
		Message:        req.Message,
		Keywords:       req.Keywords,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
		WordCount:      req.WordCount,
	})
	if err != nil {
		failFor(c, err, ErrCodeCreateFailed)
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.serviceDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, idemKey, created.ID, http.StatusCreated, h.IdempotencyTTL)
		}
	}

	ok(c, http.StatusCreated, CreateRequestResponse{
		Message:   "content request created successfully",
		RequestID: created.ID,
		Status:    created.Status,
	})
}

// ListRequests godoc
// @ID          listContentRequests
// @Summary     List content requests (paginated)
// @Description Returns a page of requests, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        ContentRequests
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListRequestsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /content-requests [get]
func (h *Handlers) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.serviceDB(); db != nil {
		count, maxTS, err := repo.RequestsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"requests:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.reqSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRequestsResponse{
		Requests: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetRequest godoc
// @ID          getContentRequest
// @Summary     Fetch a content request
// @Description Returns the full record, including AI-generated and final content when present.
// @Tags        ContentRequests
// @Produce     json
//
// @Param       id  path  string  true  "Request ID (UUID)"  format(uuid) example(141add05-4415-4938-b5a1-17e0d3171aff)
//
// @Success     200  {object} domain.ContentRequest
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Request not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /content-requests/{id} [get]
func (h *Handlers) GetRequest(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request id must be a UUID")
		return
	}

	req, err := h.reqSvc.Get(c.Request.Context(), id)
	if err != nil {
		failFor(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, req)
}

// UpdateRequest godoc
// @ID          updateContentRequest
// @Summary     Update request status
// @Description Moves the request to the given status and optionally stores reviewed final content. Any allowed status may follow any other.
// @Tags        ContentRequests
// @Accept      json
// @Produce     json
//
// @Param       id    path  string  true  "Request ID (UUID)"  format(uuid) example(141add05-4415-4938-b5a1-17e0d3171aff)
// @Param       body  body  handlers.UpdateRequestPayload  true  "Status update payload"
//
// @Success     200  {object} domain.ContentRequest
// @Failure     400  {object} handlers.ErrorResponse "Invalid status"
// @Failure     404  {object} handlers.ErrorResponse "Request not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /content-requests/{id} [put]
func (h *Handlers) UpdateRequest(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request id must be a UUID")
		return
	}

	var req UpdateRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.reqSvc.UpdateStatus(c.Request.Context(), id, req.Status, req.FinalContent)
	if err != nil {
		failFor(c, err, ErrCodeUpdateFailed)
		return
	}
	ok(c, http.StatusOK, updated)
}
