// Client HTTP handlers.
//
// This file exposes REST endpoints for the client resource:
//   - POST /clients  (register)
//   - GET  /clients  (list, paginated, ETag support)
//
// Email uniqueness is enforced at the persistence layer; two concurrent
// registrations of the same address resolve to one 201 and one 409.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentgenius/go-content-backend/internal/domain"
	"github.com/contentgenius/go-content-backend/internal/repo"
	"github.com/contentgenius/go-content-backend/internal/services"
)

// CreateClientPayload is the JSON body for registering a client.
type CreateClientPayload struct {
	Name             string  `json:"name" example:"Ana Martins"`
	Email            string  `json:"email" example:"ana@example.com"`
	Company          *string `json:"company,omitempty" example:"Acme Ltd"`
	Phone            *string `json:"phone,omitempty" example:"+44 20 7946 0958"`
	SubscriptionPlan string  `json:"subscription_plan" example:"professional"`
	BrandVoice       *string `json:"brand_voice,omitempty" example:"friendly, concise, no jargon"`
}

// CreateClientResponse acknowledges a registered client.
type CreateClientResponse struct {
	Message  string `json:"message" example:"client created successfully"`
	ClientID string `json:"client_id" example:"fa4dfbe0-c3bf-47bd-b32f-d7de221cf43b"`
}

// ListClientsResponse wraps a page of clients and pagination information.
type ListClientsResponse struct {
	Clients    []domain.Client `json:"clients"`
	Pagination Pagination      `json:"pagination"`
}

// CreateClient godoc
// @ID          createClient
// @Summary     Register a client
// @Description Registers a new client. The email address must not be in use; the plan defaults to starter.
// @Tags        Clients
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateClientPayload  true  "Registration payload"
//
// @Success     201  {object} handlers.CreateClientResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing field / invalid plan"
// @Failure     409  {object} handlers.ErrorResponse "Email already registered"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /clients [post]
func (h *Handlers) CreateClient(c *gin.Context) {
	var req CreateClientPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	created, err := h.clientSvc.Create(c.Request.Context(), services.CreateClientInput{
		Name:             req.Name,
		Email:            req.Email,
		Company:          req.Company,
		Phone:            req.Phone,
		SubscriptionPlan: req.SubscriptionPlan,
		BrandVoice:       req.BrandVoice,
	})
	if err != nil {
		failFor(c, err, ErrCodeCreateFailed)
		return
	}

	ok(c, http.StatusCreated, CreateClientResponse{
		Message:  "client created successfully",
		ClientID: created.ID,
	})
}

// ListClients godoc
// @ID          listClients
// @Summary     List clients (paginated)
// @Description Returns a page of clients, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Clients
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListClientsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /clients [get]
func (h *Handlers) ListClients(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.serviceDB(); db != nil {
		count, maxTS, err := repo.ClientsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"clients:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.clientSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListClientsResponse{
		Clients: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
