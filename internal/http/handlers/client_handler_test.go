package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/contentgenius/go-content-backend/internal/domain"
	"github.com/contentgenius/go-content-backend/internal/repo"
	"github.com/contentgenius/go-content-backend/internal/services"
)

func TestCreateClient_Success(t *testing.T) {
	svc := &stubClientSvc{
		createFn: func(_ context.Context, in services.CreateClientInput) (*domain.Client, error) {
			if in.Name != "Ana" || in.SubscriptionPlan != "professional" {
				t.Fatalf("input not forwarded: %+v", in)
			}
			return &domain.Client{ID: "c1"}, nil
		},
	}
	r := newRouter(New(&stubRequestSvc{}, svc))

	w := doJSON(t, r, http.MethodPost, "/clients",
		`{"name":"Ana","email":"ana@example.com","subscription_plan":"professional"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp CreateClientResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ClientID != "c1" {
		t.Fatalf("response = %+v err=%v", resp, err)
	}
}

func TestCreateClient_InvalidJSON(t *testing.T) {
	r := newRouter(New(&stubRequestSvc{}, &stubClientSvc{}))
	w := doJSON(t, r, http.MethodPost, "/clients", `{`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCreateClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing name", services.MissingField("name"), http.StatusBadRequest, ErrCodeBadRequest},
		{"invalid plan", services.ErrInvalidPlan, http.StatusBadRequest, ErrCodeBadRequest},
		{"duplicate email", services.ErrDuplicateClient, http.StatusConflict, ErrCodeConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubClientSvc{
				createFn: func(context.Context, services.CreateClientInput) (*domain.Client, error) {
					return nil, tc.err
				},
			}
			r := newRouter(New(&stubRequestSvc{}, svc))
			w := doJSON(t, r, http.MethodPost, "/clients",
				`{"name":"Ana","email":"ana@example.com"}`, nil)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", w.Code, tc.wantStatus)
			}
			if e := decodeErr(t, w); e.Code != tc.wantCode {
				t.Fatalf("code = %q; want %q", e.Code, tc.wantCode)
			}
		})
	}
}

func TestListClients_Pagination(t *testing.T) {
	svc := &stubClientSvc{
		listFn: func(_ context.Context, page, pageSize int) ([]domain.Client, int64, error) {
			return []domain.Client{{ID: "c1"}, {ID: "c2"}}, 2, nil
		},
	}
	r := newRouter(New(&stubRequestSvc{}, svc))

	w := doJSON(t, r, http.MethodGet, "/clients", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ListClientsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Clients) != 2 || resp.Pagination.Total != 2 || resp.Pagination.HasNext {
		t.Fatalf("response = %+v", resp)
	}
}

func TestListClients_ETag(t *testing.T) {
	db, reqSvc := newHandlerDB(t)
	clientSvc := &services.ClientService{DB: db}
	r := newRouter(New(reqSvc, clientSvc))

	if _, err := repo.CreateClient(context.Background(), db, &domain.Client{
		Name:  "Ana",
		Email: "ana@example.com",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/clients", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"clients:1:`) {
		t.Fatalf("ETag = %q", etag)
	}

	w2 := doJSON(t, r, http.MethodGet, "/clients", "", map[string]string{"If-None-Match": etag})
	if w2.Code != http.StatusNotModified {
		t.Fatalf("matching If-None-Match: status = %d", w2.Code)
	}
}
