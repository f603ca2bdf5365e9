// Standalone generation HTTP handler.
//
// This file exposes the preview endpoint:
//   - POST /generate-content
//
// Unlike request creation, this path persists nothing and therefore surfaces
// provider failures to the caller instead of containing them.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentgenius/go-content-backend/internal/genai"
)

// GeneratePayload is the JSON body for standalone content generation.
// content_type plus either a free-text message or a title/description pair
// is required.
type GeneratePayload struct {
	ContentType    string `json:"content_type" example:"blog_post"`
	Title          string `json:"title,omitempty" example:"Ten SEO myths"`
	Description    string `json:"description,omitempty" example:"Debunk the most common SEO myths"`
	Message        string `json:"message,omitempty"`
	Keywords       string `json:"keywords,omitempty" example:"seo, search"`
	Tone           string `json:"tone,omitempty" example:"professional"`
	TargetAudience string `json:"target_audience,omitempty" example:"small business owners"`
	WordCount      int    `json:"word_count,omitempty" example:"800"`
}

// GenerateResponse carries the generated draft.
type GenerateResponse struct {
	GeneratedContent string `json:"generated_content"`
	Status           string `json:"status" example:"success"`
}

// GenerateContent godoc
// @ID          generateContent
// @Summary     Generate content without persisting a request
// @Description Drafts content from the supplied specification. Intended for previews and testing; provider failures are returned to the caller.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GeneratePayload  true  "Content specification"
//
// @Success     200  {object} handlers.GenerateResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing required field"
// @Failure     500  {object} handlers.ErrorResponse "Generation failed"
// @Router      /generate-content [post]
func (h *Handlers) GenerateContent(c *gin.Context) {
	var req GeneratePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	text, err := h.reqSvc.GeneratePreview(c.Request.Context(), genai.Spec{
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
		failFor(c, err, ErrCodeGenerationFailed)
		return
	}

	ok(c, http.StatusOK, GenerateResponse{
		GeneratedContent: text,
		Status:           "success",
	})
}
