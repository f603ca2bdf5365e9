// Package domain defines the persistence models for content requests and
// clients. These types are mapped with GORM and form the core data layer
// of the content intake application.
package domain

import "time"

// ContentRequest lifecycle statuses. A request is created as pending and may
// move through any of these values; no transition ordering is enforced
// beyond set membership.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
)

// RequestStatuses lists the allowed ContentRequest statuses in lifecycle order.
var RequestStatuses = []string{
	StatusPending, StatusInProgress, StatusReview, StatusCompleted, StatusDelivered,
}

// ValidStatus reports whether s is a member of the allowed status set.
func ValidStatus(s string) bool {
	for _, v := range RequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ContentRequest represents a client's request for a piece of written content.
// The content specification carries either discrete attributes (title,
// description, keywords, …) or a single free-text message; the two styles may
// also be mixed. Optional columns are pointers so that unset values serialize
// as explicit JSON null.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - ClientName / ClientEmail: requester identity, required at creation.
//   - ContentType: kind of deliverable (e.g. "blog_post"), required.
//   - AIGeneratedContent: draft produced by the generation client; written
//     only by the service layer, never by an inbound API payload.
//   - FinalContent: human-reviewed text, set via the update endpoint.
//   - Status: one of RequestStatuses (enforced by DB constraint).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type ContentRequest struct {
	ID          string  `json:"id"           gorm:"type:char(36);primaryKey"`
	ClientName  string  `json:"client_name"  gorm:"type:varchar(100);not null"`
	ClientEmail string  `json:"client_email" gorm:"type:varchar(120);not null;index"`
	Company     *string `json:"company"      gorm:"type:varchar(100)"`

	ContentType    string  `json:"content_type"    gorm:"type:varchar(50);not null"`
	Title          *string `json:"title"           gorm:"type:varchar(200)"`
	Description    *string `json:"description"     gorm:"type:text"`
	Message        *string `json:"message"         gorm:"type:text"`
	Keywords       *string `json:"keywords"        gorm:"type:varchar(500)"`
	Tone           *string `json:"tone"            gorm:"type:varchar(50)"`
	TargetAudience *string `json:"target_audience" gorm:"type:varchar(200)"`
	WordCount      *int    `json:"word_count"`

	Status             string  `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','in_progress','review','completed','delivered');index"`
	AIGeneratedContent *string `json:"ai_generated_content" gorm:"type:text"`
	FinalContent       *string `json:"final_content"        gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for ContentRequest.
func (ContentRequest) TableName() string { return "content_requests" }

// HasStructuredSpec reports whether the request carries enough discrete
// attributes (title and description) to drive generation.
func (r *ContentRequest) HasStructuredSpec() bool {
	return deref(r.Title) != "" && deref(r.Description) != ""
}

// HasMessage reports whether the request carries a free-text brief.
func (r *ContentRequest) HasMessage() bool { return deref(r.Message) != "" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
