package domain

import "time"

// Subscription plans a client may hold.
const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// ValidPlan reports whether p is a recognized subscription plan.
func ValidPlan(p string) bool {
	switch p {
	case PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// Client represents a registered customer of the content service. Email is
// globally unique; attempting to register a duplicate fails without mutating
// any record.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email: unique across all clients (DB unique index).
//   - SubscriptionPlan: starter, professional, or enterprise.
//   - BrandVoice: optional free text passed as generation context.
//   - CreatedAt: immutable creation timestamp.
type Client struct {
	ID               string    `json:"id"                gorm:"type:char(36);primaryKey"`
	Name             string    `json:"name"              gorm:"type:varchar(100);not null"`
	Email            string    `json:"email"             gorm:"type:varchar(120);not null;uniqueIndex:ux_clients_email"`
	Company          *string   `json:"company"           gorm:"type:varchar(100)"`
	Phone            *string   `json:"phone"             gorm:"type:varchar(20)"`
	SubscriptionPlan string    `json:"subscription_plan" gorm:"type:varchar(20);not null;default:'starter';check:subscription_plan IN ('starter','professional','enterprise')"`
	BrandVoice       *string   `json:"brand_voice"       gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName returns the database table name for Client.
func (Client) TableName() string { return "clients" }
