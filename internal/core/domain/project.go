package domain

import "time"

// ProjectStatus represents the delivery state of a client project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectReview     ProjectStatus = "Review"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

// Document is a deliverable attached to a project (contract, report, build).
type Document struct {
	ID         string    `json:"_id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	URL        string    `json:"url" bson:"url"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploaded_at"`
}

// Project is a piece of work showcased on the marketing site and, when owned,
// tracked by the owning client through the portal. An empty ClientID means the
// project is public showcase material.
type Project struct {
	ID           string        `json:"_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"imageUrl"`
	Technologies []string      `json:"technologies"`
	Status       ProjectStatus `json:"status"`
	Progress     int           `json:"progress"`
	StartDate    time.Time     `json:"startDate,omitempty"`
	EndDate      time.Time     `json:"endDate,omitempty"`
	ClientID     string        `json:"clientId,omitempty"`
	Documents    []Document    `json:"documents"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// OwnedBy reports whether the project belongs to the given account.
func (p *Project) OwnedBy(accountID string) bool {
	return p.ClientID != "" && p.ClientID == accountID
}

// Public reports whether the project has no owner and is visible to everyone.
func (p *Project) Public() bool {
	return p.ClientID == ""
}
