package handler

import "time"

type documentRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url"   validate:"required,url"`
}

type projectRequest struct {
	Title        string            `json:"title"        validate:"required"`
	Description  string            `json:"description"  validate:"required"`
	ImageURL     string            `json:"imageUrl"     validate:"omitempty,url"`
	Technologies []string          `json:"technologies"`
	Status       string            `json:"status"       validate:"omitempty,oneof=Planning 'In Progress' Review Completed 'On Hold'"`
	Progress     int               `json:"progress"     validate:"gte=0,lte=100"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
	ClientID     string            `json:"clientId"`
	Documents    []documentRequest `json:"documents"`
}
