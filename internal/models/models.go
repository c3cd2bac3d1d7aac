// Package models declares the shapes returned by the Nevent REST API.
// These are pass-through DTOs: the adapter never constructs or validates
// them, the remote server owns all invariants. They exist so handlers and
// tests can speak about response shapes with names instead of raw maps.
package models

import "time"

// Page is the generic pagination envelope the Nevent API wraps list
// responses in. Consumed, never constructed, by this adapter.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Size          int  `json:"size"`
	Number        int  `json:"number"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}

// User is a CRM contact.
type User struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	Name       string         `json:"name,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	PropertyID string         `json:"propertyId,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt,omitempty"`
	UpdatedAt  time.Time      `json:"updatedAt,omitempty"`
}

// CommunicationPreferences holds a user's channel opt-ins.
type CommunicationPreferences struct {
	Email    bool `json:"email"`
	Push     bool `json:"push"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// Purchase is one ticket or product purchase on a user's history.
type Purchase struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId,omitempty"`
	EventName  string    `json:"eventName,omitempty"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency,omitempty"`
	PurchaseAt time.Time `json:"purchaseAt,omitempty"`
}

// Property is a venue or brand scope users belong to.
type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Campaign is a marketing campaign of any channel.
// Type is one of EMAIL, PUSH, SMS, WHATSAPP.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Content     string    `json:"content,omitempty"`
	SegmentID   string    `json:"segmentId,omitempty"`
	TemplateID  string    `json:"templateId,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// CampaignMetrics is the delivery/engagement report for one campaign.
type CampaignMetrics struct {
	CampaignID   string  `json:"campaignId"`
	Sent         int     `json:"sent"`
	Delivered    int     `json:"delivered"`
	Opened       int     `json:"opened"`
	Clicked      int     `json:"clicked"`
	Bounced      int     `json:"bounced"`
	Unsubscribed int     `json:"unsubscribed"`
	OpenRate     float64 `json:"openRate"`
	ClickRate    float64 `json:"clickRate"`
}

// GeneratedContent is the AI-generated email returned by POST /campaigns/generate.
type GeneratedContent struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Segment is a saved user-filtering query used to target campaigns.
type Segment struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Criteria    map[string]any `json:"criteria,omitempty"`
	UserCount   int            `json:"userCount,omitempty"`
	CreatedAt   time.Time      `json:"createdAt,omitempty"`
}

// EmailTemplate holds MJML source compiled server-side into HTML.
type EmailTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject,omitempty"`
	MJML      string    `json:"mjml,omitempty"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Performer is an artist on an event lineup.
type Performer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Genres   []string `json:"genres,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// Session is one scheduled performance slot.
type Session struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	PerformerID string    `json:"performerId,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	StartsAt    time.Time `json:"startsAt,omitempty"`
	EndsAt      time.Time `json:"endsAt,omitempty"`
}

// DailyLineup is the per-day schedule of an event.
type DailyLineup struct {
	EventID   string    `json:"eventId"`
	Date      string    `json:"date"`
	Published bool      `json:"published,omitempty"`
	Sessions  []Session `json:"sessions,omitempty"`
}
