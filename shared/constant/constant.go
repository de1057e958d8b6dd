package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserName contextKey = "user_name"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTenantID contextKey = "tenant_id"
	ContextKeyEventID  contextKey = "event_id"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleEmployee = "employee"
	RoleCouple   = "couple"
	RoleAnonym   = "anonymous"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID      = "id"
	RequestParamEventID = "eventId"
	RequestParamToken   = "token"
	RequestParamSlug    = "slug"
	RequestMaxMemory    = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

// Guest lifecycle stages (save-the-date, RSVP active, finalized).
const (
	StageSaveTheDate = 1
	StageRSVP        = 2
	StageFinalized   = 3
)

const (
	SaveTheDatePending = "pending"
	SaveTheDateYes     = "yes"
	SaveTheDateNo      = "no"
)

const (
	RSVPStatusDraft     = "draft"
	RSVPStatusInvited   = "invited"
	RSVPStatusConfirmed = "confirmed"
	RSVPStatusDeclined  = "declined"
)

const (
	RSVPSubmitConfirmed = "confirmed"
	RSVPSubmitDeclined  = "declined"
	RSVPSubmitMaybe     = "maybe"
)

const (
	EventStatusPlanning  = "planning"
	EventStatusConfirmed = "confirmed"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

const (
	FloorPlanModeCeremony  = "ceremony"
	FloorPlanModeReception = "reception"
)

const (
	TableTypeRound       = "round"
	TableTypeRectangular = "rectangular"
)

// Couple-portal section names used by the permission gate.
const (
	SectionGuestList = "guest_list"
	SectionSeating   = "seating"
	SectionTimeline  = "timeline"
	SectionMenu      = "menu"
	SectionNotes     = "notes"
	SectionHotel     = "hotel"
	SectionWebsite   = "website"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	ContentTypeCSV               = "text/csv"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
