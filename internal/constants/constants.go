package constants

// Session / context keys
const (
	SessionCookieName = "stackit_session"
	ContextKeyUserID  = "user_id"
	ContextKeyRole    = "user_role"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Admin dashboard listings are fixed at 10 rows per page with a
	// 5-wide page number window.
	DashboardPageSize = 10
	PageWindowSize    = 5
)

// Role actions accepted by the admin role endpoint.
const (
	RoleActionPromote = "promote"
	RoleActionDemote  = "demote"
)
