package logging

// Structured log keys shared across packages.
const (
	FieldService = "service"
	FieldVersion = "version"
	FieldError   = "error"

	// request scope
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"

	// stats resolution
	FieldProvider = "provider"
	FieldPlayerID = "player_id"
	FieldMonth    = "month"
	FieldSeason   = "season"
	FieldDate     = "date"
	FieldSource   = "source"
	FieldFailure  = "failure"
	FieldAttempt  = "attempt"
	FieldCount    = "count"
)
