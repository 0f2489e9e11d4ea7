package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNamePortalsEntered  = "portalquest_portals_entered_total"
	MetricNameCombatsEnded    = "portalquest_combats_ended_total"
	MetricNameArenaMatches    = "portalquest_arena_matches_total"
	MetricNameItemsBought     = "portalquest_items_bought_total"
	MetricNameCurrencyEarned  = "portalquest_currency_earned_total"
	MetricNameCurrencySpent   = "portalquest_currency_spent_total"
	MetricNameLevelUps        = "portalquest_level_ups_total"
	MetricNameDailyClaims     = "portalquest_daily_claims_total"
	MetricNameOracleQuestions = "portalquest_oracle_questions_total"
	MetricNameActiveSessions  = "portalquest_active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Game metric help text
const (
	HelpTextPortalsEntered  = "Total number of portal trips"
	HelpTextCombatsEnded    = "Total number of PvE encounters ended, by archetype and reason"
	HelpTextArenaMatches    = "Total number of arena matches finished, by result"
	HelpTextItemsBought     = "Total number of shop purchases, by item"
	HelpTextCurrencyEarned  = "Total currency granted by portals, enemies and daily rewards"
	HelpTextCurrencySpent   = "Total currency spent in the shop"
	HelpTextLevelUps        = "Total number of levels gained"
	HelpTextDailyClaims     = "Total number of daily rewards claimed"
	HelpTextOracleQuestions = "Total number of crystal questions, by outcome"
	HelpTextActiveSessions  = "Current number of cached player sessions"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelArchetype = "archetype"
	LabelReason    = "reason"
	LabelResult    = "result"
	LabelOutcome   = "outcome"
)

// Oracle outcomes
const (
	OutcomeAnswered = "answered"
	OutcomeRefunded = "refunded"
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets are the request latency buckets in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
