// Package common contains shared constants and sentinel errors used across
// GymBro components.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme is the authorization scheme prefix, including the space.
	BearerScheme = "Bearer "

	// RequestIDHeader correlates client log lines with backend log lines.
	RequestIDHeader = "X-Request-ID"

	// SessionTokenKey is the only durable key the client writes.
	SessionTokenKey = "session_token"
)
