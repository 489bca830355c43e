package utils

// Gin context keys set by the auth middleware.
const (
	ContextEmailKey   = "email"
	ContextRequestKey = "requestID"
)
