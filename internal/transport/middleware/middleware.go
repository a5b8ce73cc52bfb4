// Package middleware holds the HTTP middleware wrapped around the hub API.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It is the same shape chi's Use and With
// accept.
type Middleware = func(http.Handler) http.Handler
