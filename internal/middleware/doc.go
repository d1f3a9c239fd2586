// Package middleware provides HTTP middleware for the HireWire API.
//
// Middleware components are composed with Chain, which applies them in
// order around a final handler:
//
//	handler := middleware.Chain(mux,
//		middleware.Recovery,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.CORS(origins),
//		middleware.Compress,
//	)
//
// # Authentication
//
// Auth validates a Bearer token on every request and rejects missing or
// invalid credentials with a problem+json response. OptionalAuth attaches
// user info when a valid token is present but lets anonymous requests
// through, which public job listings rely on.
//
// After authentication, handlers read the caller from the request context:
//
//	userID := middleware.GetUserID(r.Context())
//	role := middleware.GetUserRole(r.Context())
//
// # Context Values
//
//   - GetUserID: authenticated user ID
//   - GetUserEmail: authenticated user email
//   - GetUserRole: the caller's role (candidate or employer)
//   - GetClaims: the full JWT claims
//   - GetRequestID: unique request identifier
package middleware
