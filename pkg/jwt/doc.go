// Package jwt provides JSON Web Token utilities for the HireWire API.
//
// The jwt package handles RS256 token signing, validation, and claims
// extraction for authentication.
//
// # Token Signing
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    PublicKeyPath:  "keys/public.pem",
//	    Issuer:         "api.hirewire.dev",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    UserID: user.ID,
//	    Email:  user.Email,
//	    Role:   string(user.Role),
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// # Claims
//
// Claims carry the registered JWT fields plus HireWire-specific fields:
//
//	type Claims struct {
//	    UserID string // record ID of the authenticated user
//	    Email  string
//	    Role   string // candidate or employer
//	}
//
// GenerateKeyPair writes a fresh RSA key pair to disk for development use.
package jwt
