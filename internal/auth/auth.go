// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package auth turns verified Firebase tokens into an explicit session
// value. Stores and pipelines receive the session as an argument; nothing
// reads auth state from a global.
package auth

import (
	"context"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// Session identifies the authenticated user for a single request.
type Session struct {
	// UserID is the Firebase UID owning all data touched by the request.
	UserID string

	// Email is the user's email address, if present on the token.
	Email string

	// Verified reports whether the email has been verified. Unverified
	// users are treated as unauthenticated for data access.
	Verified bool
}

// SessionFromContext builds the session from the request's verified token.
// It returns false when the middleware did not authenticate the request.
func SessionFromContext(ctx context.Context) (Session, bool) {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil || tok.UID == "" {
		return Session{}, false
	}
	session := Session{UserID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		session.Email = email
	}
	if verified, ok := tok.Claims["email_verified"].(bool); ok {
		session.Verified = verified
	}
	return session, true
}

// RequireVerified rejects requests whose user has not verified their email.
// Resending the verification mail is the one operation exempted so a fresh
// signup can get unstuck.
func RequireVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		if !session.Verified && r.URL.Path != "/api/auth/verification-email" {
			http.Error(w, "email not verified", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
