// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package sendverification

import (
	"errors"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/mailing"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(fbAuth *fbauth.Client, sender *mailing.Sender, profiles *pantrydb.ProfileStore) *Handler {
	return &Handler{fbAuth: fbAuth, sender: sender, profiles: profiles}
}

type Handler struct {
	fbAuth   *fbauth.Client
	sender   *mailing.Sender
	profiles *pantrydb.ProfileStore
}

// SendVerification mails a fresh verification link to the signed-in user.
// This is the only data endpoint open to unverified accounts. It also
// ensures the profile copy exists so the user shows up in Firestore before
// their first inventory write.
func (h *Handler) SendVerification(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}
	if session.Email == "" {
		web.BadRequest(w, errors.New("sendverification: token has no email address"))
		return
	}

	link, err := h.fbAuth.EmailVerificationLink(r.Context(), session.Email)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	if err := h.sender.SendVerification(session.Email, link); err != nil {
		web.Error(r, w, err)
		return
	}
	if err := h.profiles.EnsureProfile(r.Context(), session.UserID, pantrydb.UserProfile{Email: session.Email}); err != nil {
		web.Error(r, w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
