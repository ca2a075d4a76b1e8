package api

import (
	"net/http"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/middleware"
	"github.com/mverdier/coinsplit/internal/service"
	"github.com/mverdier/coinsplit/internal/storage"
)

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Name:      u.Name.Value(),
		Email:     u.Email.Value(),
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	var user *domain.User
	err := s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		user, err = service.GetUserByIDQuery{ID: userID}.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		// a valid token for a deleted account
		writeErrorCode(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleGetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := domain.ParseEmailAddress(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	var user *domain.User
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		user, err = service.GetUserByEmailQuery{Email: email}.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeErrorCode(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
