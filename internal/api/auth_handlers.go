package api

import (
	"encoding/json"
	"net/http"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	email, err := domain.ParseEmailAddress(req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	name, err := domain.ParseUsername(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	var userID domain.UserID
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		userID, err = s.authn.Register(r.Context(), tx, email, name, req.Password)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{UserID: userID.String()})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	email, err := domain.ParseEmailAddress(req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	var user *domain.User
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		user, err = s.authn.Authenticate(r.Context(), tx, email, req.Password)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
