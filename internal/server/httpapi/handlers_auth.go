package httpapi

import (
	"errors"
	"net/http"

	"github.com/shopkeeper/shopkeeper/internal/common"
	"github.com/shopkeeper/shopkeeper/internal/server/validation"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !parseJSONBody(w, r, &req) {
		return
	}

	_, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.Is(err, common.ErrDuplicateAccount):
			writeMessage(w, http.StatusBadRequest, "User already exists")
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": vErr.Messages})
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeInternal(w)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered")
	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (s *Server) loginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !parseJSONBody(w, r, &req) {
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// Deliberately the same body for an unknown email and a wrong
			// password so account existence cannot be probed.
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

func (s *Server) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users failed", "error", err.Error())
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
