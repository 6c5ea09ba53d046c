package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Description The role in the token decides whether the admin endpoints are reachable
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid login"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials UserLogin
	if err := readJSON(w, r, &credentials); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := s.auth.Authenticate(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.log.Warn().Str("username", credentials.Username).Msg("rejected login")
			s.respondError(w, http.StatusUnauthorized, "Invalid login")
			return
		}
		s.log.Error().Err(err).Msg("authentication failed")
		s.respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.log.Error().Err(err).Msg("could not generate token")
		s.respondError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user logged in")
	s.respond(w, http.StatusOK, LoginResult{Token: token, Role: user.Role})
}
