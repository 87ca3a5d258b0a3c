package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"go.uber.org/zap"
)

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 429 {string} string "Too many requests"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials UserLogin
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "Missing credentials", http.StatusBadRequest)
		return
	}

	user, err := directory.Authenticate(credentials.Username, credentials.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		logger.Info("Login rejected", zap.String("username", credentials.Username))
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	logger.Info("Login", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	respond(w, http.StatusOK, LoginResult{Token: token, Name: user.Name, Role: user.Role})
}
