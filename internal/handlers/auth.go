package handlers

import (
	"net/http"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/models"
)

// login checks the operator credentials and issues a token.
func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	token, err := a.authService.Login(req.Username, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: req.Username,
	})
}
