package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"prepmate/interview/internal/models"
	"prepmate/interview/internal/repositories"
	"prepmate/interview/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	repo      *repositories.UserRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(repo *repositories.UserRepository, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{repo: repo, jwtSecret: jwtSecret, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{Code: "invalid_json", Message: "Invalid JSON in request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{Code: "missing_fields", Message: "username, email and password are required"})
		return
	}

	if existing, _ := h.repo.GetUserByUsername(req.Username); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{Code: "username_taken", Message: "username taken"})
		return
	}
	if existing, _ := h.repo.GetUserByEmail(req.Email); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{Code: "email_taken", Message: "email taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: string(hash)}
	if err := h.repo.CreateUser(user); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{Code: "invalid_json", Message: "Invalid JSON in request body"})
		return
	}

	user, err := h.repo.GetUserByUsername(req.Username)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{Code: "invalid_credentials", Message: "invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{Code: "invalid_credentials", Message: "invalid credentials"})
		return
	}

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}
