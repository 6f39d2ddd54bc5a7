package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/auth"
	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/crypto"
	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

type userSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	// Administrators are checked first and always log in as admin,
	// whatever any other record says.
	admin, err := s.store.GetAdministratorByEmail(r.Context(), req.Email)
	if err == nil {
		if crypto.CheckPassword(admin.PasswordHash, req.Password) == nil {
			s.issueLogin(w, admin.ID, model.RoleAdmin, userSummary{
				ID:       admin.ID,
				FullName: admin.FullName,
				Email:    admin.Email,
				Role:     string(model.RoleAdmin),
			})
			return
		}
		// Password mismatch against the admin record falls through to the
		// general account table.
	} else if !errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	account, err := s.store.GetAccountByEmail(r.Context(), req.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusUnauthorized, "User does not exist.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Deleted accounts answer exactly like accounts that never existed.
	if account.Status == model.StatusDeleted {
		writeError(w, http.StatusUnauthorized, "User does not exist.")
		return
	}
	if account.Status == model.StatusInactive {
		writeError(w, http.StatusForbidden, "Your account is deactivated. Contact Admin.")
		return
	}

	if crypto.CheckPassword(account.PasswordHash, req.Password) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid Password")
		return
	}

	s.issueLogin(w, account.ID, account.Role, userSummary{
		ID:       account.ID,
		FullName: account.FullName,
		Email:    account.Email,
		Role:     string(account.Role),
		Status:   string(account.Status),
	})
}

func (s *Server) issueLogin(w http.ResponseWriter, subjectID string, role model.Role, user userSummary) {
	token, err := auth.NewAccessToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenTTL, auth.Claims{
		UserID: subjectID,
		Role:   string(role),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not issue token.")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

type registerRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	ContactNumber string `json:"contact_number"`
	Gender        string `json:"gender"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	role, err := model.ParseRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid role.")
		return
	}
	if role == model.RoleAdmin {
		writeError(w, http.StatusForbidden, "Admin registration is restricted.")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not process registration.")
		return
	}

	now := time.Now().UTC()
	account := model.Account{
		ID:            uuid.NewString(),
		FullName:      req.FullName,
		Email:         req.Email,
		PasswordHash:  hash,
		Role:          role,
		Status:        model.StatusActive,
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Gender:        strings.TrimSpace(req.Gender),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateAccount(r.Context(), account); err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully!"})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
