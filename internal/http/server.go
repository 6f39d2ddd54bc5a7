package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/auth"
	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/config"
	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"
	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/policy"
)

// Store is the persistence surface the handlers need. *repository.Store
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	GetAccountByEmail(ctx context.Context, email string) (model.Account, error)
	GetAccountByID(ctx context.Context, id string) (model.Account, error)
	GetAccountStatus(ctx context.Context, id string) (model.AccountStatus, error)
	CreateAccount(ctx context.Context, account model.Account) error
	ListAccounts(ctx context.Context) ([]model.Account, error)
	SetAccountStatus(ctx context.Context, id string, status model.AccountStatus) (bool, error)

	GetAdministratorByEmail(ctx context.Context, email string) (model.Administrator, error)
	AdministratorExists(ctx context.Context, id string) (bool, error)

	ListCanteenItems(ctx context.Context) ([]model.CanteenItem, error)
	ListCanteenMenu(ctx context.Context) ([]model.CanteenItem, error)
	CreateCanteenItem(ctx context.Context, item model.CanteenItem) error
	UpdateCanteenItem(ctx context.Context, item model.CanteenItem) (bool, error)
	DeleteCanteenItem(ctx context.Context, id string) (bool, error)

	ListStationeryItems(ctx context.Context) ([]model.StationeryItem, error)
	ListStationeryCatalog(ctx context.Context) ([]model.StationeryItem, error)
	CreateStationeryItem(ctx context.Context, item model.StationeryItem) error
	UpdateStationeryItem(ctx context.Context, item model.StationeryItem) (bool, error)
	DeleteStationeryItem(ctx context.Context, id string) (bool, error)

	ListHostelItems(ctx context.Context) ([]model.HostelItem, error)
	ListHostelAvailability(ctx context.Context) ([]model.HostelItem, error)
	CreateHostelItem(ctx context.Context, item model.HostelItem) error
	UpdateHostelItem(ctx context.Context, item model.HostelItem) (bool, error)
	DeleteHostelItem(ctx context.Context, id string) (bool, error)
}

type Server struct {
	cfg   config.Config
	store Store
	redis *redis.Client
}

func NewServer(cfg config.Config, store Store, redisClient *redis.Client) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
		redis: redisClient,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleRegister)

	r.Route("/api/canteen", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/items", s.handleListCanteenItems)
		r.With(s.requireRole(policy.CanteenWrite)).Post("/add", s.handleAddCanteenItem)
		r.With(s.requireRole(policy.CanteenWrite)).Put("/update/{id}", s.handleUpdateCanteenItem)
		r.With(s.requireRole(policy.CanteenWrite)).Delete("/delete/{id}", s.handleDeleteCanteenItem)
	})

	r.Route("/api/stationery", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/items", s.handleListStationeryItems)
		r.With(s.requireRole(policy.StationeryWrite)).Post("/add", s.handleAddStationeryItem)
		r.With(s.requireRole(policy.StationeryWrite)).Put("/update/{id}", s.handleUpdateStationeryItem)
		r.With(s.requireRole(policy.StationeryWrite)).Delete("/delete/{id}", s.handleDeleteStationeryItem)
	})

	r.Route("/api/hostel", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/items", s.handleListHostelItems)
		r.With(s.requireRole(policy.HostelWrite)).Post("/add", s.handleAddHostelItem)
		r.With(s.requireRole(policy.HostelWrite)).Put("/update/{id}", s.handleUpdateHostelItem)
		r.With(s.requireRole(policy.HostelWrite)).Delete("/delete/{id}", s.handleDeleteHostelItem)
	})

	r.Route("/api/student", func(r chi.Router) {
		r.Use(s.authMiddleware, s.requireRole(policy.StudentViews))
		r.Get("/canteen-menu", s.handleCanteenMenu)
		r.Get("/stationery-list", s.handleStationeryList)
		r.Get("/hostel-status", s.handleHostelStatus)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.With(s.requireRole(policy.ManageUsers)).Get("/users", s.handleListUsers)
		r.With(s.requireRole(policy.ManageUsers)).Put("/users/{id}/status", s.handleSetUserStatus)
		r.With(s.requireRole(policy.ManageUsers)).Delete("/users/{id}", s.handleDeleteUser)
		r.With(s.requireRole(policy.ViewInventory)).Get("/inventory", s.handleInventory)
	})

	return r
}

// Access guard

type claimsKey struct{}

// authMiddleware gates every protected request in two phases: structural
// token validation, then a liveness re-check against the store. The second
// phase is what makes an admin deactivation bite on the next request
// instead of at token expiry.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusForbidden, "No token provided. Access denied.")
			return
		}

		claims, err := auth.ParseToken(s.cfg.JWTSecret, bearerToken(header))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		if claims.Role == string(model.RoleAdmin) {
			ok, err := s.store.AdministratorExists(r.Context(), claims.UserID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Database error checking status.")
				return
			}
			if !ok {
				writeError(w, http.StatusForbidden, "User account not found. Auto-logout.")
				return
			}
		} else {
			status, err := s.store.GetAccountStatus(r.Context(), claims.UserID)
			if errors.Is(err, pgx.ErrNoRows) {
				writeError(w, http.StatusForbidden, "User account not found. Auto-logout.")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Database error checking status.")
				return
			}
			if !status.Live() {
				// Dedicated signal: the token is still cryptographically
				// valid, the client must force a logout anyway.
				writeJSON(w, http.StatusForbidden, map[string]string{
					"message": "ACCOUNT_DEACTIVATED",
					"error":   "Your account has been deactivated or deleted by Admin.",
				})
				return
			}
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireRole(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil || !policy.Allowed(action, model.Role(claims.Role)) {
				writeError(w, http.StatusForbidden, "You do not have permission.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	value := ctx.Value(claimsKey{})
	claims, _ := value.(*auth.Claims)
	return claims
}

// bearerToken strips an optional "Bearer " prefix; a bare token in the
// header is accepted too.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
