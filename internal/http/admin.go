package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"
)

type accountSummary struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	ContactNumber string `json:"contact_number,omitempty"`
	Gender        string `json:"gender,omitempty"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}

	summaries := make([]accountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, accountSummary{
			ID:            account.ID,
			FullName:      account.FullName,
			Email:         account.Email,
			Role:          string(account.Role),
			Status:        string(account.Status),
			ContactNumber: account.ContactNumber,
			Gender:        account.Gender,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	requested, err := model.ParseStatus(req.Status)
	if err != nil || requested == model.StatusDeleted {
		writeError(w, http.StatusBadRequest, "Invalid status. Must be 'active' or 'inactive'.")
		return
	}

	account, err := s.store.GetAccountByID(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error updating status")
		return
	}

	// The transition function owns the restore rule: a deleted account
	// always comes back active.
	next := account.Status.Transition(requested)
	if _, err := s.store.SetAccountStatus(r.Context(), id, next); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error updating status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("User status updated to %s", next)})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.SetAccountStatus(r.Context(), chi.URLParam(r, "id"), model.StatusDeleted)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// Inventory aggregation

type inventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
}

const inventoryCacheKey = "admin:inventory"

// handleInventory unions the three category tables. The reads are
// sequential and not transactional; a section that fails to load is
// simply omitted. The aggregate feeds a polling dashboard, so a short
// redis cache in front of it is enough.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	if items, ok := s.cachedInventory(r.Context()); ok {
		writeJSON(w, http.StatusOK, items)
		return
	}

	items := make([]inventoryItem, 0)
	if canteen, err := s.store.ListCanteenItems(r.Context()); err == nil {
		for _, item := range canteen {
			items = append(items, inventoryItem{
				ID:       item.ID,
				Name:     item.ItemName,
				Price:    item.Price,
				Category: "CANTEEN",
				Status:   "Available",
			})
		}
	}
	if stationery, err := s.store.ListStationeryItems(r.Context()); err == nil {
		for _, item := range stationery {
			items = append(items, inventoryItem{
				ID:       item.ID,
				Name:     item.ItemName,
				Price:    item.Price,
				Category: "STATIONERY",
				Status:   "Available",
			})
		}
	}
	if hostel, err := s.store.ListHostelItems(r.Context()); err == nil {
		for _, item := range hostel {
			items = append(items, inventoryItem{
				ID:       item.ID,
				Name:     item.ItemName,
				Price:    0,
				Category: "HOSTEL",
				Status:   item.AvailabilityStatus,
			})
		}
	}

	s.storeInventoryCache(r.Context(), items)
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) cachedInventory(ctx context.Context) ([]inventoryItem, bool) {
	if s.redis == nil || s.cfg.InventoryCacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, inventoryCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var items []inventoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *Server) storeInventoryCache(ctx context.Context, items []inventoryItem) {
	if s.redis == nil || s.cfg.InventoryCacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, inventoryCacheKey, raw, s.cfg.InventoryCacheTTL).Err()
}
