package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"
)

// Canteen

type canteenItemRequest struct {
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}

type canteenItemResponse struct {
	ID        string  `json:"id"`
	ItemName  string  `json:"item_name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
}

func mapCanteenItems(items []model.CanteenItem) []canteenItemResponse {
	resp := make([]canteenItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, canteenItemResponse{
			ID:        item.ID,
			ItemName:  item.ItemName,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Status:    item.Status,
			CreatedAt: item.CreatedAt.Unix(),
		})
	}
	return resp
}

func (s *Server) handleListCanteenItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListCanteenItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapCanteenItems(items))
}

func (s *Server) handleAddCanteenItem(w http.ResponseWriter, r *http.Request) {
	var req canteenItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		writeError(w, http.StatusBadRequest, "Item name is required.")
		return
	}

	item := model.CanteenItem{
		ID:        uuid.NewString(),
		ItemName:  req.ItemName,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Status:    req.Status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateCanteenItem(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item added successfully", "id": item.ID})
}

func (s *Server) handleUpdateCanteenItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req canteenItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ok, err := s.store.UpdateCanteenItem(r.Context(), model.CanteenItem{
		ID:       id,
		ItemName: strings.TrimSpace(req.ItemName),
		Price:    req.Price,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item updated successfully"})
}

func (s *Server) handleDeleteCanteenItem(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.DeleteCanteenItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// Stationery

type stationeryItemRequest struct {
	ItemName   string  `json:"item_name"`
	Price      float64 `json:"price"`
	StockLevel int     `json:"stock_level"`
	Category   string  `json:"category"`
}

type stationeryItemResponse struct {
	ID         string  `json:"id"`
	ItemName   string  `json:"item_name"`
	Price      float64 `json:"price"`
	StockLevel int     `json:"stock_level"`
	Category   string  `json:"category"`
	CreatedAt  int64   `json:"created_at"`
}

func mapStationeryItems(items []model.StationeryItem) []stationeryItemResponse {
	resp := make([]stationeryItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, stationeryItemResponse{
			ID:         item.ID,
			ItemName:   item.ItemName,
			Price:      item.Price,
			StockLevel: item.StockLevel,
			Category:   item.Category,
			CreatedAt:  item.CreatedAt.Unix(),
		})
	}
	return resp
}

func (s *Server) handleListStationeryItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListStationeryItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapStationeryItems(items))
}

func (s *Server) handleAddStationeryItem(w http.ResponseWriter, r *http.Request) {
	var req stationeryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		writeError(w, http.StatusBadRequest, "Item name is required.")
		return
	}

	item := model.StationeryItem{
		ID:         uuid.NewString(),
		ItemName:   req.ItemName,
		Price:      req.Price,
		StockLevel: req.StockLevel,
		Category:   req.Category,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateStationeryItem(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Stationery item added", "id": item.ID})
}

func (s *Server) handleUpdateStationeryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req stationeryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ok, err := s.store.UpdateStationeryItem(r.Context(), model.StationeryItem{
		ID:         id,
		ItemName:   strings.TrimSpace(req.ItemName),
		Price:      req.Price,
		StockLevel: req.StockLevel,
		Category:   req.Category,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Stationery item updated successfully"})
}

func (s *Server) handleDeleteStationeryItem(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.DeleteStationeryItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Stationery item deleted successfully"})
}

// Hostel

type hostelItemRequest struct {
	ItemName           string `json:"item_name"`
	Type               string `json:"type"`
	AvailabilityStatus string `json:"availability_status"`
}

type hostelItemResponse struct {
	ID                 string `json:"id"`
	ItemName           string `json:"item_name"`
	Type               string `json:"type"`
	AvailabilityStatus string `json:"availability_status"`
	CreatedAt          int64  `json:"created_at"`
}

func mapHostelItems(items []model.HostelItem) []hostelItemResponse {
	resp := make([]hostelItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, hostelItemResponse{
			ID:                 item.ID,
			ItemName:           item.ItemName,
			Type:               item.Type,
			AvailabilityStatus: item.AvailabilityStatus,
			CreatedAt:          item.CreatedAt.Unix(),
		})
	}
	return resp
}

func (s *Server) handleListHostelItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListHostelItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapHostelItems(items))
}

func (s *Server) handleAddHostelItem(w http.ResponseWriter, r *http.Request) {
	var req hostelItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		writeError(w, http.StatusBadRequest, "Item name is required.")
		return
	}

	item := model.HostelItem{
		ID:                 uuid.NewString(),
		ItemName:           req.ItemName,
		Type:               req.Type,
		AvailabilityStatus: req.AvailabilityStatus,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.store.CreateHostelItem(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hostel item added", "id": item.ID})
}

func (s *Server) handleUpdateHostelItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req hostelItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ok, err := s.store.UpdateHostelItem(r.Context(), model.HostelItem{
		ID:                 id,
		ItemName:           strings.TrimSpace(req.ItemName),
		Type:               req.Type,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hostel item updated successfully"})
}

func (s *Server) handleDeleteHostelItem(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.DeleteHostelItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hostel item deleted successfully"})
}

// Student read-only views. Same data as the category listings, presented
// in the orderings the dashboards expect.

func (s *Server) handleCanteenMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListCanteenMenu(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapCanteenItems(items))
}

func (s *Server) handleStationeryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListStationeryCatalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapStationeryItems(items))
}

func (s *Server) handleHostelStatus(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListHostelAvailability(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, mapHostelItems(items))
}
