package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/internal/models"
)

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, categories, http.StatusOK)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name is required", http.StatusBadRequest)
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.CategoryRepo.Create(r.Context(), category); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, category, http.StatusCreated)
}

func (h *Handlers) GetPostCategories(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	categories, err := h.PostRepo.GetCategories(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, categories, http.StatusOK)
}
