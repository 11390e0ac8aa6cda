package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/internal/identity"
)

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SyncProfile copies the identity provider's metadata for the caller
// into the profiles table.
func (h *Handlers) SyncProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*identity.User)
	if !ok || user == nil {
		WriteError(w, "Failed to get user", http.StatusUnauthorized)
		return
	}

	profile, err := h.ProfileService.SyncProfile(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profile, err := h.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.ProfileService.DeleteAccount(r.Context(), actorID(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Success: true, Message: "Account deleted successfully"}, http.StatusOK)
}

func (h *Handlers) RestoreAccount(w http.ResponseWriter, r *http.Request) {
	profile, err := h.ProfileService.RestoreAccount(r.Context(), actorID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}
