package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type SubscribedResponse struct {
	Subscribed bool `json:"subscribed"`
}

// ToggleSubscription follows the target if not yet followed, otherwise
// unfollows, and reports the resulting state.
func (h *Handlers) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetID string `json:"targetId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "targetId is required", http.StatusBadRequest)
		return
	}

	subscribed, err := h.SubscribeService.Toggle(r.Context(), actorID(r), req.TargetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SubscribedResponse{Subscribed: subscribed}, http.StatusOK)
}

func (h *Handlers) CheckSubscription(w http.ResponseWriter, r *http.Request) {
	targetID := r.URL.Query().Get("targetId")
	if targetID == "" {
		WriteError(w, "targetId is required", http.StatusBadRequest)
		return
	}

	subscribed, err := h.SubscribeService.Check(r.Context(), actorID(r), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SubscribedResponse{Subscribed: subscribed}, http.StatusOK)
}

func (h *Handlers) SubscriptionCounts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	counts, err := h.SubscribeService.Counts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, counts, http.StatusOK)
}
