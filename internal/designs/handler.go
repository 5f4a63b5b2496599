// Package designs persists evaluated girder runs per user.
package designs

import (
	"encoding/json"
	"net/http"

	auth "Plateworks/internal/auth"
	girder "Plateworks/internal/calc/girder"
	repo "Plateworks/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.DesignRepository
}

type saveRequest struct {
	Design girder.Input `json:"design"`
}

type saveResponse struct {
	ID string `json:"id"`
	girder.Result
}

func userID(r *http.Request) (int, bool) {
	return auth.UserID(r.Context())
}

// Save evaluates the submitted girder and stores the full result under the
// authenticated user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := girder.Calculate(req.Design)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), uid, res.Designation, res.OK, payload)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	records, err := h.Repo.ListDesigns(r.Context(), uid)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	rec, err := h.Repo.GetDesign(r.Context(), mux.Vars(r)["id"])
	if err != nil || rec.UserID != uid {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
