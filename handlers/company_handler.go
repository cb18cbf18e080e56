package handlers

import (
	"encoding/json"
	"net/http"

	"sskcargo/middleware"
	"sskcargo/models"
	"sskcargo/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyRepository
}

// Get returns the operator's letterhead details, falling back to the built-in
// defaults when nothing has been saved yet.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	details, err := h.Repo.Get(ident.OwnerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if details == nil {
		details = models.DefaultCompanyDetails(ident.OwnerID)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(details)
}

// Save stores the operator's letterhead details.
func (h *CompanyHandler) Save(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	var details models.CompanyDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	details.OwnerID = ident.OwnerID

	if err := h.Repo.Save(&details); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(details)
}
