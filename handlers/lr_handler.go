package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"sskcargo/core"
	"sskcargo/middleware"
	"sskcargo/models"
	"sskcargo/repository"
	"sskcargo/utils"
)

type LRHandler struct {
	Repo repository.LRRepository
	// Prefix is prepended to auto-generated receipt numbers.
	Prefix string
}

// Save creates or updates a lorry receipt (upsert by receipt number). The
// server owns the derived fields: whatever weight/freight the client sent is
// recomputed here, and the billing party is synchronized with the selected
// mode before persisting.
func (h *LRHandler) Save(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	var lr models.LorryReceipt
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if lr.LRNo == "" {
		nos, err := h.Repo.ListNos(ident.OwnerID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		lr.LRNo = core.NextLRNo(h.Prefix, nos)
	}

	lr.OwnerID = ident.OwnerID
	if lr.LRType == "" {
		lr.LRType = models.LRTypeOriginal
	}
	if lr.RateOn == "" {
		lr.RateOn = "Ton"
	}
	if lr.Date.IsZero() {
		lr.Date = time.Now().UTC()
	}
	if lr.Status == "" {
		lr.Status = core.StatusBooked
	}
	if !core.ValidStatus(lr.Status) {
		http.Error(w, "unknown status: "+lr.Status, http.StatusBadRequest)
		return
	}
	if lr.CreatedBy == "" {
		lr.CreatedBy = ident.Name
	}

	// Attachments and status stamps have their own endpoints; values the
	// client sent here are discarded. On update the repositories carry the
	// stored values forward.
	lr.PODURL = nil
	lr.StatusUpdatedAt = nil

	core.ApplyBillingMode(&lr)
	core.Recalculate(&lr)

	if err := h.Repo.Save(&lr); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(lr)
}

// List returns the operator's receipts, newest first, run through the
// in-memory filter: ?q= free text, ?from= / ?to= inclusive dates.
func (h *LRHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.Repo.List(ident.OwnerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	list = filter.Apply(list)
	if list == nil {
		list = []*models.LorryReceipt{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetByNo returns one receipt.
func (h *LRHandler) GetByNo(w http.ResponseWriter, r *http.Request, lrNo string) {
	ident := middleware.IdentityFrom(r)

	lr, err := h.Repo.GetByNo(ident.OwnerID, lrNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lr == nil {
		http.Error(w, "lorry receipt not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lr)
}

// Delete removes a receipt and its POD attachment, if any.
func (h *LRHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	lrNo := r.URL.Query().Get("no")
	if lrNo == "" {
		http.Error(w, "missing lr number", http.StatusBadRequest)
		return
	}

	podURL, err := h.Repo.Delete(ident.OwnerID, lrNo)
	if err != nil {
		http.Error(w, "failed to delete lorry receipt: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if podURL != "" {
		// The record is already gone; a stale object is only worth a log line.
		if err := utils.DeleteFromR2(podURL); err != nil {
			log.Printf("failed to delete POD object for %s: %v", lrNo, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Lorry receipt deleted successfully"}`))
}

// UpdateStatus sets the delivery status. Any known status may be set; there
// is no transition order.
func (h *LRHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	var req struct {
		LRNo   string `json:"lr_no"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !core.ValidStatus(req.Status) {
		http.Error(w, "unknown status: "+req.Status, http.StatusBadRequest)
		return
	}

	lr, err := h.Repo.GetByNo(ident.OwnerID, req.LRNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lr == nil {
		http.Error(w, "lorry receipt not found", http.StatusNotFound)
		return
	}

	at := time.Now().UTC()
	if err := h.Repo.UpdateStatus(ident.OwnerID, req.LRNo, req.Status, at); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	lr.Status = req.Status
	lr.StatusUpdatedAt = &at

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lr)
}

// NextNo returns the next free receipt number for the operator.
func (h *LRHandler) NextNo(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	nos, err := h.Repo.ListNos(ident.OwnerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"lr_no": core.NextLRNo(h.Prefix, nos),
	})
}

func filterFromQuery(q url.Values) (core.Filter, error) {
	f := core.Filter{Text: q.Get("q")}

	if v := q.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	return f, nil
}
