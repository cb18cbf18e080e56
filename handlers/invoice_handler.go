package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"sskcargo/core"
	"sskcargo/middleware"
	"sskcargo/models"
	"sskcargo/repository"
	"sskcargo/utils"
)

type InvoiceHandler struct {
	Repo   *repository.PDFRepository
	Policy core.TaxPolicy
}

type invoiceRequest struct {
	LRNos []string `json:"lr_nos"`
}

// Compute builds a consolidated bill over the requested receipts. Unknown
// receipt numbers are skipped rather than failing the whole bill.
func (h *InvoiceHandler) Compute(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	bill, err := h.buildBill(ident.OwnerID, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bill)
}

// PDF renders the consolidated bill as a printable PDF document.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	bill, err := h.buildBill(ident.OwnerID, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	company, err := h.Repo.GetCompanyForPDF(ident.OwnerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pdf, err := utils.GenerateInvoicePDF(r.Context(), company, bill)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+bill.BillNo+`.pdf"`)
	_, _ = w.Write(pdf)
}

func (h *InvoiceHandler) buildBill(ownerID int64, r *http.Request) (*models.ConsolidatedBill, error) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	var selection []*models.LorryReceipt
	for _, no := range req.LRNos {
		lr, err := h.Repo.LRRepo.GetByNo(ownerID, no)
		if err != nil {
			return nil, err
		}
		if lr == nil {
			continue
		}
		selection = append(selection, lr)
	}

	bill := core.Aggregate(selection, h.Policy, time.Now().UTC())
	bill.AmountInWords = utils.AmountInWords(math.Round(bill.NetAmount))
	return &bill, nil
}
