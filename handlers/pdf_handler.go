package handlers

import (
	"net/http"

	"sskcargo/middleware"
	"sskcargo/repository"
	"sskcargo/utils"
)

type PDFHandler struct {
	Repo *repository.PDFRepository
}

// LRPDF renders a lorry receipt as a printable PDF with three copies on the
// operator's letterhead.
func (h *PDFHandler) LRPDF(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	lrNo := r.URL.Query().Get("no")
	if lrNo == "" {
		http.Error(w, "missing lr number", http.StatusBadRequest)
		return
	}

	pdfBytes, err := utils.GenerateLRPDF(r.Context(), h.Repo, ident.OwnerID, lrNo)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "lorry receipt not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="lr-`+safeFilename(lrNo)+`.pdf"`)
	_, _ = w.Write(pdfBytes)
}

func safeFilename(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
