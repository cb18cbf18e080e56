package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"sskcargo/middleware"
	"sskcargo/repository"
	"sskcargo/utils"
)

// maxPODSize caps proof-of-delivery uploads at 5 MB.
const maxPODSize = 5 << 20

type PODHandler struct {
	Repo repository.LRRepository
}

// Upload attaches a proof-of-delivery file to a receipt. Multipart form with
// fields "lr_no" and "file"; accepts JPEG, PNG and PDF.
func (h *PODHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	if err := r.ParseMultipartForm(maxPODSize); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	lrNo := r.FormValue("lr_no")
	if lrNo == "" {
		http.Error(w, "missing lr number", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxPODSize {
		http.Error(w, "file too large (max 5MB)", http.StatusRequestEntityTooLarge)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPODSize))
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := podExtension(contentType)
	if !ok {
		http.Error(w, "unsupported file type: "+contentType, http.StatusBadRequest)
		return
	}

	lr, err := h.Repo.GetByNo(ident.OwnerID, lrNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lr == nil {
		http.Error(w, "lorry receipt not found", http.StatusNotFound)
		return
	}

	podURL, err := utils.UploadPOD(data, contentType, ext)
	if err != nil {
		http.Error(w, "failed to upload POD: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Repo.UpdatePOD(ident.OwnerID, lrNo, &podURL); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Replacing an existing attachment orphans the old object.
	if lr.PODURL != nil && *lr.PODURL != podURL {
		if err := utils.DeleteFromR2(*lr.PODURL); err != nil {
			log.Printf("failed to delete replaced POD object for %s: %v", lrNo, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"pod_url": podURL})
}

// Remove detaches and deletes the receipt's proof-of-delivery file.
func (h *PODHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	lrNo := r.URL.Query().Get("no")
	if lrNo == "" {
		http.Error(w, "missing lr number", http.StatusBadRequest)
		return
	}

	lr, err := h.Repo.GetByNo(ident.OwnerID, lrNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lr == nil {
		http.Error(w, "lorry receipt not found", http.StatusNotFound)
		return
	}
	if lr.PODURL == nil || *lr.PODURL == "" {
		http.Error(w, "no POD attached", http.StatusNotFound)
		return
	}

	if err := utils.DeleteFromR2(*lr.PODURL); err != nil {
		http.Error(w, "failed to delete POD object: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.Repo.UpdatePOD(ident.OwnerID, lrNo, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"POD removed successfully"}`))
}

func podExtension(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg", true
	case strings.HasPrefix(contentType, "image/png"):
		return ".png", true
	case strings.HasPrefix(contentType, "application/pdf"):
		return ".pdf", true
	}
	return "", false
}
