package routes

import (
	"net/http"

	"sskcargo/handlers"
	"sskcargo/middleware"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(h http.HandlerFunc) http.Handler {
	return withCORS(http.HandlerFunc(handlers.RecoverWrapper(h)))
}

func protected(h http.HandlerFunc) http.Handler {
	return withCORS(http.HandlerFunc(handlers.RecoverWrapper(middleware.RequireAuth(h))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	lrHandler *handlers.LRHandler,
	podHandler *handlers.PODHandler,
	invoiceHandler *handlers.InvoiceHandler,
	companyHandler *handlers.CompanyHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	http.Handle("/signup", public(userHandler.Signup))
	http.Handle("/login", public(userHandler.Login))

	// Lorry receipt routes
	http.Handle("/lr", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			lrHandler.Save(w, r)
		case http.MethodGet:
			lrHandler.List(w, r)
		case http.MethodDelete:
			lrHandler.Delete(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/lr/next-no", protected(lrHandler.NextNo))
	http.Handle("/lr/status", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		lrHandler.UpdateStatus(w, r)
	}))
	http.Handle("/lr/pod", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			podHandler.Upload(w, r)
		case http.MethodDelete:
			podHandler.Remove(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	http.Handle("/lr/pdf", protected(pdfHandler.LRPDF))

	// Get lorry receipt by number
	http.Handle("/lr/", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		no := r.URL.Path[len("/lr/"):]
		if no != "" {
			lrHandler.GetByNo(w, r, no)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	// Consolidated invoice routes
	http.Handle("/invoice", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		invoiceHandler.Compute(w, r)
	}))
	http.Handle("/invoice/pdf", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		invoiceHandler.PDF(w, r)
	}))

	// Company letterhead routes
	http.Handle("/company", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.Save(w, r)
		case http.MethodGet:
			companyHandler.Get(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}
