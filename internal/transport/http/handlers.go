package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jacksrivastava/shortly/internal/domain"
	"github.com/jacksrivastava/shortly/internal/service"
)

// Handler holds the HTTP handlers for the URL shortener
type Handler struct {
	links   service.LinkService
	baseURL string
}

// NewHandler creates a new HTTP handler
func NewHandler(links service.LinkService, baseURL string) *Handler {
	return &Handler{
		links:   links,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Shorten handles POST /api/shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Invalid JSON in shorten request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	link, err := h.links.Shorten(r.Context(), req.LongURL, req.CustomCode)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case domain.IsConflict(err):
			http.Error(w, "Custom code already taken", http.StatusConflict)
		default:
			log.Printf("[ERROR] Failed to shorten '%s': %v", req.LongURL, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := domain.ShortenResponse{
		ShortCode: link.ShortCode,
		ShortURL:  h.baseURL + "/" + link.ShortCode,
		LongURL:   link.LongURL,
		CreatedAt: link.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// ListLinks handles GET /api/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	links, err := h.links.GetAllLinks(r.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to list links: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(links); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetStats handles GET /api/stats/{shortCode}
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	shortCode := strings.TrimPrefix(r.URL.Path, "/api/stats/")
	if shortCode == "" {
		http.Error(w, "Short code is required", http.StatusBadRequest)
		return
	}

	link, err := h.links.GetLinkInfo(r.Context(), shortCode)
	if err != nil {
		if domain.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		log.Printf("[ERROR] Failed to get stats for code '%s': %v", shortCode, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(link); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// Redirect handles GET /{shortCode} - redirects to the long URL
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := strings.TrimPrefix(r.URL.Path, "/")
	if shortCode == "" || strings.HasPrefix(shortCode, "api/") {
		http.NotFound(w, r)
		return
	}

	link, err := h.links.Resolve(r.Context(), shortCode)
	if err != nil {
		if domain.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		log.Printf("[ERROR] Failed to resolve code '%s': %v", shortCode, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, link.LongURL, http.StatusFound)
}
