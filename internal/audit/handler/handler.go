package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dlvery/dlvery/internal/audit"
	userhttp "github.com/dlvery/dlvery/internal/user/delivery/http"
)

// AuditHandler exposes the audit trail to administrators
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// List handles GET /api/admin/audit-logs
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.recorder.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to list audit logs"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// RegisterRoutes registers audit routes behind the admin guard
func (h *AuditHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/audit-logs", userhttp.AdminMiddleware(h.List)).Methods("GET")
}
