package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	deliveryquery "github.com/dlvery/dlvery/internal/delivery/usecase/query"
	"github.com/dlvery/dlvery/internal/inventory/domain"
	"github.com/dlvery/dlvery/internal/inventory/usecase/command"
	"github.com/dlvery/dlvery/internal/inventory/usecase/query"
	"github.com/dlvery/dlvery/pkg/logger"
)

// InventoryHandler handles HTTP requests for inventory and the delivery
// tracking/report projections the inventory team owns
type InventoryHandler struct {
	createHandler *command.CreateInventoryHandler
	updateHandler *command.UpdateInventoryHandler
	deleteHandler *command.DeleteInventoryHandler
	assignHandler *command.AssignForDeliveryHandler
	importHandler *command.ImportInventoryHandler

	getHandler  *query.GetInventoryHandler
	listHandler *query.ListInventoryHandler

	trackBySKU     *deliveryquery.TrackBySKUHandler
	trackByAgent   *deliveryquery.TrackByAgentHandler
	deliveredGoods *deliveryquery.DeliveredReportHandler
	damagedGoods   *deliveryquery.DamagedReportHandler
	pendingByAgent *deliveryquery.PendingByAgentHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	inventoryRepo domain.InventoryRepository,
	deliveryRepo deliverydomain.DeliveryRepository,
	locks *command.SKULocks,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &InventoryHandler{
		createHandler:  command.NewCreateInventoryHandler(inventoryRepo),
		updateHandler:  command.NewUpdateInventoryHandler(inventoryRepo),
		deleteHandler:  command.NewDeleteInventoryHandler(inventoryRepo, deliveryRepo),
		assignHandler:  command.NewAssignForDeliveryHandler(inventoryRepo, deliveryRepo, locks),
		importHandler:  command.NewImportInventoryHandler(inventoryRepo),
		getHandler:     query.NewGetInventoryHandler(inventoryRepo),
		listHandler:    query.NewListInventoryHandler(inventoryRepo),
		trackBySKU:     deliveryquery.NewTrackBySKUHandler(deliveryRepo),
		trackByAgent:   deliveryquery.NewTrackByAgentHandler(deliveryRepo),
		deliveredGoods: deliveryquery.NewDeliveredReportHandler(deliveryRepo),
		damagedGoods:   deliveryquery.NewDamagedReportHandler(deliveryRepo),
		pendingByAgent: deliveryquery.NewPendingByAgentHandler(deliveryRepo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type inventoryRequest struct {
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Damaged           bool   `json:"damaged"`
	Perishable        bool   `json:"perishable"`
	ExpiryDate        string `json:"expiryDate"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// CreateInventory handles POST /api/inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.createHandler.Handle(r.Context(), command.CreateInventoryCommand{
		SKU:               req.SKU,
		Name:              req.Name,
		Category:          req.Category,
		Damaged:           req.Damaged,
		Perishable:        req.Perishable,
		ExpiryDate:        req.ExpiryDate,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Inventory created successfully", Data: item})
}

// ListInventory handles GET /api/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.listHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list inventory"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetInventory handles GET /api/inventory/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.getHandler.Handle(r.Context(), query.GetInventoryQuery{ID: id})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: item})
}

// UpdateInventory handles PUT /api/inventory/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateInventoryCommand{
		ID:                id,
		SKU:               req.SKU,
		Name:              req.Name,
		Category:          req.Category,
		Damaged:           req.Damaged,
		Perishable:        req.Perishable,
		ExpiryDate:        req.ExpiryDate,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Inventory updated successfully", Data: item})
}

// DeleteInventory handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteInventoryCommand{ID: id}); err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Inventory deleted successfully"})
}

// UploadInventory handles POST /api/inventory/upload
func (h *InventoryHandler) UploadInventory(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Missing file upload"})
		return
	}
	defer file.Close()

	imported, err := h.importHandler.Handle(r.Context(), command.ImportInventoryCommand{Reader: file})
	if err != nil {
		var importErr *domain.ImportError
		if errors.As(err, &importErr) {
			// Rows written before the bad line stay persisted; report both.
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   importErr.Error(),
				Data:    map[string]interface{}{"imported": imported},
			})
			return
		}
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory imported successfully",
		Data:    map[string]interface{}{"imported": imported, "count": len(imported)},
	})
}

// AssignForDelivery handles POST /api/inventory/assign
func (h *InventoryHandler) AssignForDelivery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU          string `json:"sku"`
		Quantity     int    `json:"quantity"`
		AgentID      string `json:"agentId"`
		CustomerName string `json:"customerName"`
		Address      string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	delivery, err := h.assignHandler.Handle(r.Context(), command.AssignForDeliveryCommand{
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		AgentID:      req.AgentID,
		CustomerName: req.CustomerName,
		Address:      req.Address,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Assigned for delivery", Data: delivery})
}

// TrackBySKU handles GET /api/inventory/track/sku/{sku}
func (h *InventoryHandler) TrackBySKU(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.trackBySKU.Handle(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: deliveries})
}

// TrackByAgent handles GET /api/inventory/track/agent/{agentId}
func (h *InventoryHandler) TrackByAgent(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.trackByAgent.Handle(r.Context(), mux.Vars(r)["agentId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: deliveries})
}

// ReportDelivered handles GET /api/inventory/report/delivered
func (h *InventoryHandler) ReportDelivered(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveredGoods.Handle(r.Context(), deliveryquery.DeliveredReportQuery{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: deliveries})
}

// ReportDamaged handles GET /api/inventory/report/damaged
func (h *InventoryHandler) ReportDamaged(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.damagedGoods.Handle(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: deliveries})
}

// ReportPendingByAgent handles GET /api/inventory/report/pending/{agentId}
func (h *InventoryHandler) ReportPendingByAgent(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.pendingByAgent.Handle(r.Context(), mux.Vars(r)["agentId"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: deliveries})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.metricsMiddleware("/api/inventory", h.ListInventory)).Methods("GET")
	router.HandleFunc("/api/inventory", h.metricsMiddleware("/api/inventory", h.CreateInventory)).Methods("POST")
	router.HandleFunc("/api/inventory/upload", h.metricsMiddleware("/api/inventory/upload", h.UploadInventory)).Methods("POST")
	router.HandleFunc("/api/inventory/assign", h.metricsMiddleware("/api/inventory/assign", h.AssignForDelivery)).Methods("POST")
	router.HandleFunc("/api/inventory/track/sku/{sku}", h.metricsMiddleware("/api/inventory/track/sku", h.TrackBySKU)).Methods("GET")
	router.HandleFunc("/api/inventory/track/agent/{agentId}", h.metricsMiddleware("/api/inventory/track/agent", h.TrackByAgent)).Methods("GET")
	router.HandleFunc("/api/inventory/report/delivered", h.metricsMiddleware("/api/inventory/report/delivered", h.ReportDelivered)).Methods("GET")
	router.HandleFunc("/api/inventory/report/damaged", h.metricsMiddleware("/api/inventory/report/damaged", h.ReportDamaged)).Methods("GET")
	router.HandleFunc("/api/inventory/report/pending/{agentId}", h.metricsMiddleware("/api/inventory/report/pending", h.ReportPendingByAgent)).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", h.metricsMiddleware("/api/inventory/{id}", h.GetInventory)).Methods("GET")
	router.HandleFunc("/api/inventory/{id}", h.metricsMiddleware("/api/inventory/{id}", h.UpdateInventory)).Methods("PUT")
	router.HandleFunc("/api/inventory/{id}", h.metricsMiddleware("/api/inventory/{id}", h.DeleteInventory)).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "Service is healthy"})
	}).Methods("GET")
}

func (h *InventoryHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, deliverydomain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicateSKU) || errors.Is(err, domain.ErrActiveDeliveriesExist):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	default:
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
