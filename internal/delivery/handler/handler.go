package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dlvery/dlvery/internal/audit"
	"github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/internal/delivery/usecase/command"
	"github.com/dlvery/dlvery/internal/delivery/usecase/query"
	userhttp "github.com/dlvery/dlvery/internal/user/delivery/http"
)

// DeliveryHandler handles HTTP requests for delivery records
type DeliveryHandler struct {
	addHandler    *command.AddDeliveryHandler
	updateHandler *command.UpdateDeliveryHandler
	trackByAgent  *query.TrackByAgentHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(repo domain.DeliveryRepository, recorder *audit.Recorder, events command.EventPublisher) *DeliveryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_service_requests_total",
			Help: "Total number of requests to delivery endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_service_request_duration_seconds",
			Help:    "Duration of delivery requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &DeliveryHandler{
		addHandler:     command.NewAddDeliveryHandler(repo, recorder, events),
		updateHandler:  command.NewUpdateDeliveryHandler(repo, recorder, events),
		trackByAgent:   query.NewTrackByAgentHandler(repo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type deliveryRequest struct {
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	AgentID      string `json:"agentId"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	DeliveryDate string `json:"deliveryDate"`
}

// AddDelivery handles POST /api/delivery
func (h *DeliveryHandler) AddDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery, err := h.addHandler.Handle(r.Context(), command.AddDeliveryCommand{
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		AgentID:      req.AgentID,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Status:       req.Status,
		DeliveryDate: req.DeliveryDate,
		ActorID:      userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, delivery)
}

// UpdateDelivery handles PUT /api/delivery/{id}
func (h *DeliveryHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req deliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery, err := h.updateHandler.Handle(r.Context(), command.UpdateDeliveryCommand{
		ID:           id,
		SKU:          req.SKU,
		Quantity:     req.Quantity,
		AgentID:      req.AgentID,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Status:       req.Status,
		DeliveryDate: req.DeliveryDate,
		ActorID:      userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, delivery)
}

// GetByAgent handles GET /api/delivery/agent/{agentId}
func (h *DeliveryHandler) GetByAgent(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.trackByAgent.Handle(r.Context(), mux.Vars(r)["agentId"])
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, deliveries)
}

func (h *DeliveryHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusBadRequest, err.Error())
	}
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
func (h *DeliveryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers delivery routes. Mutations require an
// authenticated actor for the audit trail.
func (h *DeliveryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/delivery", userhttp.AuthMiddleware(h.metricsMiddleware("/api/delivery", h.AddDelivery))).Methods("POST")
	router.HandleFunc("/api/delivery/agent/{agentId}", h.metricsMiddleware("/api/delivery/agent", h.GetByAgent)).Methods("GET")
	router.HandleFunc("/api/delivery/{id}", userhttp.AuthMiddleware(h.metricsMiddleware("/api/delivery/{id}", h.UpdateDelivery))).Methods("PUT")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
