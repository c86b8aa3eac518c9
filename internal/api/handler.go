package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"pharmacare/m/internal/orders"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	db     *sqlx.DB
	orders *orders.Service
	log    *zap.Logger
}

// New constructs a Handler.
func New(db *sqlx.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, orders: orders.NewService(db, log), log: log}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Change "*" to a list of allowed domains (e.g., ["http://localhost:3000"])
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Put("/{id}", h.updateProduct)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.createCustomer)
		r.Get("/", h.listCustomers)
		r.Put("/{id}", h.updateCustomer)
	})

	r.Route("/suppliers", func(r chi.Router) {
		r.Post("/", h.createSupplier)
		r.Get("/", h.listSuppliers)
		r.Put("/{id}", h.updateSupplier)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Post("/", h.createSalesTransaction)
		r.Get("/", h.listSalesTransactions)
		r.Get("/{id}", h.getSalesTransaction)
	})

	r.Route("/prescriptions", func(r chi.Router) {
		r.Post("/", h.createPrescription)
		r.Get("/", h.listPrescriptions)
		r.Get("/{id}", h.getPrescription)
		r.Put("/{id}", h.updatePrescription)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondOrderError maps the typed failures of the order workflows onto HTTP
// statuses. Anything untyped is a store failure.
func (h *Handler) respondOrderError(w http.ResponseWriter, err error) {
	var invalid *orders.InvalidInputError
	var notFound *orders.ProductNotFoundError
	var stock *orders.InsufficientStockError
	switch {
	case errors.As(err, &invalid):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &stock):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("order workflow failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "unable to process order")
	}
}

// Helpers

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func nullIfEmpty(val *string) *string {
	if val == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
