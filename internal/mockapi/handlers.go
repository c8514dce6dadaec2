package mockapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"orderdesk/internal/models"
)

var errInvalidPaging = errors.New("invalid _page/_limit parameter")

// Health represents the health check response
type Health struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// healthCheckHandler handles the health check endpoint
func (s *Server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	health := Health{
		Status:    "ok",
		Version:   "0.1.0",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	s.respondWithJSON(w, http.StatusOK, health)
}

// getOrdersHandler returns the order list, optionally narrowed by
// customer_id and status and sliced by _page/_limit. The response is a flat
// JSON array; there is no pagination metadata.
func (s *Server) getOrdersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result := s.orders

	if customerID := q.Get("customer_id"); customerID != "" {
		result = matchCustomer(result, customerID)
	}

	if status := q.Get("status"); status != "" {
		result = matchStatus(result, status)
	}

	if q.Get("_page") != "" || q.Get("_limit") != "" {
		page, limit, err := parsePaging(q.Get("_page"), q.Get("_limit"))

		if err != nil {
			s.respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		result = slicePage(result, page, limit)
	}

	if result == nil {
		result = []models.Order{}
	}

	s.respondWithJSON(w, http.StatusOK, result)
}

// getOrderDetailHandler returns a single order with its line items
func (s *Server) getOrderDetailHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])

	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	detail, ok := s.details[id]

	if !ok {
		s.respondWithError(w, http.StatusNotFound, "order not found")
		return
	}

	s.respondWithJSON(w, http.StatusOK, detail)
}

// matchCustomer keeps orders whose customer id or name contains the needle.
// The id is compared as a decimal string, the name case-insensitively.
func matchCustomer(orders []models.Order, needle string) []models.Order {
	lower := strings.ToLower(needle)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strconv.Itoa(o.CustomerID), needle) ||
			strings.Contains(strings.ToLower(o.CustomerName), lower) {
			out = append(out, o)
		}
	}
	return out
}

// matchStatus keeps orders with exactly the given status.
func matchStatus(orders []models.Order, status string) []models.Order {
	want := strings.ToLower(status)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.ToLower(string(o.Status)) == want {
			out = append(out, o)
		}
	}
	return out
}

func parsePaging(pageStr, limitStr string) (page, limit int, err error) {
	page, limit = 1, 10

	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, errInvalidPaging
		}
	}

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return 0, 0, errInvalidPaging
		}
	}

	return page, limit, nil
}

func slicePage(orders []models.Order, page, limit int) []models.Order {
	start := (page - 1) * limit
	if start >= len(orders) {
		return []models.Order{}
	}

	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}

	return orders[start:end]
}
