package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
)

type Handlers struct {
	Search  *app.SearchService
	Compare *app.CompareService
	Geo     domain.Geocoder
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels/search", h.searchHotels)
	s.mux.Get("/v1/hotels/by-city", h.searchByCity)
	s.mux.Get("/v1/locations", h.searchLocations)
	s.mux.Get("/v1/filters", h.listFilters)

	s.mux.Route("/v1/compare/{clientID}", func(r chi.Router) {
		r.Get("/", h.listSelection)
		r.Delete("/", h.clearSelection)
		r.Post("/hotels", h.addToSelection)
		r.Delete("/hotels/{hotelID}", h.removeFromSelection)
		r.Post("/toggle", h.toggleSelection)
		r.Get("/ranked", h.rankedSelection)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeSearchFailure maps the error taxonomy onto HTTP statuses: missing
// credentials and rejected credentials are surfaced as-is, a terminal search
// failure carries the best upstream detail.
func writeSearchFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		writeProblem(w, http.StatusInternalServerError, "Not Configured", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusBadGateway, "Upstream Authentication Failed", err.Error())
	default:
		var se *domain.SearchError
		if errors.As(err, &se) {
			writeProblem(w, http.StatusBadGateway, "Search Failed", se.Error())
			return
		}
		writeProblem(w, http.StatusBadGateway, "Search Failed", "hotel search failed")
	}
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := domain.SearchParams{
		CityCode:     q.Get("cityCode"),
		Adults:       intParam(q.Get("adults"), 1),
		CheckInDate:  q.Get("checkInDate"),
		CheckOutDate: q.Get("checkOutDate"),
		Page:         intParam(q.Get("page"), 1),
		PageSize:     intParam(q.Get("pageSize"), 0),
	}

	loc := domain.SearchLocation{Name: q.Get("locationName")}
	if lat, err := strconv.ParseFloat(q.Get("latitude"), 64); err == nil {
		loc.Latitude = &lat
	}
	if lon, err := strconv.ParseFloat(q.Get("longitude"), 64); err == nil {
		loc.Longitude = &lon
	}
	if loc.Latitude != nil || loc.Longitude != nil || loc.Name != "" {
		params.Location = &loc
	}

	env, err := h.Search.Search(r.Context(), params)
	if err != nil {
		writeSearchFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (h *Handlers) searchByCity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := q.Get("city")
	country := q.Get("country")
	if city == "" && country == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "city or country is required")
		return
	}
	res, err := h.Search.SearchByCity(r.Context(), city, country, domain.CitySearchParams{
		Adults:       intParam(q.Get("adults"), 1),
		CheckInDate:  q.Get("checkInDate"),
		CheckOutDate: q.Get("checkOutDate"),
	})
	if err != nil {
		writeSearchFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) searchLocations(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "q is required")
		return
	}
	places, err := h.Geo.Search(r.Context(), query)
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Geocoding Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": places})
}

// Filter sets per role. The identity provider is an external collaborator:
// its role claim only gates which filters render, so the claim is read
// without signature verification here.
var (
	userFilters  = []string{"price", "rating", "distance"}
	adminFilters = []string{"price", "rating", "distance", "reviewCount", "hotelSource"}
)

func (h *Handlers) listFilters(w http.ResponseWriter, r *http.Request) {
	role := "user"
	if raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		if claims := parseRoleClaims(raw); claims != "" {
			role = claims
		}
	}
	filters := userFilters
	if role == "admin" {
		filters = adminFilters
	}
	writeJSON(w, http.StatusOK, map[string]any{"role": role, "filters": filters})
}

func parseRoleClaims(raw string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// ---- comparison selection ----

func (h *Handlers) listSelection(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	writeJSON(w, http.StatusOK, map[string]any{"selected": h.Compare.List(r.Context(), clientID)})
}

func (h *Handlers) addToSelection(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	var hotel domain.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil || hotel.ID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Hotel", "body must be a hotel with a non-empty id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"selected": h.Compare.Add(r.Context(), clientID, hotel)})
}

func (h *Handlers) removeFromSelection(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	hotelID := chi.URLParam(r, "hotelID")
	writeJSON(w, http.StatusOK, map[string]any{"selected": h.Compare.Remove(r.Context(), clientID, hotelID)})
}

func (h *Handlers) toggleSelection(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	var hotel domain.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil || hotel.ID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Hotel", "body must be a hotel with a non-empty id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"selected": h.Compare.Toggle(r.Context(), clientID, hotel)})
}

func (h *Handlers) clearSelection(w http.ResponseWriter, r *http.Request) {
	h.Compare.Clear(r.Context(), chi.URLParam(r, "clientID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) rankedSelection(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	writeJSON(w, http.StatusOK, h.Compare.Ranked(r.Context(), clientID))
}

func intParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
