package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxPlayersLimit caps the limit query parameter of the player list.
const maxPlayersLimit = 10000

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// pathParam returns a decoded chi URL parameter. Chi matches against
// RawPath when it is set, so only then is the parameter still escaped.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// handleHealth reports liveness and what is being served.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{
		"status":  "ok",
		"profile": s.data.Profile.Name,
		"players": len(s.data.Grouped),
	})
}

// handleDocument serves the grouped document exactly as the converter
// writes it.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.data.Document()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Write(doc)
}

// profileResponse describes the active profile to API clients.
type profileResponse struct {
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Shape    string   `json:"shape"`
	Fields   []string `json:"fields"`
	SeriesX  string   `json:"series_x,omitempty"`
	Document string   `json:"document"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p := s.data.Profile
	fields := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		fields[i] = f.OutputName()
	}
	writeJSON(w, r, profileResponse{
		Name:     p.Name,
		Key:      p.KeyColumn,
		Shape:    string(p.Shape),
		Fields:   fields,
		SeriesX:  p.SeriesX,
		Document: "/" + s.data.Name,
	})
}

// handleListPlayers returns player names for autocomplete.
// Query params: q (case-insensitive prefix), limit.
func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 0)
	if limit > maxPlayersLimit {
		limit = maxPlayersLimit
	}
	writeJSON(w, r, s.data.Players(r.URL.Query().Get("q"), limit))
}

// handlePlayer returns one player's records in input order.
func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	records, ok := s.data.Grouped[name]
	if !ok {
		respondError(w, r, fmt.Errorf("player not found: %s", name), http.StatusNotFound)
		return
	}
	writeJSON(w, r, records)
}

// handleSeries returns [x, y, name] points for one field of one player.
func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	points, err := s.data.Series(pathParam(r, "name"), pathParam(r, "field"))
	if err != nil {
		respondError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, r, points)
}
