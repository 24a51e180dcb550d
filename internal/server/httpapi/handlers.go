package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophfund/internal/cards"
	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/services"
)

const (
	msgListFailed   = "Failed to fetch campaigns"
	msgNotFound     = "Campaign not found"
	msgFetchFailed  = "Failed to fetch content"
	msgUnknownKind  = "Unknown card kind"
	msgTooManyCalls = "Too many requests"
)

func (s *HTTPServer) listCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := services.ParsePageRequest(q.Get("offset"), q.Get("limit"), q.Get("filter"))

	page, err := s.catalog.ListCampaigns(r.Context(), req)
	if err != nil {
		s.logger.Error(r.Context(), "list campaigns failed", "filter", req.Filter, "offset", req.Offset, "error", err)
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}
	if page.Campaigns == nil {
		page.Campaigns = []models.CampaignSummary{}
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *HTTPServer) getCampaign(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	view, err := s.catalog.GetCampaign(r.Context(), slug)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		s.logger.Error(r.Context(), "get campaign failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *HTTPServer) featured(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Featured(r.Context())
	if err != nil {
		s.queryFailed(w, r, "featured", err)
		return
	}
	writeItems(w, items)
}

func (s *HTTPServer) urgent(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Urgent(r.Context())
	if err != nil {
		s.queryFailed(w, r, "urgent", err)
		return
	}
	writeItems(w, items)
}

func (s *HTTPServer) categories(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Categories(r.Context())
	if err != nil {
		s.queryFailed(w, r, "categories", err)
		return
	}
	writeItems(w, items)
}

func (s *HTTPServer) cards(w http.ResponseWriter, r *http.Request) {
	kind, ok := cards.ParseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, msgUnknownKind)
		return
	}
	items, err := s.catalog.Cards(r.Context(), kind)
	if err != nil {
		s.queryFailed(w, r, "cards", err)
		return
	}
	writeItems(w, items)
}

// writeItems answers the simple collection routes: a JSON array, never null.
func writeItems[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *HTTPServer) queryFailed(w http.ResponseWriter, r *http.Request, route string, err error) {
	s.logger.Error(r.Context(), "query failed", "route", route, "error", err)
	writeError(w, http.StatusInternalServerError, msgFetchFailed)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, models.ErrorResponse{Error: msg})
}
