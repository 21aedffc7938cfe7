package httpapi

import (
	"encoding/json"
	"net/http"
	"sort"

	"hermes-jobs/internal/domain"
)

type SearchHandler struct {
	Search Searcher
}

// Query serves GET /api/search?q= and GET /api/v2/search?q=.
func (h SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := pageParams(q)

	result, err := h.Search.Search(r.Context(), q.Get("q"), page, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "search_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(result))
}

// Post serves POST /api/search with a {"query": ...} body.
func (h SearchHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	page, size := pageParams(r.URL.Query())
	result, err := h.Search.Search(r.Context(), req.Query, page, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "search_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(result))
}

// Structured serves POST /api/v2/search: the structured request translates
// onto the same criteria contract as free text.
func (h SearchHandler) Structured(w http.ResponseWriter, r *http.Request) {
	var req StructuredSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	criteria, err := req.toCriteria()
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_criteria", err.Error())
		return
	}

	page, size := pageParams(r.URL.Query())
	result, err := h.Search.SearchByCriteria(r.Context(), criteria, page, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "search_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(result))
}

// Options lists the catalog vocabulary for UI pickers.
func (h SearchHandler) Options(w http.ResponseWriter, r *http.Request) {
	cat := h.Search.Catalog()

	var res SearchOptionsResponse
	for _, s := range domain.Seniorities {
		res.Seniorities = append(res.Seniorities, string(s))
	}
	for _, a := range domain.Areas {
		res.Areas = append(res.Areas, string(a))
	}
	res.WorkModes = append(res.WorkModes, domain.WorkModes...)
	res.Stacks = append(res.Stacks, cat.Stacks()...)
	res.Locations = append(res.Locations, cat.Locations()...)
	sort.Strings(res.Stacks)
	sort.Strings(res.Locations)

	writeJSON(w, res)
}
