package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"hermes-jobs/internal/domain"
)

type JobsHandler struct {
	Jobs     JobLister
	Importer Importer
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r.URL.Query())
	items, total, err := h.Jobs.ListActive(r.Context(), page*size, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(domain.Page{Items: items, Page: page, Size: size, Total: total}))
}

// ByDomain serves GET /api/jobs/domain/{domain}.
func (h JobsHandler) ByDomain(w http.ResponseWriter, r *http.Request) {
	dom := strings.TrimPrefix(r.URL.Path, "/api/jobs/domain/")
	if dom == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_domain", "domain is required")
		return
	}

	page, size := pageParams(r.URL.Query())
	items, total, err := h.Jobs.ListActiveByDomain(r.Context(), dom, page*size, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(domain.Page{Items: items, Page: page, Size: size, Total: total}))
}

// BySource serves GET /api/jobs/source/{source}.
func (h JobsHandler) BySource(w http.ResponseWriter, r *http.Request) {
	source := strings.TrimPrefix(r.URL.Path, "/api/jobs/source/")
	if source == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_source", "source is required")
		return
	}

	page, size := pageParams(r.URL.Query())
	items, total, err := h.Jobs.ListActiveBySource(r.Context(), source, page*size, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(domain.Page{Items: items, Page: page, Size: size, Total: total}))
}

// CompanySearch serves GET /api/jobs/search?q=, a plain company-contains
// lookup, not the ranked search.
func (h JobsHandler) CompanySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := pageParams(q)
	items, total, err := h.Jobs.SearchCompany(r.Context(), q.Get("q"), page*size, size)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, toPageResponse(domain.Page{Items: items, Page: page, Size: size, Total: total}))
}

// ImportDocuments serves POST /api/jobs/import with a full crawler batch.
func (h JobsHandler) ImportDocuments(w http.ResponseWriter, r *http.Request) {
	var req ImportDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	imported, err := h.Importer.ImportDocuments(r.Context(), req.Jobs)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "import_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"imported": imported})
}

// ImportURLs serves POST /api/jobs/import/urls.
func (h JobsHandler) ImportURLs(w http.ResponseWriter, r *http.Request) {
	var req ImportURLsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	imported, err := h.Importer.ImportURLs(r.Context(), req.URLs)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "import_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"imported": imported})
}
