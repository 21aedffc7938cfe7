package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// pageParams reads page/size query params with sane bounds.
func pageParams(q url.Values) (page, size int) {
	page, _ = strconv.Atoi(q.Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ = strconv.Atoi(q.Get("size"))
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	// Handlers compute page*size offsets; clamp page so that never overflows.
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}
	return page, size
}
