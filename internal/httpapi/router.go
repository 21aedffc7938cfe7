package httpapi

import "net/http"

const (
	v1SunsetDate   = "Wed, 31 Dec 2026 23:59:59 GMT"
	deprecationDoc = "https://example.com/docs/api/versioning"
)

// NewMux wires all routes. Both API versions land on the same search core;
// only the wire shapes differ.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	deprecated := Deprecation(v1SunsetDate, deprecationDoc)
	importGuard := func(h http.HandlerFunc) http.HandlerFunc {
		return Chain(h, RateLimit(d.ImportLimiter), BearerAuth(d.ImportToken)).ServeHTTP
	}

	// Search, v1 (deprecated) and v2.
	sh := SearchHandler{Search: d.Search}
	mux.HandleFunc("/api/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  deprecated(http.HandlerFunc(sh.Query)).ServeHTTP,
		http.MethodPost: deprecated(http.HandlerFunc(sh.Post)).ServeHTTP,
	}))
	mux.HandleFunc("/api/v2/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  sh.Query,
		http.MethodPost: sh.Structured,
	}))
	mux.HandleFunc("/api/search/options", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Options,
	}))

	// Jobs
	jh := JobsHandler{Jobs: d.Jobs, Importer: d.Importer}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/jobs/domain/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.ByDomain,
	}))
	mux.HandleFunc("/api/jobs/source/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.BySource,
	}))
	mux.HandleFunc("/api/jobs/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.CompanySearch,
	}))
	mux.HandleFunc("/api/jobs/import", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: importGuard(jh.ImportDocuments),
	}))
	mux.HandleFunc("/api/jobs/import/urls", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: importGuard(jh.ImportURLs),
	}))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets
	sec := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/import-token", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sec.SetImportToken,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
