package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"hermes-jobs/internal/config"
	"hermes-jobs/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setImportTokenReq struct {
	Token string `json:"token"`
}

func (h SecretsHandler) SetImportToken(w http.ResponseWriter, r *http.Request) {
	var req setImportTokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetImportToken(cfg.Import.TokenAccount, req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "store_failed", "failed to store token: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
