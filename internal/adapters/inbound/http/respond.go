package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode, resp := toErrorResp(err)
	respondJSON(w, statusCode, resp)
}

// decodeBody decodes a JSON request body, answering 400 when it is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, gen.ErrorResp{
			Error:  errInputInvalid,
			Detail: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
