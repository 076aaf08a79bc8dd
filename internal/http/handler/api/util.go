package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/go-x/slogx"
)

func getQueryPage(query url.Values, defaultValue int) int {
	return getQueryInt(query, "page", defaultValue)
}

func getQueryLimit(query url.Values, defaultValue int) int {
	return getQueryInt(query, "limit", defaultValue)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int) {
	writeJSON(w, r, statusCode, ErrorResponse{Error: http.StatusText(statusCode)})
}
