package httputil

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RespondJSON sends a JSON response. The body is encoded before the status
// is written so that an unencodable value becomes a 500 instead of an empty 200.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		zap.L().Warn("Error encoding response", zap.Error(err))
		buf.Reset()
		buf.WriteString(`{"error":"internal error"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zap.L().Debug("Error writing response", zap.Error(err))
	}
}

// RespondError sends a JSON error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}
