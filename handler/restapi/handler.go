package restapi

import (
	"encoding/json"
	"go.uber.org/zap"
	"net/http"
)

// Respond - helper function for responding with only status code
func Respond(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// RespondWithText - helper function for responding with plain text message in body
func RespondWithText(w http.ResponseWriter, code int, message string, logError *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(message)); err != nil {
		logError.Errorw("Error writing response", "err", err)
	}
}

// RespondWithBody - helper function for responding with payload encoded as JSON
func RespondWithBody(w http.ResponseWriter, code int, payload interface{}, logError *zap.SugaredLogger) {
	encodedResponse, err := json.Marshal(payload)
	if err != nil {
		logError.Errorw("Error encoding response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(encodedResponse); err != nil {
		logError.Errorw("Error writing response", "err", err)
	}
}
