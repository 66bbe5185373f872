package respond

import (
	"encoding/json"
	"net/http"

	"pet-store-inventory/internal/platform/apperr"
)

// Códigos cortos visibles en el body {"error": ...}.
const (
	CodeNotFound    = "Not found"
	CodeMalformed   = "Malformed data"
	CodeUnsupported = "Unsupported Media Type"
)

// JSON escribe v con el status dado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error traduce un error de workflow a status + body.
func Error(w http.ResponseWriter, err error) {
	status, body := Translate(err)
	JSON(w, status, body)
}

func Translate(err error) (int, map[string]string) {
	e, ok := apperr.As(err)
	if !ok {
		return http.StatusInternalServerError, map[string]string{"server_error": err.Error()}
	}

	switch e.Kind {
	case apperr.KindNotFound:
		return http.StatusNotFound, map[string]string{"error": CodeNotFound}
	case apperr.KindMalformed:
		return http.StatusBadRequest, map[string]string{"error": CodeMalformed}
	case apperr.KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType, map[string]string{"error": CodeUnsupported}
	default:
		msg := e.Msg
		if msg == "" && e.Err != nil {
			msg = e.Err.Error()
		}
		if msg == "" {
			msg = "internal error"
		}
		return http.StatusInternalServerError, map[string]string{"server_error": msg}
	}
}
