package pictures

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pet-store-inventory/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pictures/{filename}", getPictureHandler(svc))
}

// getPictureHandler godoc
// @Summary Obtener imagen
// @Description Devuelve los bytes de una imagen cacheada. El Content-Type sale de la extensión.
// @Tags pictures
// @Produce png
// @Produce jpeg
// @Param filename path string true "Nombre del archivo (p.ej. tom-cat.jpg)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not found"
// @Failure 415 {object} map[string]string "Unsupported Media Type"
// @Router /pictures/{filename} [get]
func getPictureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ct, err := svc.Get(r.Context(), chi.URLParam(r, "filename"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", ct)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
