package pets

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet-types/{id}/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{name}", getPetHandler(svc))
		pr.Put("/{name}", updatePetHandler(svc))
		pr.Delete("/{name}", deletePetHandler(svc))
	})
}

// petRequest es el body de POST y PUT.
// "picture-url" se acepta como alias de "picture_url".
type petRequest struct {
	Name            string `json:"name"`
	Birthdate       string `json:"birthdate"`
	PictureURL      string `json:"picture_url"`
	PictureURLAlias string `json:"picture-url"`
}

func (r petRequest) toInput() Input {
	pic := r.PictureURL
	if strings.TrimSpace(pic) == "" {
		pic = r.PictureURLAlias
	}
	return Input{
		Name:       r.Name,
		Birthdate:  r.Birthdate,
		PictureURL: pic,
	}
}

type PetResponse struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
	Picture   string `json:"picture"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota en la especie. Si viene picture_url, la imagen se descarga; si falla, la mascota no se crea.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "ID de la especie"
// @Param payload body petRequest true "name requerido; birthdate DD-MM-YYYY opcional"
// @Success 201 {object} PetResponse
// @Failure 400 {object} map[string]string "Malformed data"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 415 {object} map[string]string "Unsupported Media Type"
// @Router /pet-types/{id}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apperr.Malformed(err))
			return
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "id"), req.toInput())
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas de una especie
// @Description Filtros opcionales (exclusivos) por birthdate en DD-MM-YYYY. Un filtro inválido se ignora.
// @Tags pets
// @Produce json
// @Param id path string true "ID de la especie"
// @Param birthdateGT query string false "Nacidas después de (DD-MM-YYYY)"
// @Param birthdateLT query string false "Nacidas antes de (DD-MM-YYYY)"
// @Success 200 {array} PetResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /pet-types/{id}/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := ParseListFilter(q.Get("birthdateGT"), q.Get("birthdateLT"))

		items, err := svc.List(r.Context(), chi.URLParam(r, "id"), filter)
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "id"), nameParam(r))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza nombre y birthdate (omitido => "unknown"). Con picture_url nueva, la imagen anterior se libera.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "ID de la especie"
// @Param name path string true "Nombre actual (sin distinguir mayúsculas)"
// @Param payload body petRequest true "Datos nuevos"
// @Success 200 {object} PetResponse
// @Failure 400 {object} map[string]string "Malformed data"
// @Failure 404 {object} map[string]string "Not found"
// @Router /pet-types/{id}/pets/{name} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apperr.Malformed(err))
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "id"), nameParam(r), req.toInput())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id"), nameParam(r)); err != nil {
			respond.Error(w, err)
			return
		}
		respond.NoContent(w)
	}
}

// nameParam: chi rutea sobre RawPath cuando existe (p.ej. con %2F), y ahí el
// parámetro llega escapado. Sin RawPath ya viene decodificado.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func toPetResponse(p Pet) PetResponse {
	return PetResponse{
		Name:      p.Name,
		Birthdate: p.Birthdate,
		Picture:   p.Picture,
	}
}
