package pettypes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet-types", func(pr chi.Router) {
		pr.Post("/", createPetTypeHandler(svc))
		pr.Get("/", listPetTypesHandler(svc))
		pr.Get("/{id}", getPetTypeHandler(svc))
		pr.Delete("/{id}", deletePetTypeHandler(svc))
	})
}

// createPetTypeRequest acepta "type" (nombre original del campo) o "species".
type createPetTypeRequest struct {
	Type    string `json:"type"`
	Species string `json:"species"`
}

func (r createPetTypeRequest) name() string {
	if strings.TrimSpace(r.Type) != "" {
		return r.Type
	}
	return r.Species
}

// PetTypeResponse es la representación pública de una especie.
type PetTypeResponse struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Family     string   `json:"family"`
	Genus      string   `json:"genus"`
	Attributes []string `json:"attributes"`
	Lifespan   *int     `json:"lifespan"`
	Pets       []string `json:"pets"`
}

// createPetTypeHandler godoc
// @Summary Crear especie
// @Description Crea una especie consultando el servicio de taxonomía. El nombre es único sin distinguir mayúsculas.
// @Tags pet-types
// @Accept json
// @Produce json
// @Param payload body createPetTypeRequest true "Nombre de la especie (type o species)"
// @Success 201 {object} PetTypeResponse
// @Failure 400 {object} map[string]string "Malformed data"
// @Failure 500 {object} map[string]string "server_error"
// @Router /pet-types [post]
func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apperr.Malformed(err))
			return
		}

		pt, err := svc.Create(r.Context(), req.name())
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(pt))
	}
}

// listPetTypesHandler godoc
// @Summary Listar especies
// @Tags pet-types
// @Produce json
// @Success 200 {array} PetTypeResponse
// @Router /pet-types [get]
func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]PetTypeResponse, 0, len(items))
		for _, pt := range items {
			out = append(out, ToResponse(pt))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getPetTypeHandler godoc
// @Summary Obtener especie
// @Tags pet-types
// @Produce json
// @Param id path string true "ID de la especie"
// @Success 200 {object} PetTypeResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /pet-types/{id} [get]
func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pt, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(pt))
	}
}

// deletePetTypeHandler godoc
// @Summary Borrar especie
// @Description Solo se puede borrar una especie sin mascotas.
// @Tags pet-types
// @Param id path string true "ID de la especie"
// @Success 204
// @Failure 400 {object} map[string]string "Malformed data (tiene mascotas)"
// @Failure 404 {object} map[string]string "Not found"
// @Router /pet-types/{id} [delete]
func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respond.Error(w, err)
			return
		}
		respond.NoContent(w)
	}
}

func ToResponse(pt PetType) PetTypeResponse {
	attrs := pt.Attributes
	if attrs == nil {
		attrs = []string{}
	}
	names := pt.PetNames
	if names == nil {
		names = []string{}
	}
	return PetTypeResponse{
		ID:         pt.ID,
		Type:       pt.Type,
		Family:     pt.Family,
		Genus:      pt.Genus,
		Attributes: attrs,
		Lifespan:   pt.Lifespan,
		Pets:       names,
	}
}
