package pettypes

import "context"

type Repository interface {
	AddPetType(p PetType) bool
	GetPetType(id string) (PetType, bool)
	ListPetTypes() []PetType
	// DeletePetTypeIfEmpty borra solo si no tiene mascotas, de forma atómica.
	// found=false => no existe; found && !deleted => tiene mascotas.
	DeletePetTypeIfEmpty(id string) (found, deleted bool)
	PetTypeExistsByName(name string) bool
}

// TaxonomyLookup resuelve familia/género/atributos/lifespan de una especie.
// Errores esperados: apperr server (upstream no-2xx) o malformed (especie desconocida).
type TaxonomyLookup interface {
	Lookup(ctx context.Context, species string) (Taxonomy, error)
}
