package pets

import (
	"context"

	"pet-store-inventory/internal/domain/pettypes"
	"pet-store-inventory/internal/domain/pictures"
)

// Repository: todas las búsquedas por nombre ignoran mayúsculas.
type Repository interface {
	GetPetType(id string) (pettypes.PetType, bool)

	AddPet(petTypeID string, p Pet) bool
	GetPet(petTypeID, name string) (Pet, bool)
	ListPets(petTypeID string) []Pet
	UpdatePet(petTypeID, oldName string, p Pet) bool
	DeletePet(petTypeID, name string) bool
	PetExists(petTypeID, name string) bool
}

// PictureResolver es el workflow de cache de imágenes (pictures.Service).
type PictureResolver interface {
	Resolve(ctx context.Context, rawURL, petName, petType string) (pictures.Resolved, error)
}

// PictureStore es la parte del store de imágenes que muta el workflow de mascotas.
type PictureStore interface {
	// SavePictureFor guarda data como filename para la mascota (petTypeID, petName).
	// Devuelve false sin tocar nada si otra mascota ya referencia filename.
	SavePictureFor(petTypeID, petName, filename string, data []byte) bool
	GetPicture(filename string) ([]byte, bool)
	ReleasePicture(filename string) bool
	DeleteURLMapping(url string)
}
