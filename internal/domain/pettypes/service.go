package pettypes

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/ids"
	"pet-store-inventory/internal/platform/logger"
)

type Service struct {
	repo     Repository
	taxonomy TaxonomyLookup
	ids      ids.Generator
	log      *zap.Logger

	// createMu serializa el "exists? -> insert" de Create (el lookup queda afuera).
	createMu sync.Mutex
}

func NewService(repo Repository, taxonomy TaxonomyLookup, gen ids.Generator, log *zap.Logger) *Service {
	if gen == nil {
		gen = ids.NewSequential()
	}
	return &Service{
		repo:     repo,
		taxonomy: taxonomy,
		ids:      gen,
		log:      logger.OrNop(log).Named("pettypes"),
	}
}

func (s *Service) Create(ctx context.Context, species string) (PetType, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return PetType{}, apperr.Malformedf("species name required")
	}

	// Falla rápido, sin ir al upstream.
	if s.repo.PetTypeExistsByName(species) {
		return PetType{}, apperr.Malformedf("pet type %q already exists", species)
	}

	tax, err := s.taxonomy.Lookup(ctx, species)
	if err != nil {
		s.log.Warn("taxonomy lookup failed", zap.String("species", species), zap.Error(err))
		return PetType{}, apperr.OrServer(err)
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	// Otro request pudo crearla mientras esperábamos el lookup.
	if s.repo.PetTypeExistsByName(species) {
		return PetType{}, apperr.Malformedf("pet type %q already exists", species)
	}

	pt := PetType{
		ID:         s.ids.Next(),
		Type:       species,
		Family:     tax.Family,
		Genus:      tax.Genus,
		Attributes: tax.Attributes,
		Lifespan:   tax.Lifespan,
		PetNames:   []string{},
	}
	if pt.Attributes == nil {
		pt.Attributes = []string{}
	}

	if !s.repo.AddPetType(pt) {
		return PetType{}, apperr.Server("pet type id already in use", nil)
	}

	s.log.Info("pet type created", zap.String("id", pt.ID), zap.String("type", pt.Type))
	return pt, nil
}

func (s *Service) GetByID(_ context.Context, id string) (PetType, error) {
	pt, ok := s.repo.GetPetType(id)
	if !ok {
		return PetType{}, apperr.NotFound()
	}
	return pt, nil
}

func (s *Service) List(_ context.Context) ([]PetType, error) {
	return s.repo.ListPetTypes(), nil
}

// Delete falla con malformed si la especie todavía tiene mascotas.
// El chequeo y el borrado son una sola operación del store.
func (s *Service) Delete(_ context.Context, id string) error {
	found, deleted := s.repo.DeletePetTypeIfEmpty(id)
	if !found {
		return apperr.NotFound()
	}
	if !deleted {
		return apperr.Malformedf("pet type %s still has pets", id)
	}

	s.log.Info("pet type deleted", zap.String("id", id))
	return nil
}
