package pets

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pet-store-inventory/internal/domain/pictures"
	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/logger"
)

type Service struct {
	repo     Repository
	pictures PictureStore
	resolver PictureResolver
	log      *zap.Logger
}

func NewService(repo Repository, pics PictureStore, resolver PictureResolver, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		pictures: pics,
		resolver: resolver,
		log:      logger.OrNop(log).Named("pets"),
	}
}

// Input sirve para create y update. Birthdate vacío => "unknown".
type Input struct {
	Name       string
	Birthdate  string
	PictureURL string
}

func (in Input) birthdate() string {
	if bd := strings.TrimSpace(in.Birthdate); bd != "" {
		return bd
	}
	return BirthdateUnknown
}

// Create inserta primero la mascota sin imagen y después intenta la descarga.
// Si la descarga falla se deshace todo: mascota, imagen y mapeo URL.
func (s *Service) Create(ctx context.Context, petTypeID string, in Input) (Pet, error) {
	pt, ok := s.repo.GetPetType(petTypeID)
	if !ok {
		return Pet{}, apperr.NotFound()
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, apperr.Malformedf("pet name required")
	}
	if s.repo.PetExists(petTypeID, name) {
		return Pet{}, apperr.Malformedf("pet %q already exists", name)
	}

	p := Pet{
		Name:      name,
		Birthdate: in.birthdate(),
		Picture:   NoPicture,
	}
	if !s.repo.AddPet(petTypeID, p) {
		// Carrera: la especie se borró o alguien creó el mismo nombre.
		if _, ok := s.repo.GetPetType(petTypeID); !ok {
			return Pet{}, apperr.NotFound()
		}
		return Pet{}, apperr.Malformedf("pet %q already exists", name)
	}

	url := strings.TrimSpace(in.PictureURL)
	if url == "" {
		s.log.Info("pet created", zap.String("pet_type_id", petTypeID), zap.String("name", name))
		return p, nil
	}

	res, err := s.resolver.Resolve(ctx, url, name, pt.Type)
	if err != nil {
		s.rollbackCreate(petTypeID, name, url, "")
		return Pet{}, apperr.OrMalformed(err)
	}

	saved := ""
	if !res.Cached() {
		if !s.pictures.SavePictureFor(petTypeID, name, res.Filename, res.Data) {
			s.pictures.DeleteURLMapping(url)
			s.rollbackCreate(petTypeID, name, url, "")
			return Pet{}, errPictureTaken(res.Filename)
		}
		saved = res.Filename
	}

	p.Picture = res.Filename
	if !s.repo.UpdatePet(petTypeID, name, p) {
		s.rollbackCreate(petTypeID, name, url, saved)
		return Pet{}, apperr.NotFound()
	}

	s.log.Info("pet created",
		zap.String("pet_type_id", petTypeID),
		zap.String("name", name),
		zap.String("picture", p.Picture),
		zap.Bool("picture_cached", res.Cached()),
	)
	return p, nil
}

// rollbackCreate es best-effort: nada de acá puede fallar hacia el cliente.
func (s *Service) rollbackCreate(petTypeID, name, url, savedPicture string) {
	s.repo.DeletePet(petTypeID, name)
	if savedPicture != "" {
		s.pictures.ReleasePicture(savedPicture)
		s.pictures.DeleteURLMapping(url)
	}
	s.log.Warn("pet creation rolled back",
		zap.String("pet_type_id", petTypeID),
		zap.String("name", name),
		zap.String("picture_url", url),
	)
}

func (s *Service) Get(_ context.Context, petTypeID, name string) (Pet, error) {
	if _, ok := s.repo.GetPetType(petTypeID); !ok {
		return Pet{}, apperr.NotFound()
	}
	p, ok := s.repo.GetPet(petTypeID, name)
	if !ok {
		return Pet{}, apperr.NotFound()
	}
	return p, nil
}

func (s *Service) List(_ context.Context, petTypeID string, filter ListFilter) ([]Pet, error) {
	if _, ok := s.repo.GetPetType(petTypeID); !ok {
		return nil, apperr.NotFound()
	}
	return filter.Apply(s.repo.ListPets(petTypeID)), nil
}

// Update reemplaza nombre/birthdate y, si viene URL, la imagen.
// El store solo se toca después de que la imagen se resolvió bien.
func (s *Service) Update(ctx context.Context, petTypeID, name string, in Input) (Pet, error) {
	pt, ok := s.repo.GetPetType(petTypeID)
	if !ok {
		return Pet{}, apperr.NotFound()
	}
	current, ok := s.repo.GetPet(petTypeID, name)
	if !ok {
		return Pet{}, apperr.NotFound()
	}

	newName := strings.TrimSpace(in.Name)
	if newName == "" {
		return Pet{}, apperr.Malformedf("pet name required")
	}
	if !strings.EqualFold(newName, current.Name) && s.repo.PetExists(petTypeID, newName) {
		return Pet{}, apperr.Malformedf("pet %q already exists", newName)
	}

	updated := Pet{
		Name:      newName,
		Birthdate: in.birthdate(),
		Picture:   current.Picture,
	}

	saved := ""
	if url := strings.TrimSpace(in.PictureURL); url != "" {
		res, err := s.resolver.Resolve(ctx, url, newName, pt.Type)
		if err != nil {
			return Pet{}, apperr.OrMalformed(err)
		}
		if !res.Cached() {
			if !s.pictures.SavePictureFor(petTypeID, current.Name, res.Filename, res.Data) {
				s.pictures.DeleteURLMapping(url)
				return Pet{}, errPictureTaken(res.Filename)
			}
			saved = res.Filename
		}
		updated.Picture = res.Filename
	} else if current.HasPicture() {
		// Rename sin URL nueva: la imagen se copia al filename del nombre nuevo,
		// así el filename viejo queda libre para otra mascota con ese nombre.
		fn := pictures.Rename(current.Picture, newName, pt.Type)
		if fn != current.Picture {
			if data, ok := s.pictures.GetPicture(current.Picture); ok {
				if !s.pictures.SavePictureFor(petTypeID, current.Name, fn, data) {
					return Pet{}, errPictureTaken(fn)
				}
				saved = fn
				updated.Picture = fn
			}
		}
	}

	if !s.repo.UpdatePet(petTypeID, current.Name, updated) {
		if saved != "" && saved != current.Picture {
			s.pictures.ReleasePicture(saved)
		}
		if s.repo.PetExists(petTypeID, current.Name) {
			return Pet{}, apperr.Malformedf("pet %q already exists", newName)
		}
		return Pet{}, apperr.NotFound()
	}

	if current.HasPicture() && current.Picture != updated.Picture {
		s.pictures.ReleasePicture(current.Picture)
	}

	s.log.Info("pet updated",
		zap.String("pet_type_id", petTypeID),
		zap.String("old_name", current.Name),
		zap.String("name", updated.Name),
		zap.String("picture", updated.Picture),
	)
	return updated, nil
}

func errPictureTaken(filename string) error {
	return apperr.Malformedf("picture %q belongs to another pet", filename)
}

func (s *Service) Delete(_ context.Context, petTypeID, name string) error {
	if _, ok := s.repo.GetPetType(petTypeID); !ok {
		return apperr.NotFound()
	}
	current, ok := s.repo.GetPet(petTypeID, name)
	if !ok {
		return apperr.NotFound()
	}
	if !s.repo.DeletePet(petTypeID, current.Name) {
		return apperr.NotFound()
	}

	if current.HasPicture() {
		s.pictures.ReleasePicture(current.Picture)
	}

	s.log.Info("pet deleted", zap.String("pet_type_id", petTypeID), zap.String("name", current.Name))
	return nil
}
