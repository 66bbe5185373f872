package memory

import (
	"sync"

	"golang.org/x/text/cases"

	"pet-store-inventory/internal/domain/pets"
	"pet-store-inventory/internal/domain/pettypes"
)

// Store guarda especies, mascotas, imágenes y el mapeo URL -> filename.
// Un solo RWMutex protege todo: las operaciones cruzan colecciones
// (borrar mascota + liberar imagen) y tienen que verse atómicas.
//
// Implementa pettypes.Repository, pets.Repository y pictures.Repository.
type Store struct {
	mu sync.RWMutex

	order []string
	types map[string]*typeRecord

	pictures map[string][]byte
	urls     map[string]string
}

type typeRecord struct {
	pt pettypes.PetType

	// orden de inserción de mascotas (claves fold) + datos por clave
	order []string
	pets  map[string]pets.Pet
}

func NewStore() *Store {
	return &Store{
		types:    make(map[string]*typeRecord),
		pictures: make(map[string][]byte),
		urls:     make(map[string]string),
	}
}

// foldKey: clave para comparar nombres sin mayúsculas (Unicode, no solo ASCII).
// cases.Caser no es seguro para uso concurrente, por eso uno por llamada.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// -------------------------
// Pet types
// -------------------------

func (s *Store) AddPetType(p pettypes.PetType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.types[p.ID]; exists {
		return false
	}
	pt := p.Clone()
	if pt.PetNames == nil {
		pt.PetNames = []string{}
	}
	s.types[p.ID] = &typeRecord{pt: pt, pets: make(map[string]pets.Pet)}
	s.order = append(s.order, p.ID)
	return true
}

func (s *Store) GetPetType(id string) (pettypes.PetType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.types[id]
	if !ok {
		return pettypes.PetType{}, false
	}
	return rec.pt.Clone(), true
}

func (s *Store) ListPetTypes() []pettypes.PetType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pettypes.PetType, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.types[id].pt.Clone())
	}
	return out
}

// DeletePetTypeIfEmpty chequea y borra bajo el mismo lock: un AddPet
// concurrente queda antes (y el borrado falla) o después (y AddPet falla).
func (s *Store) DeletePetTypeIfEmpty(id string) (found, deleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.types[id]
	if !ok {
		return false, false
	}
	if len(rec.pets) > 0 {
		return true, false
	}
	delete(s.types, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, true
}

func (s *Store) PetTypeExistsByName(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := foldKey(name)
	for _, rec := range s.types {
		if foldKey(rec.pt.Type) == key {
			return true
		}
	}
	return false
}

// -------------------------
// Pets
// -------------------------

// AddPet falla si la especie no existe o el nombre ya está (sin mayúsculas).
func (s *Store) AddPet(petTypeID string, p pets.Pet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.types[petTypeID]
	if !ok {
		return false
	}
	key := foldKey(p.Name)
	if _, exists := rec.pets[key]; exists {
		return false
	}
	rec.pets[key] = p
	rec.order = append(rec.order, key)
	rec.pt.PetNames = append(rec.pt.PetNames, p.Name)
	return true
}

func (s *Store) GetPet(petTypeID, name string) (pets.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.types[petTypeID]
	if !ok {
		return pets.Pet{}, false
	}
	p, ok := rec.pets[foldKey(name)]
	return p, ok
}

func (s *Store) ListPets(petTypeID string) []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.types[petTypeID]
	if !ok {
		return []pets.Pet{}
	}
	out := make([]pets.Pet, 0, len(rec.order))
	for _, key := range rec.order {
		out = append(out, rec.pets[key])
	}
	return out
}

// UpdatePet reemplaza la mascota oldName por p (p.Name puede ser otro nombre).
// Falla si oldName no existe o si p.Name choca con otra mascota de la especie.
// Se borra y se vuelve a insertar: la mascota pasa al final del listado y de PetNames.
func (s *Store) UpdatePet(petTypeID, oldName string, p pets.Pet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.types[petTypeID]
	if !ok {
		return false
	}
	oldKey := foldKey(oldName)
	current, ok := rec.pets[oldKey]
	if !ok {
		return false
	}
	newKey := foldKey(p.Name)
	if newKey != oldKey {
		if _, taken := rec.pets[newKey]; taken {
			return false
		}
	}

	delete(rec.pets, oldKey)
	rec.order = removeString(rec.order, oldKey)
	rec.pets[newKey] = p
	rec.order = append(rec.order, newKey)
	rec.pt.PetNames = removeString(rec.pt.PetNames, current.Name)
	rec.pt.PetNames = append(rec.pt.PetNames, p.Name)
	return true
}

func (s *Store) DeletePet(petTypeID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.types[petTypeID]
	if !ok {
		return false
	}
	key := foldKey(name)
	current, ok := rec.pets[key]
	if !ok {
		return false
	}
	delete(rec.pets, key)
	rec.order = removeString(rec.order, key)
	rec.pt.PetNames = removeString(rec.pt.PetNames, current.Name)
	return true
}

func (s *Store) PetExists(petTypeID, name string) bool {
	_, ok := s.GetPet(petTypeID, name)
	return ok
}

func removeString(list []string, v string) []string {
	for i, s := range list {
		if s == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// -------------------------
// Pictures
// -------------------------

// SavePicture sobrescribe sin chequear dueños; el workflow de mascotas usa SavePictureFor.
func (s *Store) SavePicture(filename string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pictures[filename] = append([]byte(nil), data...)
}

// SavePictureFor guarda la imagen salvo que otra mascota (no petTypeID/petName)
// ya la referencie: así un filename compartido nunca se pisa.
func (s *Store) SavePictureFor(petTypeID, petName, filename string, data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	self := foldKey(petName)
	for id, rec := range s.types {
		for key, p := range rec.pets {
			if p.Picture == filename && (id != petTypeID || key != self) {
				return false
			}
		}
	}
	s.pictures[filename] = append([]byte(nil), data...)
	return true
}

func (s *Store) GetPicture(filename string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.pictures[filename]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

func (s *Store) DeletePicture(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pictures[filename]; !ok {
		return false
	}
	delete(s.pictures, filename)
	return true
}

func (s *Store) PictureExists(filename string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pictures[filename]
	return ok
}

func (s *Store) SaveURLMapping(url, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.urls[url] = filename
}

func (s *Store) FilenameForURL(url string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn, ok := s.urls[url]
	return fn, ok
}

func (s *Store) DeleteURLMapping(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.urls, url)
}

// ReleasePicture borra filename y todos los mapeos URL que apuntan a él,
// salvo que alguna mascota todavía lo use. Devuelve true si borró algo.
func (s *Store) ReleasePicture(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.types {
		for _, p := range rec.pets {
			if p.Picture == filename {
				return false
			}
		}
	}

	for u, fn := range s.urls {
		if fn == filename {
			delete(s.urls, u)
		}
	}
	if _, ok := s.pictures[filename]; !ok {
		return false
	}
	delete(s.pictures, filename)
	return true
}
