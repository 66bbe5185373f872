package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pet-store-inventory/internal/domain/pets"
	"pet-store-inventory/internal/domain/pettypes"
	"pet-store-inventory/internal/domain/pictures"
)

var (
	_ pettypes.Repository = (*Store)(nil)
	_ pets.Repository     = (*Store)(nil)
	_ pictures.Repository = (*Store)(nil)
	_ pets.PictureStore   = (*Store)(nil)
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.True(t, s.AddPetType(pettypes.PetType{ID: "1", Type: "cat"}))
	return s
}

func TestPetTypes_OrderAndClone(t *testing.T) {
	s := NewStore()
	require.True(t, s.AddPetType(pettypes.PetType{ID: "2", Type: "dog", Attributes: []string{"loyal"}}))
	require.True(t, s.AddPetType(pettypes.PetType{ID: "1", Type: "Cat"}))
	assert.False(t, s.AddPetType(pettypes.PetType{ID: "1", Type: "other"}))

	list := s.ListPetTypes()
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)

	// las copias devueltas no comparten memoria con el store
	list[0].Attributes[0] = "changed"
	got, ok := s.GetPetType("2")
	require.True(t, ok)
	assert.Equal(t, []string{"loyal"}, got.Attributes)

	assert.True(t, s.PetTypeExistsByName("CAT"))
	assert.False(t, s.PetTypeExistsByName("bird"))

	found, deleted := s.DeletePetTypeIfEmpty("2")
	assert.True(t, found)
	assert.True(t, deleted)
	found, deleted = s.DeletePetTypeIfEmpty("2")
	assert.False(t, found)
	assert.False(t, deleted)
	_, ok = s.GetPetType("2")
	assert.False(t, ok)
}

func TestPets_CaseInsensitive(t *testing.T) {
	s := seeded(t)

	require.True(t, s.AddPet("1", pets.Pet{Name: "Tom", Birthdate: pets.BirthdateUnknown, Picture: pets.NoPicture}))
	assert.False(t, s.AddPet("1", pets.Pet{Name: "TOM"}))
	assert.False(t, s.AddPet("404", pets.Pet{Name: "Tom"}))

	p, ok := s.GetPet("1", "tOm")
	require.True(t, ok)
	assert.Equal(t, "Tom", p.Name)
	assert.True(t, s.PetExists("1", "tom"))

	pt, _ := s.GetPetType("1")
	assert.Equal(t, []string{"Tom"}, pt.PetNames)
}

func TestUpdatePet_RenameMovesNameToEnd(t *testing.T) {
	s := seeded(t)
	for _, n := range []string{"A", "B", "C"} {
		require.True(t, s.AddPet("1", pets.Pet{Name: n}))
	}

	require.True(t, s.UpdatePet("1", "a", pets.Pet{Name: "Z", Birthdate: "01-01-2020"}))

	pt, _ := s.GetPetType("1")
	assert.Equal(t, []string{"B", "C", "Z"}, pt.PetNames)

	_, ok := s.GetPet("1", "A")
	assert.False(t, ok)
	z, ok := s.GetPet("1", "z")
	require.True(t, ok)
	assert.Equal(t, "01-01-2020", z.Birthdate)

	// listado y PetNames coinciden: la mascota actualizada pasa al final
	assert.Equal(t, []string{"B", "C", "Z"}, petNames(s.ListPets("1")))

	// actualizar sin cambiar el nombre también la mueve
	require.True(t, s.UpdatePet("1", "B", pets.Pet{Name: "B", Birthdate: "02-02-2020"}))
	assert.Equal(t, []string{"C", "Z", "B"}, petNames(s.ListPets("1")))
	pt, _ = s.GetPetType("1")
	assert.Equal(t, []string{"C", "Z", "B"}, pt.PetNames)

	// renombrar sobre otra mascota existente falla
	assert.False(t, s.UpdatePet("1", "Z", pets.Pet{Name: "b"}))
	// cambiar solo mayúsculas del mismo nombre está bien
	assert.True(t, s.UpdatePet("1", "Z", pets.Pet{Name: "z"}))
	assert.False(t, s.UpdatePet("1", "missing", pets.Pet{Name: "x"}))
}

func petNames(items []pets.Pet) []string {
	out := []string{}
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestDeletePetTypeIfEmpty(t *testing.T) {
	s := seeded(t)
	require.True(t, s.AddPet("1", pets.Pet{Name: "Tom"}))

	found, deleted := s.DeletePetTypeIfEmpty("1")
	assert.True(t, found)
	assert.False(t, deleted)
	_, ok := s.GetPetType("1")
	assert.True(t, ok)

	require.True(t, s.DeletePet("1", "Tom"))
	found, deleted = s.DeletePetTypeIfEmpty("1")
	assert.True(t, found)
	assert.True(t, deleted)
	assert.False(t, s.AddPet("1", pets.Pet{Name: "Tom"}))
}

// Un AddPet que corre contra el borrado de su especie: o la mascota queda
// (y la especie también) o el AddPet falla. Nunca una especie borrada con mascotas.
func TestStore_DeletePetTypeRacesAddPet(t *testing.T) {
	for round := 0; round < 200; round++ {
		s := seeded(t)

		var wg sync.WaitGroup
		var added, deleted bool
		wg.Add(2)
		go func() {
			defer wg.Done()
			added = s.AddPet("1", pets.Pet{Name: "Tom"})
		}()
		go func() {
			defer wg.Done()
			_, deleted = s.DeletePetTypeIfEmpty("1")
		}()
		wg.Wait()

		require.NotEqual(t, added, deleted, "round %d: added=%v deleted=%v", round, added, deleted)
		pt, ok := s.GetPetType("1")
		if added {
			require.True(t, ok)
			assert.Equal(t, []string{"Tom"}, pt.PetNames)
		} else {
			assert.False(t, ok)
		}
	}
}

func TestDeletePet(t *testing.T) {
	s := seeded(t)
	require.True(t, s.AddPet("1", pets.Pet{Name: "Tom"}))

	assert.True(t, s.DeletePet("1", "TOM"))
	assert.False(t, s.DeletePet("1", "Tom"))
	assert.Empty(t, s.ListPets("1"))

	pt, _ := s.GetPetType("1")
	assert.False(t, pt.HasPets())
}

func TestPictures_ReleaseOnlyWhenUnreferenced(t *testing.T) {
	s := seeded(t)
	require.True(t, s.SavePictureFor("1", "Tom", "tom-cat.jpg", []byte{1, 2, 3}))
	s.SaveURLMapping("http://a", "tom-cat.jpg")
	s.SaveURLMapping("http://b", "tom-cat.jpg")
	require.True(t, s.AddPet("1", pets.Pet{Name: "Tom", Picture: "tom-cat.jpg"}))

	assert.False(t, s.ReleasePicture("tom-cat.jpg"))
	assert.True(t, s.PictureExists("tom-cat.jpg"))

	require.True(t, s.DeletePet("1", "Tom"))
	assert.True(t, s.ReleasePicture("tom-cat.jpg"))
	assert.False(t, s.PictureExists("tom-cat.jpg"))

	_, ok := s.FilenameForURL("http://a")
	assert.False(t, ok)
	_, ok = s.FilenameForURL("http://b")
	assert.False(t, ok)
}

func TestSavePictureFor_RefusesFileOfAnotherPet(t *testing.T) {
	s := seeded(t)
	require.True(t, s.AddPet("1", pets.Pet{Name: "Tom Cat", Picture: "tom-cat-cat.jpg"}))
	require.True(t, s.SavePictureFor("1", "Tom Cat", "tom-cat-cat.jpg", []byte("old")))

	assert.False(t, s.SavePictureFor("1", "tom-cat", "tom-cat-cat.jpg", []byte("new")))
	got, _ := s.GetPicture("tom-cat-cat.jpg")
	assert.Equal(t, []byte("old"), got)

	// la dueña puede reemplazarla, sin importar mayúsculas
	assert.True(t, s.SavePictureFor("1", "TOM CAT", "tom-cat-cat.jpg", []byte("new")))
	got, _ = s.GetPicture("tom-cat-cat.jpg")
	assert.Equal(t, []byte("new"), got)

	assert.True(t, s.SavePictureFor("1", "Jerry", "jerry-cat.jpg", []byte("j")))
	assert.True(t, s.PictureExists("jerry-cat.jpg"))
}

func TestPictures_Basics(t *testing.T) {
	s := NewStore()
	data := []byte("png")
	s.SavePicture("x.png", data)
	data[0] = 'X'

	got, ok := s.GetPicture("x.png")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), got)

	s.SaveURLMapping("http://x", "x.png")
	fn, ok := s.FilenameForURL("http://x")
	require.True(t, ok)
	assert.Equal(t, "x.png", fn)

	s.DeleteURLMapping("http://x")
	s.DeleteURLMapping("http://never")
	_, ok = s.FilenameForURL("http://x")
	assert.False(t, ok)

	assert.True(t, s.DeletePicture("x.png"))
	assert.False(t, s.DeletePicture("x.png"))
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := seeded(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// mitad compite por el mismo nombre, mitad nombres distintos
			name := "same"
			if i%2 == 1 {
				name = fmt.Sprintf("pet-%d", i)
			}
			if s.AddPet("1", pets.Pet{Name: name}) && name == "same" {
				mu.Lock()
				wins++
				mu.Unlock()
			}
			_ = s.ListPets("1")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Len(t, s.ListPets("1"), 26)
}
