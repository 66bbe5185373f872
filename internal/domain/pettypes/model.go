package pettypes

// PetType es el registro a nivel especie (p.ej. "cat") con datos de taxonomía.
type PetType struct {
	ID   string
	Type string // nombre de la especie tal como lo pidió el cliente

	Family     string
	Genus      string
	Attributes []string
	Lifespan   *int // años; nil si no se pudo parsear

	// PetNames es una back-reference desnormalizada; solo el store la mantiene.
	PetNames []string
}

// Clone devuelve una copia que no comparte slices con el original.
func (p PetType) Clone() PetType {
	out := p
	out.Attributes = append([]string(nil), p.Attributes...)
	out.PetNames = append([]string(nil), p.PetNames...)
	if p.Lifespan != nil {
		v := *p.Lifespan
		out.Lifespan = &v
	}
	return out
}

// HasPets: una especie con mascotas no se puede borrar.
func (p PetType) HasPets() bool {
	return len(p.PetNames) > 0
}

// Taxonomy es lo que devuelve el servicio de taxonomía para una especie.
type Taxonomy struct {
	Family     string
	Genus      string
	Attributes []string
	Lifespan   *int
}
