package pets

// Valores centinela: el wire format nunca lleva null.
const (
	BirthdateUnknown = "unknown"
	NoPicture        = "no picture"
)

// Pet pertenece a exactamente una especie; el nombre es único (sin mayúsculas) dentro de ella.
type Pet struct {
	Name      string
	Birthdate string // fecha DD-MM-YYYY o BirthdateUnknown
	Picture   string // filename en el store de imágenes o NoPicture
}

func (p Pet) HasPicture() bool {
	return p.Picture != "" && p.Picture != NoPicture
}
