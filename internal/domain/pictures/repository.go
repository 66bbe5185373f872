package pictures

// Repository guarda bytes de imágenes por filename y el mapeo URL -> filename.
type Repository interface {
	SavePicture(filename string, data []byte)
	GetPicture(filename string) ([]byte, bool)
	DeletePicture(filename string) bool
	PictureExists(filename string) bool

	SaveURLMapping(url, filename string)
	FilenameForURL(url string) (string, bool)
	// DeleteURLMapping es best-effort: no falla si no existe.
	DeleteURLMapping(url string)

	// ReleasePicture borra la imagen (y los mapeos que apuntan a ella)
	// solo si ninguna mascota viva la referencia.
	ReleasePicture(filename string) bool
}
