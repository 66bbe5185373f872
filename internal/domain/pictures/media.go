package pictures

import (
	"path"
	"strings"

	"pet-store-inventory/internal/platform/apperr"
)

const (
	ExtJPG = "jpg"
	ExtPNG = "png"

	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

// ExtensionFor clasifica el Content-Type de una descarga.
// Vacío o desconocido => unsupported media.
func ExtensionFor(contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "":
		return "", apperr.Unsupported()
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return ExtJPG, nil
	case strings.Contains(ct, "png"):
		return ExtPNG, nil
	default:
		return "", apperr.Unsupported()
	}
}

// ContentTypeFor es la inversa de ExtensionFor, solo por extensión.
func ContentTypeFor(filename string) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return ContentTypePNG, nil
	case ".jpg", ".jpeg":
		return ContentTypeJPEG, nil
	default:
		return "", apperr.Unsupported()
	}
}

// Stem: "{pet-name}-{pet-type}", la parte del filename que no depende del formato.
func Stem(petName, petType string) string {
	return slug(petName) + "-" + slug(petType)
}

// Filename deriva el nombre local de la imagen; mismo (nombre, especie) => mismo archivo.
func Filename(petName, petType, ext string) string {
	return Stem(petName, petType) + "." + ext
}

// Rename: mismo formato (extensión) que filename, con el stem de otra mascota.
func Rename(filename, petName, petType string) string {
	return Stem(petName, petType) + path.Ext(filename)
}

func stemOf(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
