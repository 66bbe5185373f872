package apperr

import (
	"errors"
	"fmt"
)

// Kind clasifica un error según cómo se expone al cliente.
type Kind int

const (
	KindServer Kind = iota
	KindNotFound
	KindMalformed
	KindUnsupportedMedia
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformed:
		return "malformed"
	case KindUnsupportedMedia:
		return "unsupported_media"
	default:
		return "server"
	}
}

// Error es el error estructurado que devuelven los workflows.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound() error {
	return &Error{Kind: KindNotFound}
}

// Malformed envuelve la causa (puede ser nil).
func Malformed(err error) error {
	return &Error{Kind: KindMalformed, Err: err}
}

func Malformedf(format string, args ...any) error {
	return &Error{Kind: KindMalformed, Msg: fmt.Sprintf(format, args...)}
}

func Unsupported() error {
	return &Error{Kind: KindUnsupportedMedia}
}

// Server: msg es lo que ve el cliente en "server_error".
func Server(msg string, err error) error {
	return &Error{Kind: KindServer, Msg: msg, Err: err}
}

// As devuelve el *Error de la cadena, si existe.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf devuelve KindServer para errores no clasificados.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindServer
}

func Is(err error, k Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == k
}

// OrMalformed conserva errores ya clasificados; el resto se envuelve como malformed.
func OrMalformed(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Malformed(err)
}

// OrServer conserva errores ya clasificados; el resto se envuelve como server error.
func OrServer(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Server(err.Error(), err)
}
