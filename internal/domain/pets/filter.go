package pets

import (
	"strings"
	"time"
)

// DateLayout: DD-MM-YYYY estricto (dos dígitos día/mes, cuatro año).
const DateLayout = "02-01-2006"

// ListFilter: límites exclusivos sobre birthdate. nil = sin límite.
type ListFilter struct {
	BirthdateGT *time.Time
	BirthdateLT *time.Time
}

// ParseListFilter: un límite que no parsea se ignora (no es error).
func ParseListFilter(gt, lt string) ListFilter {
	return ListFilter{
		BirthdateGT: ParseDate(gt),
		BirthdateLT: ParseDate(lt),
	}
}

func (f ListFilter) Active() bool {
	return f.BirthdateGT != nil || f.BirthdateLT != nil
}

// Match: con algún límite activo, "unknown" o fechas inválidas nunca pasan.
func (f ListFilter) Match(p Pet) bool {
	if !f.Active() {
		return true
	}
	bd := ParseDate(p.Birthdate)
	if bd == nil {
		return false
	}
	if f.BirthdateGT != nil && !bd.After(*f.BirthdateGT) {
		return false
	}
	if f.BirthdateLT != nil && !bd.Before(*f.BirthdateLT) {
		return false
	}
	return true
}

func (f ListFilter) Apply(items []Pet) []Pet {
	if !f.Active() {
		return items
	}
	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == BirthdateUnknown {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
