package ids

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator emite identificadores únicos para la vida del proceso.
type Generator interface {
	Next() string
}

// Sequential entrega el menor entero positivo aún no emitido, como string.
// MarkUsed permite reservar ids (p.ej. sembrados a mano) para que nunca se repitan.
type Sequential struct {
	mu   sync.Mutex
	next int
	used map[string]struct{}
}

func NewSequential() *Sequential {
	return &Sequential{
		next: 1,
		used: make(map[string]struct{}),
	}
}

func (s *Sequential) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := strconv.Itoa(s.next)
		s.next++
		if _, taken := s.used[id]; taken {
			continue
		}
		s.used[id] = struct{}{}
		return id
	}
}

func (s *Sequential) MarkUsed(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used[id] = struct{}{}
}

// UUID usa uuid v4; útil si los ids no deben ser adivinables.
type UUID struct{}

func (UUID) Next() string { return uuid.NewString() }

const (
	StrategySequential = "sequential"
	StrategyUUID       = "uuid"
)

// New construye el generador según ID_STRATEGY.
func New(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategySequential:
		return NewSequential(), nil
	case StrategyUUID:
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
