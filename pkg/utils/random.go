package utils

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random é uma fonte de números aleatórios segura para uso concorrente.
// Os handlers HTTP e o agendador compartilham a mesma instância.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom cria uma fonte determinística a partir de seed
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededRandom cria uma fonte semeada com o horário atual
func NewTimeSeededRandom() *Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

// IntN retorna um inteiro em [0, n)
func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Int64Range retorna um inteiro em [min, max]
func (r *Random) Int64Range(min, max int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Int64N(max-min+1)
}
