// internal/utils/prng.go
package utils

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// PRNGService — обертка над генератором случайных чисел, которую передают
// всем компонентам явно вместо глобального rand.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService — сид 0 означает "взять от часов", иначе последовательность
// воспроизводима (тесты и повтор партии).
func NewPRNGService(seed uint64) *PRNGService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn — [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 — [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число из [min, max). Если max <= min, возвращается min.
func (s *PRNGService) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Direction возвращает случайный единичный вектор.
func (s *PRNGService) Direction() (x, y float64) {
	a := s.rng.Float64() * 2 * math.Pi
	return math.Cos(a), math.Sin(a)
}
