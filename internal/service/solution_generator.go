package service

import (
	"fmt"
	"math/rand"
	"time"

	"trait-match/internal/domain"
)

// ShortTeamPolicy define que hacer con los miembros sobrantes cuando el pool no
// es divisible por el tamano de equipo.
type ShortTeamPolicy int

const (
	// ShortTeamKeep conserva a los sobrantes como un ultimo equipo corto, que
	// participa del scoring como cualquier otro.
	ShortTeamKeep ShortTeamPolicy = iota
	// ShortTeamDrop descarta a los sobrantes de cada solucion generada.
	ShortTeamDrop
)

// GeneratorConfig son las politicas de generacion de soluciones iniciales.
type GeneratorConfig struct {
	Multiplier   int
	MinSolutions int
	MaxSolutions int
	ShortTeams   ShortTeamPolicy
}

// DefaultGeneratorConfig devuelve las politicas de produccion.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Multiplier:   100,
		MinSolutions: 1000,
		MaxSolutions: 10000,
		ShortTeams:   ShortTeamKeep,
	}
}

// SolutionGenerator produce el espacio inicial de soluciones candidatas
// barajando el pool de miembros de forma uniforme e independiente por solucion.
type SolutionGenerator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewSolutionGenerator crea un generador. Con rng nil usa una fuente sembrada
// por reloj; los tests inyectan una fuente determinista.
func NewSolutionGenerator(cfg GeneratorConfig, rng *rand.Rand) *SolutionGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SolutionGenerator{cfg: cfg, rng: rng}
}

// Generate construye las soluciones candidatas para el pool dado. La cantidad
// objetivo es teamCount*Multiplier acotada a [MinSolutions, MaxSolutions].
func (g *SolutionGenerator) Generate(members []domain.MemberUnit, teamSize int) ([]domain.Solution, error) {
	if teamSize <= 0 {
		return nil, fmt.Errorf("%w: team size %d", ErrInvalidInput, teamSize)
	}
	if len(members) == 0 {
		return nil, nil
	}

	teamCount := len(members) / teamSize
	if teamCount == 0 {
		return nil, fmt.Errorf("%w: %d members cannot form a team of %d", ErrInvalidInput, len(members), teamSize)
	}

	total := teamCount * g.cfg.Multiplier
	if total > g.cfg.MaxSolutions {
		total = g.cfg.MaxSolutions
	}
	if total < g.cfg.MinSolutions {
		total = g.cfg.MinSolutions
	}

	solutions := make([]domain.Solution, 0, total)
	for i := 0; i < total; i++ {
		shuffled := append([]domain.MemberUnit(nil), members...)
		g.rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		var solution domain.Solution
		for start := 0; start < len(shuffled); start += teamSize {
			end := start + teamSize
			if end > len(shuffled) {
				end = len(shuffled)
			}
			if end-start < teamSize && g.cfg.ShortTeams == ShortTeamDrop {
				break
			}
			solution = append(solution, domain.Team(shuffled[start:end:end]))
		}
		solutions = append(solutions, solution)
	}

	return solutions, nil
}
