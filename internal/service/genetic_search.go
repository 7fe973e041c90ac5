package service

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// GeneticConfig parametriza la busqueda genetica.
type GeneticConfig struct {
	MutationRate   float64
	MinCandidates  int
	MinPopulation  int
	MaxPopulation  int
	MinGenerations int
}

// DefaultGeneticConfig devuelve los parametros de produccion.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		MutationRate:   0.15,
		MinCandidates:  10,
		MinPopulation:  10,
		MaxPopulation:  50,
		MinGenerations: 10,
	}
}

// GeneticSearch evoluciona las soluciones filtradas hacia una particion de
// mayor puntaje mediante elitismo, crossover y mutacion. Crossover y mutacion
// operan siempre sobre copias, nunca sobre una solucion referenciada afuera.
type GeneticSearch struct {
	cfg    GeneticConfig
	scorer *TeamScorer
	rng    *rand.Rand
}

// NewGeneticSearch crea la busqueda. Con rng nil usa una fuente sembrada por
// reloj; los tests inyectan una fuente determinista.
func NewGeneticSearch(cfg GeneticConfig, scorer *TeamScorer, rng *rand.Rand) *GeneticSearch {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GeneticSearch{cfg: cfg, scorer: scorer, rng: rng}
}

type scoredSolution struct {
	solution domain.Solution
	fitness  decimal.Decimal
}

// Select corre la busqueda completa y devuelve la solucion de mayor fitness de
// la ultima generacion. Requiere un minimo de candidatos para evolucionar con
// sentido.
func (g *GeneticSearch) Select(candidates []domain.FilteredSolution) (domain.Solution, error) {
	n := len(candidates)
	if n < g.cfg.MinCandidates {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrInsufficientCandidates, g.cfg.MinCandidates, n)
	}

	populationSize := int(math.Round(float64(n) * 0.5))
	if populationSize < g.cfg.MinPopulation {
		populationSize = g.cfg.MinPopulation
	}
	if populationSize > g.cfg.MaxPopulation {
		populationSize = g.cfg.MaxPopulation
	}
	eliteSize := int(math.Round(float64(populationSize) * 0.25))
	if eliteSize < 2 {
		eliteSize = 2
	}
	generations := int(math.Round(math.Log2(float64(n)) * 5))
	if generations < g.cfg.MinGenerations {
		generations = g.cfg.MinGenerations
	}

	population := g.initialPopulation(candidates, populationSize)

	for gen := 0; gen < generations; gen++ {
		scored, err := g.scorePopulation(population)
		if err != nil {
			return nil, err
		}

		elites := make([]domain.Solution, eliteSize)
		for i := range elites {
			elites[i] = scored[i].solution
		}

		next := append([]domain.Solution(nil), elites...)
		for len(next) < populationSize {
			parent := elites[g.rng.Intn(len(elites))]
			child := g.crossover(parent)
			if g.rng.Float64() < g.cfg.MutationRate {
				child = g.mutate(child)
			}
			next = append(next, child)
		}
		population = next
	}

	final, err := g.scorePopulation(population)
	if err != nil {
		return nil, err
	}
	return final[0].solution, nil
}

// initialPopulation toma la mitad superior por puntaje promedio almacenado y
// completa con una muestra uniforme sin reemplazo del resto. Si el pool es mas
// chico que la poblacion objetivo se usa entero.
func (g *GeneticSearch) initialPopulation(candidates []domain.FilteredSolution, populationSize int) []domain.Solution {
	if len(candidates) <= populationSize {
		population := make([]domain.Solution, len(candidates))
		for i, c := range candidates {
			population[i] = c.Solution
		}
		return population
	}

	sorted := append([]domain.FilteredSolution(nil), candidates...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].AvgScore.GreaterThan(sorted[b].AvgScore)
	})

	topHalf := populationSize / 2
	population := make([]domain.Solution, 0, populationSize)
	for _, c := range sorted[:topHalf] {
		population = append(population, c.Solution)
	}

	rest := sorted[topHalf:]
	for _, idx := range g.rng.Perm(len(rest))[:populationSize-topHalf] {
		population = append(population, rest[idx].Solution)
	}
	return population
}

// scorePopulation recalcula el fitness de cada solucion (la composicion de los
// equipos cambia con crossover y mutacion) y ordena descendente en forma
// estable.
func (g *GeneticSearch) scorePopulation(population []domain.Solution) ([]scoredSolution, error) {
	scored := make([]scoredSolution, len(population))
	for i, solution := range population {
		fitness, err := g.evaluate(solution)
		if err != nil {
			return nil, err
		}
		scored[i] = scoredSolution{solution: solution, fitness: fitness}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].fitness.GreaterThan(scored[b].fitness)
	})
	return scored, nil
}

// evaluate calcula el fitness: promedio de los puntajes de equipo.
func (g *GeneticSearch) evaluate(solution domain.Solution) (decimal.Decimal, error) {
	scores := make([]decimal.Decimal, len(solution))
	for i, team := range solution {
		score, err := g.scorer.Score(team)
		if err != nil {
			return decimal.Zero, err
		}
		scores[i] = score
	}
	return decimalMean(scores).Round(2), nil
}

// crossover es asexual: aplana los equipos del padre, baraja a los miembros y
// los re-particiona con el mismo numero de equipos y el mismo tamano fijo.
func (g *GeneticSearch) crossover(parent domain.Solution) domain.Solution {
	if len(parent) == 0 || len(parent[0]) == 0 {
		return parent.Clone()
	}

	members := parent.Members()
	g.rng.Shuffle(len(members), func(a, b int) {
		members[a], members[b] = members[b], members[a]
	})

	teamSize := len(parent[0])
	child := make(domain.Solution, 0, len(parent))
	for i := 0; i < len(parent); i++ {
		start := i * teamSize
		end := start + teamSize
		if end > len(members) {
			end = len(members)
		}
		child = append(child, domain.Team(members[start:end:end]))
	}
	return child
}

// mutate intercambia un miembro al azar entre dos equipos distintos. Si alguno
// de los equipos elegidos esta vacio no hace nada. Siempre trabaja sobre una
// copia.
func (g *GeneticSearch) mutate(solution domain.Solution) domain.Solution {
	mutated := solution.Clone()
	if len(mutated) < 2 {
		return mutated
	}

	picks := g.rng.Perm(len(mutated))[:2]
	t1, t2 := mutated[picks[0]], mutated[picks[1]]
	if len(t1) == 0 || len(t2) == 0 {
		return mutated
	}

	i1 := g.rng.Intn(len(t1))
	i2 := g.rng.Intn(len(t2))
	t1[i1], t2[i2] = t2[i2], t1[i1]
	return mutated
}
