package service

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

func newTestSearch(seed int64) *GeneticSearch {
	return NewGeneticSearch(DefaultGeneticConfig(), NewTeamScorer(DefaultScoringConfig()), rand.New(rand.NewSource(seed)))
}

// makeCandidates genera soluciones filtradas reales a partir de un pool con
// rasgos variados.
func makeCandidates(t *testing.T, count int, seed int64) []domain.FilteredSolution {
	t.Helper()
	members := make([]domain.MemberUnit, 8)
	for i := range members {
		base := float64(70 + i*3)
		members[i] = unit(fmt.Sprintf("m-%d", i+1), base, base-2, float64(20+i*8), float64(15+i*9), float64(25+i*2))
	}

	gen := NewSolutionGenerator(GeneratorConfig{Multiplier: 1, MinSolutions: count, MaxSolutions: count}, rand.New(rand.NewSource(seed)))
	solutions, err := gen.Generate(members, 4)
	if err != nil {
		t.Fatalf("generate candidates: %v", err)
	}

	scorer := NewTeamScorer(DefaultScoringConfig())
	candidates := make([]domain.FilteredSolution, len(solutions))
	for i, solution := range solutions {
		scores := make([]decimal.Decimal, len(solution))
		for j, team := range solution {
			score, err := scorer.Score(team)
			if err != nil {
				t.Fatalf("score candidate: %v", err)
			}
			scores[j] = score
		}
		candidates[i] = domain.FilteredSolution{Solution: solution, TeamScores: scores, AvgScore: decimalMean(scores).Round(2)}
	}
	return candidates
}

func TestSelectRequiresMinimumCandidates(t *testing.T) {
	search := newTestSearch(1)
	candidates := makeCandidates(t, 9, 1)

	if _, err := search.Select(candidates); !errors.Is(err, ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestSelectPreservesPartitionInvariant(t *testing.T) {
	search := newTestSearch(2)
	candidates := makeCandidates(t, 20, 2)

	best, err := search.Select(candidates)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	wantIDs := make([]string, 0, 8)
	for _, team := range candidates[0].Solution {
		for _, member := range team {
			wantIDs = append(wantIDs, member.MemberID)
		}
	}
	assertPartition(t, best, wantIDs)
}

func TestSelectNeverWorseThanInitialBest(t *testing.T) {
	search := newTestSearch(3)
	candidates := makeCandidates(t, 30, 3)

	bestInitial := decimal.Zero
	for _, c := range candidates {
		fitness, err := search.evaluate(c.Solution)
		if err != nil {
			t.Fatalf("evaluate candidate: %v", err)
		}
		if fitness.GreaterThan(bestInitial) {
			bestInitial = fitness
		}
	}

	best, err := search.Select(candidates)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	finalFitness, err := search.evaluate(best)
	if err != nil {
		t.Fatalf("evaluate best: %v", err)
	}

	if finalFitness.LessThan(bestInitial) {
		t.Fatalf("elitism violated: final %s < initial best %s", finalFitness, bestInitial)
	}
}

func TestCrossoverKeepsTeamShape(t *testing.T) {
	search := newTestSearch(4)
	members := uniformPool(10)
	parent := domain.Solution{
		domain.Team(members[0:4]),
		domain.Team(members[4:8]),
		domain.Team(members[8:10]),
	}

	child := search.crossover(parent)
	if len(child) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(child))
	}
	if len(child[0]) != 4 || len(child[1]) != 4 || len(child[2]) != 2 {
		t.Fatalf("team sizes changed: %d/%d/%d", len(child[0]), len(child[1]), len(child[2]))
	}
	assertPartition(t, child, memberIDs(members))
}

func TestMutateSwapsAcrossTeams(t *testing.T) {
	search := newTestSearch(5)
	members := uniformPool(8)
	solution := domain.Solution{
		domain.Team(members[0:4]),
		domain.Team(members[4:8]),
	}
	original := solution.Clone()

	mutated := search.mutate(solution)

	if len(mutated) != 2 || len(mutated[0]) != 4 || len(mutated[1]) != 4 {
		t.Fatal("mutation changed team count or sizes")
	}
	assertPartition(t, mutated, memberIDs(members))

	// La solucion de entrada no debe mutarse.
	for i := range original {
		for j := range original[i] {
			if solution[i][j].MemberID != original[i][j].MemberID {
				t.Fatal("mutate modified its input solution")
			}
		}
	}

	changed := 0
	for i := range mutated {
		for j := range mutated[i] {
			if mutated[i][j].MemberID != original[i][j].MemberID {
				changed++
			}
		}
	}
	if changed != 2 {
		t.Fatalf("expected exactly one swap (2 positions), got %d changed positions", changed)
	}
}

func TestMutateSingleTeamIsNoop(t *testing.T) {
	search := newTestSearch(6)
	members := uniformPool(4)
	solution := domain.Solution{domain.Team(members)}

	mutated := search.mutate(solution)
	if len(mutated) != 1 || len(mutated[0]) != 4 {
		t.Fatal("single-team mutation should be a no-op")
	}
	assertPartition(t, mutated, memberIDs(members))
}
