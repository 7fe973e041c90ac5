package service

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateProducesValidPartitions(t *testing.T) {
	members := uniformPool(8)
	cfg := GeneratorConfig{Multiplier: 1, MinSolutions: 2, MaxSolutions: 10000}
	gen := NewSolutionGenerator(cfg, rand.New(rand.NewSource(1)))

	solutions, err := gen.Generate(members, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// teamCount*Multiplier = 2, por debajo del piso no aplica: el piso es 2.
	if len(solutions) != 2 {
		t.Fatalf("expected 2 solutions, got %d", len(solutions))
	}
	for _, solution := range solutions {
		if len(solution) != 2 {
			t.Fatalf("expected 2 teams, got %d", len(solution))
		}
		for _, team := range solution {
			if len(team) != 4 {
				t.Fatalf("expected team of 4, got %d", len(team))
			}
		}
		assertPartition(t, solution, memberIDs(members))
	}
}

func TestGenerateAppliesSolutionFloor(t *testing.T) {
	members := uniformPool(8)
	gen := NewSolutionGenerator(DefaultGeneratorConfig(), rand.New(rand.NewSource(2)))

	solutions, err := gen.Generate(members, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// 2 equipos * 100 = 200, acotado al piso de 1000.
	if len(solutions) != 1000 {
		t.Fatalf("expected 1000 solutions, got %d", len(solutions))
	}
}

func TestGenerateShortTeamPolicies(t *testing.T) {
	members := uniformPool(10)

	keep := NewSolutionGenerator(GeneratorConfig{Multiplier: 1, MinSolutions: 1, MaxSolutions: 1}, rand.New(rand.NewSource(3)))
	solutions, err := keep.Generate(members, 4)
	if err != nil {
		t.Fatalf("generate keep: %v", err)
	}
	sizes := []int{}
	for _, team := range solutions[0] {
		sizes = append(sizes, len(team))
	}
	if len(sizes) != 3 || sizes[0] != 4 || sizes[1] != 4 || sizes[2] != 2 {
		t.Fatalf("expected teams of 4,4,2, got %v", sizes)
	}
	assertPartition(t, solutions[0], memberIDs(members))

	drop := NewSolutionGenerator(GeneratorConfig{Multiplier: 1, MinSolutions: 1, MaxSolutions: 1, ShortTeams: ShortTeamDrop}, rand.New(rand.NewSource(3)))
	solutions, err = drop.Generate(members, 4)
	if err != nil {
		t.Fatalf("generate drop: %v", err)
	}
	if len(solutions[0]) != 2 {
		t.Fatalf("expected 2 full teams, got %d", len(solutions[0]))
	}
	total := 0
	for _, team := range solutions[0] {
		total += len(team)
	}
	if total != 8 {
		t.Fatalf("expected 8 placed members, got %d", total)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	gen := NewSolutionGenerator(DefaultGeneratorConfig(), rand.New(rand.NewSource(4)))

	if _, err := gen.Generate(uniformPool(8), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team size 0, got %v", err)
	}
	if _, err := gen.Generate(uniformPool(3), 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for undersized pool, got %v", err)
	}

	solutions, err := gen.Generate(nil, 4)
	if err != nil {
		t.Fatalf("empty pool should not error: %v", err)
	}
	if len(solutions) != 0 {
		t.Fatalf("expected no solutions for empty pool, got %d", len(solutions))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	members := uniformPool(8)
	cfg := GeneratorConfig{Multiplier: 1, MinSolutions: 3, MaxSolutions: 3}

	first, err := NewSolutionGenerator(cfg, rand.New(rand.NewSource(7))).Generate(members, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := NewSolutionGenerator(cfg, rand.New(rand.NewSource(7))).Generate(members, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for i := range first {
		for j := range first[i] {
			for k := range first[i][j] {
				if first[i][j][k].MemberID != second[i][j][k].MemberID {
					t.Fatalf("same seed produced different solutions at %d/%d/%d", i, j, k)
				}
			}
		}
	}
}
