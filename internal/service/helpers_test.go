package service

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

func vec(c, a, o, e, n float64) domain.TraitVector {
	return domain.TraitVector{
		Conscientiousness: decimal.NewFromFloat(c),
		Agreeableness:     decimal.NewFromFloat(a),
		Openness:          decimal.NewFromFloat(o),
		Extraversion:      decimal.NewFromFloat(e),
		Neuroticism:       decimal.NewFromFloat(n),
	}
}

func unit(id string, c, a, o, e, n float64) domain.MemberUnit {
	return domain.MemberUnit{MemberID: id, Vector: vec(c, a, o, e, n)}
}

// uniformPool crea un pool de miembros con vectores identicos, que siempre
// supera el filtro por la rama de similitud.
func uniformPool(size int) []domain.MemberUnit {
	members := make([]domain.MemberUnit, size)
	for i := range members {
		members[i] = unit(fmt.Sprintf("m-%d", i+1), 90, 88, 50, 50, 30)
	}
	return members
}

// assertPartition verifica que la solucion contenga exactamente los ids
// esperados, cada uno una sola vez.
func assertPartition(t *testing.T, solution domain.Solution, wantIDs []string) {
	t.Helper()
	seen := make(map[string]int)
	for _, team := range solution {
		for _, member := range team {
			seen[member.MemberID]++
		}
	}
	if len(seen) != len(wantIDs) {
		t.Fatalf("expected %d distinct members, got %d", len(wantIDs), len(seen))
	}
	for _, id := range wantIDs {
		if seen[id] != 1 {
			t.Fatalf("member %s appears %d times", id, seen[id])
		}
	}
}

func memberIDs(members []domain.MemberUnit) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.MemberID
	}
	return ids
}
