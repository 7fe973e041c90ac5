package domain

import "github.com/shopspring/decimal"

// TraitVector es el perfil de cinco dimensiones de un miembro. Se construye una
// sola vez por corrida y no se muta despues.
type TraitVector struct {
	Conscientiousness decimal.Decimal
	Agreeableness     decimal.Decimal
	Openness          decimal.Decimal
	Extraversion      decimal.Decimal
	Neuroticism       decimal.Decimal
}

// MemberUnit es la unidad atomica que se mueve entre equipos: un vector de
// rasgos junto al identificador opaco del miembro.
type MemberUnit struct {
	MemberID string
	Vector   TraitVector
}

// Team es una coleccion ordenada de miembros.
type Team []MemberUnit

// Solution es una particion completa del pool de miembros en equipos.
type Solution []Team

// Members aplana la solucion en una sola lista de miembros.
func (s Solution) Members() []MemberUnit {
	var all []MemberUnit
	for _, team := range s {
		all = append(all, team...)
	}
	return all
}

// Clone devuelve una copia profunda a nivel de equipos. Los MemberUnit se
// comparten porque son inmutables.
func (s Solution) Clone() Solution {
	cloned := make(Solution, len(s))
	for i, team := range s {
		cloned[i] = append(Team(nil), team...)
	}
	return cloned
}

// FilteredSolution empaqueta una solucion que supero el filtro junto a los
// puntajes por equipo y su promedio. Es de solo lectura a partir de su creacion.
type FilteredSolution struct {
	Solution   Solution
	TeamScores []decimal.Decimal
	AvgScore   decimal.Decimal
}
