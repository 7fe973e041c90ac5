package service

import (
	"math"

	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// Helpers estadisticos sobre decimal. Toda la aritmetica del motor se hace en
// punto fijo; la unica excepcion es la raiz cuadrada de la varianza, que pasa
// por float64 (sqrt IEEE-754 redondea correctamente, asi que el resultado es
// igual en cualquier plataforma).

func decimalMean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

// decimalVariance calcula la varianza poblacional.
func decimalVariance(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	mean := decimalMean(values)
	sum := decimal.Zero
	for _, v := range values {
		diff := v.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

func decimalStd(values []decimal.Decimal) decimal.Decimal {
	variance := decimalVariance(values)
	return decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
}

// capOne limita un ratio al tope de 1.
func capOne(d decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return d
}

// teamTrait extrae los valores de un rasgo de todos los miembros del equipo.
func teamTrait(team domain.Team, pick func(domain.TraitVector) decimal.Decimal) []decimal.Decimal {
	values := make([]decimal.Decimal, len(team))
	for i, member := range team {
		values[i] = pick(member.Vector)
	}
	return values
}

func pickConscientiousness(v domain.TraitVector) decimal.Decimal { return v.Conscientiousness }
func pickAgreeableness(v domain.TraitVector) decimal.Decimal     { return v.Agreeableness }
func pickOpenness(v domain.TraitVector) decimal.Decimal          { return v.Openness }
func pickExtraversion(v domain.TraitVector) decimal.Decimal      { return v.Extraversion }
func pickNeuroticism(v domain.TraitVector) decimal.Decimal       { return v.Neuroticism }
