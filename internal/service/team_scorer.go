package service

import (
	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// ScoringConfig es la tabla de calibracion del scorer: pesos por termino y
// topes de normalizacion. Es inmutable y se inyecta en la construccion para
// que los tests puedan sustituir calibraciones sin tocar estado compartido.
type ScoringConfig struct {
	ConscientiousnessMeanWeight       decimal.Decimal
	AgreeablenessMeanWeight           decimal.Decimal
	ConscientiousnessSimilarityWeight decimal.Decimal
	AgreeablenessSimilarityWeight     decimal.Decimal
	OpennessDiversityWeight           decimal.Decimal
	ExtraversionDiversityWeight       decimal.Decimal
	NeuroticismSimilarityWeight       decimal.Decimal

	MeanTarget decimal.Decimal
	MaxStd     decimal.Decimal
	MaxVar     decimal.Decimal
}

// DefaultScoringConfig devuelve la calibracion de produccion. Los pesos suman 100.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ConscientiousnessMeanWeight:       decimal.RequireFromString("20.82"),
		AgreeablenessMeanWeight:           decimal.RequireFromString("20.82"),
		ConscientiousnessSimilarityWeight: decimal.RequireFromString("16.67"),
		AgreeablenessSimilarityWeight:     decimal.RequireFromString("16.67"),
		OpennessDiversityWeight:           decimal.RequireFromString("12.50"),
		ExtraversionDiversityWeight:       decimal.RequireFromString("8.33"),
		NeuroticismSimilarityWeight:       decimal.RequireFromString("4.19"),
		MeanTarget:                        decimal.NewFromInt(100),
		MaxStd:                            decimal.RequireFromString("15.0"),
		MaxVar:                            decimal.RequireFromString("150.0"),
	}
}

// TeamScorer calcula el puntaje de calidad de un equipo a partir de la media,
// desviacion estandar y varianza de cada rasgo. Es determinista para un mismo
// multiconjunto de vectores e ignora el orden de los miembros.
type TeamScorer struct {
	cfg ScoringConfig
}

func NewTeamScorer(cfg ScoringConfig) *TeamScorer {
	return &TeamScorer{cfg: cfg}
}

// Score devuelve el puntaje del equipo en aproximadamente [0,100], redondeado a
// dos decimales. Un equipo vacio es invalido.
func (s *TeamScorer) Score(team domain.Team) (decimal.Decimal, error) {
	if len(team) == 0 {
		return decimal.Zero, ErrEmptyTeam
	}

	conscientiousness := teamTrait(team, pickConscientiousness)
	agreeableness := teamTrait(team, pickAgreeableness)
	openness := teamTrait(team, pickOpenness)
	extraversion := teamTrait(team, pickExtraversion)
	neuroticism := teamTrait(team, pickNeuroticism)

	score := decimal.Zero
	score = score.Add(s.meanTerm(decimalMean(conscientiousness), s.cfg.ConscientiousnessMeanWeight))
	score = score.Add(s.meanTerm(decimalMean(agreeableness), s.cfg.AgreeablenessMeanWeight))
	score = score.Add(s.similarityTerm(decimalStd(conscientiousness), s.cfg.ConscientiousnessSimilarityWeight))
	score = score.Add(s.similarityTerm(decimalStd(agreeableness), s.cfg.AgreeablenessSimilarityWeight))
	score = score.Add(s.diversityTerm(decimalVariance(openness), s.cfg.OpennessDiversityWeight))
	score = score.Add(s.diversityTerm(decimalVariance(extraversion), s.cfg.ExtraversionDiversityWeight))
	score = score.Add(s.similarityTerm(decimalStd(neuroticism), s.cfg.NeuroticismSimilarityWeight))

	return score.Round(2), nil
}

// meanTerm premia medias cercanas al objetivo: min(mean/target, 1) * weight.
func (s *TeamScorer) meanTerm(mean, weight decimal.Decimal) decimal.Decimal {
	return capOne(mean.Div(s.cfg.MeanTarget)).Mul(weight)
}

// similarityTerm premia dispersiones bajas: (1 - min(std/maxStd, 1)) * weight.
func (s *TeamScorer) similarityTerm(std, weight decimal.Decimal) decimal.Decimal {
	ratio := capOne(std.Div(s.cfg.MaxStd))
	return decimal.NewFromInt(1).Sub(ratio).Mul(weight)
}

// diversityTerm premia dispersiones altas: min(var/maxVar, 1) * weight.
func (s *TeamScorer) diversityTerm(variance, weight decimal.Decimal) decimal.Decimal {
	return capOne(variance.Div(s.cfg.MaxVar)).Mul(weight)
}
