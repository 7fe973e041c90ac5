package service

import (
	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// FilterConfig contiene los umbrales del filtro de soluciones.
type FilterConfig struct {
	// MeanGate y SpreadGate gobiernan el criterio minimo por equipo, expresado
	// en ratios: media de conscientiousness sobre el objetivo y desviaciones
	// sobre el tope de normalizacion.
	MeanGate   decimal.Decimal
	SpreadGate decimal.Decimal
	// MinScore y AvgScore gobiernan la puerta de calidad por solucion.
	MinScore decimal.Decimal
	AvgScore decimal.Decimal
}

// DefaultFilterConfig devuelve los umbrales de produccion.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MeanGate:   decimal.RequireFromString("0.70"),
		SpreadGate: decimal.RequireFromString("0.75"),
		MinScore:   decimal.RequireFromString("44.0"),
		AvgScore:   decimal.RequireFromString("46.0"),
	}
}

// SolutionFilter descarta soluciones cuyos equipos o calidad agregada quedan
// bajo los umbrales. Preserva el orden de entrada entre las sobrevivientes.
type SolutionFilter struct {
	cfg    FilterConfig
	scorer *TeamScorer
}

func NewSolutionFilter(cfg FilterConfig, scorer *TeamScorer) *SolutionFilter {
	return &SolutionFilter{cfg: cfg, scorer: scorer}
}

// Filter evalua cada solucion candidata: primero el criterio minimo por equipo
// y, solo si todos los equipos lo superan, la puerta de calidad sobre los
// puntajes. Un resultado vacio es valido.
func (f *SolutionFilter) Filter(solutions []domain.Solution) []domain.FilteredSolution {
	var filtered []domain.FilteredSolution

	for _, solution := range solutions {
		if !f.allTeamsPassMinimum(solution) {
			continue
		}

		scores := make([]decimal.Decimal, 0, len(solution))
		ok := true
		for _, team := range solution {
			score, err := f.scorer.Score(team)
			if err != nil {
				ok = false
				break
			}
			scores = append(scores, score)
		}
		if !ok || !f.isValidSolution(scores) {
			continue
		}

		filtered = append(filtered, domain.FilteredSolution{
			Solution:   solution,
			TeamScores: scores,
			AvgScore:   decimalMean(scores).Round(2),
		})
	}

	return filtered
}

func (f *SolutionFilter) allTeamsPassMinimum(solution domain.Solution) bool {
	for _, team := range solution {
		if !f.passesMinimumCriteria(team) {
			return false
		}
	}
	return true
}

// passesMinimumCriteria aplica la puerta OR por equipo: media de
// conscientiousness suficientemente alta, o dispersion baja en
// conscientiousness o agreeableness.
func (f *SolutionFilter) passesMinimumCriteria(team domain.Team) bool {
	if len(team) == 0 {
		return false
	}

	conscientiousness := teamTrait(team, pickConscientiousness)
	agreeableness := teamTrait(team, pickAgreeableness)

	meanRatio := decimalMean(conscientiousness).Div(f.scorer.cfg.MeanTarget)
	if meanRatio.GreaterThanOrEqual(f.cfg.MeanGate) {
		return true
	}

	if decimalStd(conscientiousness).Div(f.scorer.cfg.MaxStd).LessThanOrEqual(f.cfg.SpreadGate) {
		return true
	}
	return decimalStd(agreeableness).Div(f.scorer.cfg.MaxStd).LessThanOrEqual(f.cfg.SpreadGate)
}

func (f *SolutionFilter) isValidSolution(scores []decimal.Decimal) bool {
	if len(scores) == 0 {
		return false
	}
	min := scores[0]
	for _, s := range scores[1:] {
		if s.LessThan(min) {
			min = s
		}
	}
	return min.GreaterThanOrEqual(f.cfg.MinScore) && decimalMean(scores).GreaterThanOrEqual(f.cfg.AvgScore)
}
