package service

import (
	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// Claves de los rasgos evaluados en el reporte.
const (
	traitConscientiousnessMean       = "conscientiousnessMean"
	traitConscientiousnessSimilarity = "conscientiousnessSimilarity"
	traitAgreeablenessMean           = "agreeablenessMean"
	traitAgreeablenessSimilarity     = "agreeablenessSimilarity"
	traitOpennessDiversity           = "opennessDiversity"
	traitExtraversionDiversity       = "extraversionDiversity"
	traitNeuroticismSimilarity       = "neuroticismSimilarity"
)

// AbsoluteBand describe la evaluacion absoluta de un rasgo: rango realista del
// valor, tres umbrales de percentil de mejor a peor, y si valores bajos son
// mejores (Reverse) como en los rasgos de similitud.
type AbsoluteBand struct {
	Min        decimal.Decimal
	Max        decimal.Decimal
	Thresholds [3]decimal.Decimal
	Reverse    bool
}

// ScoreBand es la banda de puntaje asignada a cada calificacion.
type ScoreBand struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// GradingConfig contiene las tablas de calificacion. Inmutable, inyectada en la
// construccion.
type GradingConfig struct {
	// RelativeBand es el ancho de banda de la evaluacion relativa contra el
	// promedio global de la solucion.
	RelativeBand decimal.Decimal
	Absolute     map[string]AbsoluteBand
	ScoreBands   map[int]ScoreBand
}

// DefaultGradingConfig devuelve las tablas de produccion.
func DefaultGradingConfig() GradingConfig {
	band := func(min, max, t1, t2, t3 string, reverse bool) AbsoluteBand {
		return AbsoluteBand{
			Min: decimal.RequireFromString(min),
			Max: decimal.RequireFromString(max),
			Thresholds: [3]decimal.Decimal{
				decimal.RequireFromString(t1),
				decimal.RequireFromString(t2),
				decimal.RequireFromString(t3),
			},
			Reverse: reverse,
		}
	}
	return GradingConfig{
		RelativeBand: decimal.NewFromInt(10),
		Absolute: map[string]AbsoluteBand{
			traitConscientiousnessSimilarity: band("0", "20", "7.51", "9.57", "12.31", true),
			traitAgreeablenessSimilarity:     band("0", "20", "6.33", "8.36", "10.68", true),
			traitNeuroticismSimilarity:       band("0", "25", "8.91", "11.56", "14.53", true),
			traitOpennessDiversity:           band("0", "300", "101.61", "64.81", "39.46", false),
			traitExtraversionDiversity:       band("0", "300", "156.66", "99.43", "59.52", false),
		},
		ScoreBands: map[int]ScoreBand{
			4: {decimal.NewFromInt(85), decimal.NewFromInt(100)},
			3: {decimal.NewFromInt(70), decimal.NewFromInt(84)},
			2: {decimal.NewFromInt(55), decimal.NewFromInt(69)},
			1: {decimal.NewFromInt(40), decimal.NewFromInt(54)},
		},
	}
}

// TraitGrader convierte la solucion ganadora en calificaciones por equipo y por
// rasgo, listas para publicar.
type TraitGrader struct {
	cfg GradingConfig
}

func NewTraitGrader(cfg GradingConfig) *TraitGrader {
	return &TraitGrader{cfg: cfg}
}

// Grade produce una entrada de reporte por equipo. Las medias de
// conscientiousness y agreeableness se califican contra el promedio global de
// la solucion; el resto contra umbrales absolutos de percentil.
func (t *TraitGrader) Grade(solution domain.Solution) []domain.TeamReport {
	all := solution.Members()
	globalConscientiousness := decimalMean(teamTrait(all, pickConscientiousness))
	globalAgreeableness := decimalMean(teamTrait(all, pickAgreeableness))

	reports := make([]domain.TeamReport, 0, len(solution))
	for i, team := range solution {
		conscientiousness := teamTrait(team, pickConscientiousness)
		agreeableness := teamTrait(team, pickAgreeableness)
		openness := teamTrait(team, pickOpenness)
		extraversion := teamTrait(team, pickExtraversion)
		neuroticism := teamTrait(team, pickNeuroticism)

		memberIDs := make([]string, len(team))
		for j, member := range team {
			memberIDs[j] = member.MemberID
		}

		report := domain.TeamReport{TeamIndex: i + 1, MemberIDs: memberIDs}

		cMean := decimalMean(conscientiousness)
		report.ConscientiousnessMeanScore = cMean.Round(2).InexactFloat64()
		report.ConscientiousnessMeanEval = t.gradeRelative(cMean, globalConscientiousness)

		aMean := decimalMean(agreeableness)
		report.AgreeablenessMeanScore = aMean.Round(2).InexactFloat64()
		report.AgreeablenessMeanEval = t.gradeRelative(aMean, globalAgreeableness)

		report.ConscientiousnessSimilarityScore, report.ConscientiousnessSimilarityEval =
			t.gradeAbsolute(traitConscientiousnessSimilarity, decimalStd(conscientiousness))
		report.AgreeablenessSimilarityScore, report.AgreeablenessSimilarityEval =
			t.gradeAbsolute(traitAgreeablenessSimilarity, decimalStd(agreeableness))
		report.NeuroticismSimilarityScore, report.NeuroticismSimilarityEval =
			t.gradeAbsolute(traitNeuroticismSimilarity, decimalStd(neuroticism))
		report.OpennessDiversityScore, report.OpennessDiversityEval =
			t.gradeAbsolute(traitOpennessDiversity, decimalVariance(openness))
		report.ExtraversionDiversityScore, report.ExtraversionDiversityEval =
			t.gradeAbsolute(traitExtraversionDiversity, decimalVariance(extraversion))

		reports = append(reports, report)
	}
	return reports
}

// gradeRelative califica contra el promedio global: 4 desde avg+banda, 3 desde
// avg, 2 desde avg-banda, 1 por debajo. Los limites son inclusivos.
func (t *TraitGrader) gradeRelative(value, globalAvg decimal.Decimal) int {
	switch {
	case value.GreaterThanOrEqual(globalAvg.Add(t.cfg.RelativeBand)):
		return 4
	case value.GreaterThanOrEqual(globalAvg):
		return 3
	case value.GreaterThanOrEqual(globalAvg.Sub(t.cfg.RelativeBand)):
		return 2
	default:
		return 1
	}
}

// gradeAbsolute asigna la calificacion por umbrales y el puntaje interpolado
// dentro de la banda correspondiente.
func (t *TraitGrader) gradeAbsolute(key string, value decimal.Decimal) (float64, int) {
	band := t.cfg.Absolute[key]
	eval := evalFromThresholds(value, band.Thresholds, band.Reverse)
	score := t.scoreFromEval(eval, value, band)
	return score.Round(2).InexactFloat64(), eval
}

// evalFromThresholds recorre los umbrales de mejor a peor; gana la primera
// banda satisfecha y caer bajo las tres da 1.
func evalFromThresholds(value decimal.Decimal, thresholds [3]decimal.Decimal, reverse bool) int {
	for i, threshold := range thresholds {
		if reverse {
			if value.LessThanOrEqual(threshold) {
				return 4 - i
			}
		} else if value.GreaterThanOrEqual(threshold) {
			return 4 - i
		}
	}
	return 1
}

// scoreFromEval interpola linealmente la posicion del valor dentro del
// intervalo de limites de su calificacion hacia la banda de puntaje fija,
// invirtiendo la direccion para rasgos reverse. El ratio se acota a [0,1] y un
// intervalo sin ancho usa el punto medio.
func (t *TraitGrader) scoreFromEval(eval int, value decimal.Decimal, band AbsoluteBand) decimal.Decimal {
	bounds := []decimal.Decimal{band.Min, band.Thresholds[0], band.Thresholds[1], band.Thresholds[2], band.Max}
	low := bounds[eval-1]
	high := bounds[eval]

	half := decimal.RequireFromString("0.5")
	ratio := half
	if denom := high.Sub(low); denom.Sign() > 0 {
		ratio = value.Sub(low).Div(denom)
		if ratio.Sign() < 0 {
			ratio = decimal.Zero
		}
		if ratio.GreaterThan(decimal.NewFromInt(1)) {
			ratio = decimal.NewFromInt(1)
		}
	}
	if band.Reverse {
		ratio = decimal.NewFromInt(1).Sub(ratio)
	}

	sb := t.cfg.ScoreBands[eval]
	return sb.Low.Add(sb.High.Sub(sb.Low).Mul(ratio))
}
