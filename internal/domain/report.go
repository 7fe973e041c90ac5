package domain

// TeamReport es la entrada de reporte por equipo que se publica al finalizar
// una corrida: identificadores de miembros mas, por cada rasgo evaluado, un
// puntaje interpolado y una calificacion de 1 a 4 (4 = mejor).
type TeamReport struct {
	TeamIndex int      `json:"teamIndex"`
	MemberIDs []string `json:"memberIds"`

	ConscientiousnessMeanScore       float64 `json:"conscientiousnessMeanScore"`
	ConscientiousnessMeanEval        int     `json:"conscientiousnessMeanEval"`
	ConscientiousnessSimilarityScore float64 `json:"conscientiousnessSimilarityScore"`
	ConscientiousnessSimilarityEval  int     `json:"conscientiousnessSimilarityEval"`
	AgreeablenessMeanScore           float64 `json:"agreeablenessMeanScore"`
	AgreeablenessMeanEval            int     `json:"agreeablenessMeanEval"`
	AgreeablenessSimilarityScore     float64 `json:"agreeablenessSimilarityScore"`
	AgreeablenessSimilarityEval      int     `json:"agreeablenessSimilarityEval"`
	OpennessDiversityScore           float64 `json:"opennessDiversityScore"`
	OpennessDiversityEval            int     `json:"opennessDiversityEval"`
	ExtraversionDiversityScore       float64 `json:"extraversionDiversityScore"`
	ExtraversionDiversityEval        int     `json:"extraversionDiversityEval"`
	NeuroticismSimilarityScore       float64 `json:"neuroticismSimilarityScore"`
	NeuroticismSimilarityEval        int     `json:"neuroticismSimilarityEval"`
}
