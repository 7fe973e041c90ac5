package domain

// MemberRecord representa una fila de MEMBER_VIEW: un miembro inscrito en un
// proceso de matching junto a sus cinco puntajes de personalidad.
type MemberRecord struct {
	MemberID          string  `json:"member_id"`
	MatchingID        string  `json:"matching_id"`
	Openness          float64 `json:"openness_score"`
	Conscientiousness float64 `json:"conscientiousness_score"`
	Extraversion      float64 `json:"extraversion_score"`
	Agreeableness     float64 `json:"agreeableness_score"`
	Neuroticism       float64 `json:"neuroticism_score"`
}
