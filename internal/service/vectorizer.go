package service

import (
	"github.com/shopspring/decimal"

	"trait-match/internal/domain"
)

// ConvertMembers transforma los registros de miembros en unidades con vector de
// rasgos, preservando el orden de entrada. No valida ni filtra: una lista vacia
// produce un resultado vacio y es el orquestador quien corta la corrida.
func ConvertMembers(records []domain.MemberRecord) []domain.MemberUnit {
	units := make([]domain.MemberUnit, len(records))
	for i, rec := range records {
		units[i] = domain.MemberUnit{
			MemberID: rec.MemberID,
			Vector: domain.TraitVector{
				Conscientiousness: decimal.NewFromFloat(rec.Conscientiousness),
				Agreeableness:     decimal.NewFromFloat(rec.Agreeableness),
				Openness:          decimal.NewFromFloat(rec.Openness),
				Extraversion:      decimal.NewFromFloat(rec.Extraversion),
				Neuroticism:       decimal.NewFromFloat(rec.Neuroticism),
			},
		}
	}
	return units
}
