package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"trait-match/internal/domain"
)

// MemberRepository expone la vista de miembros inscritos en un matching. Un
// matching sin miembros devuelve una lista vacia, no un error.
type MemberRepository interface {
	FindByMatchingID(ctx context.Context, matchingID string) ([]domain.MemberRecord, error)
}

type PgMemberRepository struct {
	pool *pgxpool.Pool
}

func NewPgMemberRepository(pool *pgxpool.Pool) *PgMemberRepository {
	return &PgMemberRepository{pool: pool}
}

func (r *PgMemberRepository) FindByMatchingID(ctx context.Context, matchingID string) ([]domain.MemberRecord, error) {
	const query = `
		SELECT member_id, matching_id, openness_score, conscientiousness_score,
		       extraversion_score, agreeableness_score, neuroticism_score
		FROM member_view
		WHERE matching_id = $1
		ORDER BY member_id
	`

	rows, err := r.pool.Query(ctx, query, matchingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MemberRecord
	for rows.Next() {
		var rec domain.MemberRecord
		if err := rows.Scan(
			&rec.MemberID,
			&rec.MatchingID,
			&rec.Openness,
			&rec.Conscientiousness,
			&rec.Extraversion,
			&rec.Agreeableness,
			&rec.Neuroticism,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
