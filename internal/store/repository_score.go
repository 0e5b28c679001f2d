package store

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

// scoreRepository is the PostgreSQL-backed implementation of
// [ScoreRepository]. The date column is filled by the database.
type scoreRepository struct {
	*DB
	logger *logger.Logger
}

// NewScoreRepository constructs a [ScoreRepository].
func NewScoreRepository(db *DB, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{DB: db, logger: logger}
}

func scanScore(row rowScanner) (models.Score, error) {
	var s models.Score
	err := row.Scan(&s.ID, &s.UserID, &s.MapID, &s.FinalScore, &s.Score, &s.SoilBonus, &s.LocationBonus, &s.Date)
	return s, err
}

func (r *scoreRepository) List(ctx context.Context) ([]models.Score, error) {
	query, args, err := buildSelectAllQuery(tableScores, scoreColumns, "final_score DESC", "id")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "scoreRepository.List", query, args, scanScore)
}

func (r *scoreRepository) Get(ctx context.Context, id int64) (models.Score, error) {
	query, args, err := buildSelectByQuery(tableScores, scoreColumns, "id", id)
	if err != nil {
		return models.Score{}, err
	}
	return queryOne(ctx, r.DB, "scoreRepository.Get", query, args, scanScore)
}

func (r *scoreRepository) ListByUser(ctx context.Context, userID int64) ([]models.Score, error) {
	query, args, err := buildUserScoresQuery(userID)
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "scoreRepository.ListByUser", query, args, scanScore)
}

// Create inserts score. The stored row, including the database assigned
// date, is returned.
func (r *scoreRepository) Create(ctx context.Context, score models.Score) (models.Score, error) {
	query, args, err := buildInsertQuery(tableScores,
		[]string{"user_id", "map_id", "final_score", "score", "soil_bonus", "location_bonus"},
		[]any{score.UserID, score.MapID, score.FinalScore, score.Score, score.SoilBonus, score.LocationBonus},
		scoreColumns)
	if err != nil {
		return models.Score{}, err
	}
	return queryOne(ctx, r.DB, "scoreRepository.Create", query, args, scanScore)
}

func (r *scoreRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	return r.updateByID(ctx, "scoreRepository.Update", tableScores, id, values)
}

func (r *scoreRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "scoreRepository.Delete", tableScores, id)
}
