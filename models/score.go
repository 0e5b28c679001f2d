package models

import "time"

// Score is the result of one finished game on a map.
type Score struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	MapID         int64     `json:"map_id"`
	FinalScore    int       `json:"final_score"`
	Score         int       `json:"score"`
	SoilBonus     int       `json:"soil_bonus"`
	LocationBonus float64   `json:"location_bonus"`
	Date          time.Time `json:"date"`
}

// TableName returns the database table backing [Score].
func (s Score) TableName() string {
	return "scores"
}

// ScoreInput is the request body for creating or patching a score.
// It deliberately has no user_id: the owner always comes from the bearer
// token.
type ScoreInput struct {
	MapID         *int64   `json:"map_id"`
	FinalScore    *int     `json:"final_score"`
	Score         *int     `json:"score"`
	SoilBonus     *int     `json:"soil_bonus"`
	LocationBonus *float64 `json:"location_bonus"`
}

// Fields implements [Fielder].
func (s ScoreInput) Fields() []Field {
	return []Field{
		{Name: "map_id", Value: s.MapID},
		{Name: "final_score", Value: s.FinalScore},
		{Name: "score", Value: s.Score},
		{Name: "soil_bonus", Value: s.SoilBonus},
		{Name: "location_bonus", Value: s.LocationBonus},
	}
}

// ToScore converts a validated input into a [Score] owned by userID.
func (s ScoreInput) ToScore(userID int64) Score {
	return Score{
		UserID:        userID,
		MapID:         valueOf(s.MapID),
		FinalScore:    valueOf(s.FinalScore),
		Score:         valueOf(s.Score),
		SoilBonus:     valueOf(s.SoilBonus),
		LocationBonus: valueOf(s.LocationBonus),
	}
}
