// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the erosion game on PostgreSQL.
//
// Every repository maps one table (users, maps, tiles, map_layouts, scores)
// onto its model type. Statements are built with squirrel and run through
// database/sql with the pgx driver. PostgreSQL constraint errors are
// translated into the sentinel errors declared in errors.go so that upper
// layers never inspect driver error codes.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/erosion-server/models"
)

// UserRepository persists player accounts.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)
	// Get returns the user with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (models.User, error)
	// GetByUsername returns the user with the given username or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// Create inserts a user unless the username is taken, in which case it
	// returns ErrUsernameAlreadyExists. The check and the insert are one
	// statement.
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update writes the given column values. Returns ErrNotFound for an
	// unknown id and ErrUsernameAlreadyExists on a duplicate username.
	Update(ctx context.Context, id int64, values map[string]any) error
	// Delete removes the user and, by cascade, their scores.
	Delete(ctx context.Context, id int64) error
}

// MapRepository persists game maps and reads their layouts.
type MapRepository interface {
	List(ctx context.Context) ([]models.Map, error)
	Get(ctx context.Context, id int64) (models.Map, error)
	Create(ctx context.Context, m models.Map) (models.Map, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
	// Layout returns the tiles placed on the map ordered by position.
	// An unknown map yields an empty slice.
	Layout(ctx context.Context, mapID int64) ([]models.LayoutTile, error)
}

// TileRepository persists tile types.
type TileRepository interface {
	List(ctx context.Context) ([]models.Tile, error)
	Get(ctx context.Context, id int64) (models.Tile, error)
	Create(ctx context.Context, tile models.Tile) (models.Tile, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// LayoutRepository persists tile placements.
type LayoutRepository interface {
	List(ctx context.Context) ([]models.MapLayout, error)
	Get(ctx context.Context, id int64) (models.MapLayout, error)
	Create(ctx context.Context, layout models.MapLayout) (models.MapLayout, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// ScoreRepository persists game results.
type ScoreRepository interface {
	// List returns every score ordered by final_score, best first.
	List(ctx context.Context) ([]models.Score, error)
	Get(ctx context.Context, id int64) (models.Score, error)
	// ListByUser returns the user's scores ordered by date.
	ListByUser(ctx context.Context, userID int64) ([]models.Score, error)
	Create(ctx context.Context, score models.Score) (models.Score, error)
	Update(ctx context.Context, id int64, values map[string]any) error
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may
// succeed if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
