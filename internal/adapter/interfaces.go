// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the erosion server REST API.
//
// The primary abstraction is [APIAdapter], which hides request building,
// bearer token handling and error envelopes from callers. Non-2xx responses
// are mapped by mapHTTPError to the sentinel values defined in errors.go so
// that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/erosion-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter.go -package=mock

// APIAdapter talks to the erosion server on behalf of a single player.
type APIAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Login.
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Register creates a player account and returns the stored user.
	Register(ctx context.Context, user models.NewUser) (models.User, error)

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken. The returned token carries the caller's user id.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ListMaps returns every map.
	ListMaps(ctx context.Context) ([]models.Map, error)

	// GetMapLayout returns the tiles of a map ordered by position.
	GetMapLayout(ctx context.Context, mapID int64) ([]models.LayoutTile, error)

	// CreateScore submits a game result for the logged in player.
	CreateScore(ctx context.Context, score models.ScoreInput) (models.Score, error)

	// ListUserScores returns the score history of userID. The server only
	// allows a player to read their own history.
	ListUserScores(ctx context.Context, userID int64) ([]models.Score, error)
}
