// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectAllQuery(t *testing.T) {
	query, args, err := buildSelectAllQuery(tableScores, scoreColumns, "final_score DESC", "id")
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT id, user_id, map_id, final_score, score, soil_bonus, location_bonus, date FROM scores ORDER BY final_score DESC, id",
		query)
}

func Test_buildSelectByQuery_UsesDollarPlaceholder(t *testing.T) {
	query, args, err := buildSelectByQuery(tableUsers, userColumns, "username", "river")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "river", args[0])
	assert.Contains(t, query, "WHERE username = $1")
	assert.NotContains(t, query, "?")
}

func Test_buildInsertQuery_ReturnsAllColumns(t *testing.T) {
	query, args, err := buildInsertQuery(tableTiles, tileColumns[1:], []any{"mud", 3}, tileColumns)
	require.NoError(t, err)

	assert.Equal(t, []any{"mud", 3}, args)
	assert.Equal(t, "INSERT INTO tiles (type,resistance) VALUES ($1,$2) RETURNING id, type, resistance", query)
}

// Test_buildCreateUserQuery_IsSingleConditionalInsert verifies that the
// uniqueness check and the insert are the same statement.
func Test_buildCreateUserQuery_IsSingleConditionalInsert(t *testing.T) {
	query, args, err := buildCreateUserQuery("Rivers", "river", "hash")
	require.NoError(t, err)

	assert.Equal(t, []any{"Rivers", "river", "hash"}, args)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Contains(t, query, "ON CONFLICT (username) DO NOTHING")
	assert.Contains(t, query, "RETURNING id, handle, username, password")
	assert.Equal(t, 1, strings.Count(query, "INSERT"))
}

func Test_buildUpdateQuery(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]any
		wantQuery string
		wantArgs  []any
		wantErr   error
	}{
		{
			name:      "single column",
			values:    map[string]any{"handle": "New"},
			wantQuery: "UPDATE users SET handle = $1 WHERE id = $2",
			wantArgs:  []any{"New", int64(3)},
		},
		{
			name:      "columns are sorted",
			values:    map[string]any{"username": "n", "handle": "N"},
			wantQuery: "UPDATE users SET handle = $1, username = $2 WHERE id = $3",
			wantArgs:  []any{"N", "n", int64(3)},
		},
		{
			name:    "no values",
			values:  map[string]any{},
			wantErr: ErrNothingToUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateQuery(tableUsers, 3, tt.values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(tableMapLayouts, 8)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM map_layouts WHERE id = $1", query)
	assert.Equal(t, []any{int64(8)}, args)
}

func Test_buildMapLayoutQuery_JoinsTilesOrderedByPosition(t *testing.T) {
	query, args, err := buildMapLayoutQuery(2)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from map_layouts ml")
	assert.Contains(t, q, "join tiles t on t.id = ml.tile_id")
	assert.Contains(t, q, "where ml.map_id = $1")
	assert.True(t, strings.HasSuffix(q, "order by ml.position, ml.id"))
	assert.Equal(t, []any{int64(2)}, args)
}

func Test_buildUserScoresQuery(t *testing.T) {
	query, args, err := buildUserScoresQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM scores WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY date, id")
	assert.Equal(t, []any{int64(7)}, args)
}
