package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tableUsers      = "users"
	tableMaps       = "maps"
	tableTiles      = "tiles"
	tableMapLayouts = "map_layouts"
	tableScores     = "scores"
)

var (
	userColumns   = []string{"id", "handle", "username", "password"}
	mapColumns    = []string{"id", "river_start_row", "river_start_column", "river_end_row", "river_end_column"}
	tileColumns   = []string{"id", "type", "resistance"}
	layoutColumns = []string{"id", "map_id", "tile_id", "position"}
	scoreColumns  = []string{"id", "user_id", "map_id", "final_score", "score", "soil_bonus", "location_bonus", "date"}
)

// buildSelectAllQuery returns SELECT columns FROM table ORDER BY orderBy.
func buildSelectAllQuery(table string, columns []string, orderBy ...string) (string, []any, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectByQuery returns SELECT columns FROM table WHERE column = value.
func buildSelectByQuery(table string, columns []string, column string, value any) (string, []any, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertQuery returns an INSERT of values into the given columns,
// returning every column of the table.
func buildInsertQuery(table string, columns []string, values []any, returning []string) (string, []any, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(returning, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCreateUserQuery inserts a user unless the username already exists.
// A taken username yields no returned row, so the uniqueness check and the
// insert happen in one statement.
func buildCreateUserQuery(handle, username, passwordHash string) (string, []any, error) {
	query, args, err := psql.Insert(tableUsers).
		Columns("handle", "username", "password").
		Values(handle, username, passwordHash).
		Suffix("ON CONFLICT (username) DO NOTHING RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateQuery returns UPDATE table SET <values> WHERE id = id.
// Columns are written in sorted order.
func buildUpdateQuery(table string, id int64, values map[string]any) (string, []any, error) {
	if len(values) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	query, args, err := psql.Update(table).
		SetMap(values).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteQuery returns DELETE FROM table WHERE id = id.
func buildDeleteQuery(table string, id int64) (string, []any, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMapLayoutQuery joins the map's layout rows with their tiles, ordered
// by position.
func buildMapLayoutQuery(mapID int64) (string, []any, error) {
	query, args, err := psql.Select(
		"ml.map_id",
		"ml.tile_id",
		"ml.position",
		"t.type",
		"t.resistance",
	).
		From(tableMapLayouts + " ml").
		Join(tableTiles + " t ON t.id = ml.tile_id").
		Where(sq.Eq{"ml.map_id": mapID}).
		OrderBy("ml.position", "ml.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUserScoresQuery selects the user's scores ordered by date.
func buildUserScoresQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(scoreColumns...).
		From(tableScores).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
