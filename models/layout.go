package models

// MapLayout places a tile at a position on a map.
type MapLayout struct {
	ID       int64 `json:"id"`
	MapID    int64 `json:"map_id"`
	TileID   int64 `json:"tile_id"`
	Position int   `json:"position"`
}

// TableName returns the database table backing [MapLayout].
func (l MapLayout) TableName() string {
	return "map_layouts"
}

// MapLayoutInput is the request body for creating or patching a layout.
type MapLayoutInput struct {
	MapID    *int64 `json:"map_id"`
	TileID   *int64 `json:"tile_id"`
	Position *int   `json:"position"`
}

// Fields implements [Fielder].
func (l MapLayoutInput) Fields() []Field {
	return []Field{
		{Name: "map_id", Value: l.MapID},
		{Name: "tile_id", Value: l.TileID},
		{Name: "position", Value: l.Position},
	}
}

// ToMapLayout converts a validated input into a [MapLayout].
func (l MapLayoutInput) ToMapLayout() MapLayout {
	return MapLayout{
		MapID:    valueOf(l.MapID),
		TileID:   valueOf(l.TileID),
		Position: valueOf(l.Position),
	}
}

// LayoutTile is one rendered cell of a map: a layout row joined with the
// attributes of its tile. ID is the map's id.
type LayoutTile struct {
	ID         int64  `json:"id"`
	TileID     int64  `json:"tileID"`
	Position   int    `json:"position"`
	Type       string `json:"type"`
	Resistance int    `json:"resistance"`
}
