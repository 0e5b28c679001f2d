package models

import "html"

// Tile is a terrain type with its resistance to erosion.
type Tile struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Resistance int    `json:"resistance"`
}

// TableName returns the database table backing [Tile].
func (t Tile) TableName() string {
	return "tiles"
}

// Sanitized returns a copy of t with Type HTML-escaped.
func (t Tile) Sanitized() Tile {
	t.Type = html.EscapeString(t.Type)
	return t
}

// TileInput is the request body for creating or patching a tile.
type TileInput struct {
	Type       *string `json:"type"`
	Resistance *int    `json:"resistance"`
}

// Fields implements [Fielder].
func (t TileInput) Fields() []Field {
	return []Field{
		{Name: "type", Value: t.Type},
		{Name: "resistance", Value: t.Resistance},
	}
}

// ToTile converts a validated input into a [Tile].
func (t TileInput) ToTile() Tile {
	return Tile{
		Type:       valueOf(t.Type),
		Resistance: valueOf(t.Resistance),
	}
}
