package models

// Map describes a game board by where its river starts and ends.
type Map struct {
	ID               int64 `json:"id"`
	RiverStartRow    int   `json:"river_start_row"`
	RiverStartColumn int   `json:"river_start_column"`
	RiverEndRow      int   `json:"river_end_row"`
	RiverEndColumn   int   `json:"river_end_column"`
}

// TableName returns the database table backing [Map].
func (m Map) TableName() string {
	return "maps"
}

// MapInput is the request body for creating or patching a map.
type MapInput struct {
	RiverStartRow    *int `json:"river_start_row"`
	RiverStartColumn *int `json:"river_start_column"`
	RiverEndRow      *int `json:"river_end_row"`
	RiverEndColumn   *int `json:"river_end_column"`
}

// Fields implements [Fielder].
func (m MapInput) Fields() []Field {
	return []Field{
		{Name: "river_start_row", Value: m.RiverStartRow},
		{Name: "river_start_column", Value: m.RiverStartColumn},
		{Name: "river_end_row", Value: m.RiverEndRow},
		{Name: "river_end_column", Value: m.RiverEndColumn},
	}
}

// ToMap converts a fully populated input into a [Map]. Callers validate the
// input first; unset fields become zero.
func (m MapInput) ToMap() Map {
	return Map{
		RiverStartRow:    valueOf(m.RiverStartRow),
		RiverStartColumn: valueOf(m.RiverStartColumn),
		RiverEndRow:      valueOf(m.RiverEndRow),
		RiverEndColumn:   valueOf(m.RiverEndColumn),
	}
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
