package plan

// Reference returns the reference building: a 34' × 24' single storey with
// four 11' × 12' rooms around a 12' × 24' hall and a 6' × 8' stair of eight
// treads in the hall's bottom-left corner.
func Reference() BuildingSpec {
	room := func(id string, col Column, row Row) RoomSpec {
		return RoomSpec{ID: id, Name: "Room", Width: 11, Length: 12, Column: col, Row: row}
	}
	return BuildingSpec{
		Name:   "Ground floor plan",
		Width:  11 + 12 + 11,
		Length: 24,
		Margin: 4,
		Height: 11.5,
		Rooms: []RoomSpec{
			room("left-top", Left, Top),
			room("left-bottom", Left, Bottom),
			room("right-top", Right, Top),
			room("right-bottom", Right, Bottom),
		},
		Hall:  HallSpec{Name: "Hall", Width: 12, Length: 24},
		Stair: StairSpec{Caption: "Stairs", Width: 6, Length: 8, Treads: 8, Anchor: BottomLeft},
	}
}
