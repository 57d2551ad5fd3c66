package model

// Snapshot is what spectators receive. It is a copy, never shared with the
// running game.
type Snapshot struct {
	Session      string
	Frame        uint64
	Player       Actor
	Chasers      []Actor
	PickupsLeft  int
	PickupsTotal int
}

type Actor struct {
	X, Y      int
	Col, Row  int
	Direction Direction
}
