package entity

// Player has a mark fixed at creation; only the name can change.
type Player struct {
	name string
	mark Mark
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		name: name,
		mark: mark,
	}
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) SetName(name string) {
	that.name = name
}

func (that *Player) Mark() Mark {
	return that.mark
}
