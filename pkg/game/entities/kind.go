// Package entities holds the things that occupy dungeon tiles: static map
// objects, the player and enemies.
package entities

// Kind identifies what an entity is. The kinds up to KindPotion double as
// the tile codes of a generated map.
type Kind int

const (
	KindNone Kind = iota
	KindWall
	KindGate
	KindDoor
	KindKey
	KindPortal
	KindGold
	KindPotion
	KindPlayer
	KindEnemy
)

// Settings are the static properties shared by every entity of a kind.
type Settings struct {
	Name   string
	Glyph  rune
	Solid  bool // blocks movement
	Opaque bool // blocks sight
}

var kindSettings = map[Kind]Settings{
	KindNone:   {Name: "Floor", Glyph: '.'},
	KindWall:   {Name: "Wall", Glyph: '#', Solid: true, Opaque: true},
	KindGate:   {Name: "Gate", Glyph: '-', Solid: true, Opaque: true},
	KindDoor:   {Name: "Door", Glyph: '+', Solid: true, Opaque: true},
	KindKey:    {Name: "Key", Glyph: '='},
	KindPortal: {Name: "Portal", Glyph: '>'},
	KindGold:   {Name: "Gold", Glyph: '$'},
	KindPotion: {Name: "Potion", Glyph: '&'},
	KindPlayer: {Name: "Player", Glyph: '@', Solid: true},
	KindEnemy:  {Name: "Enemy", Glyph: 'E', Solid: true},
}

// Settings returns the static settings for k
func (k Kind) Settings() Settings {
	return kindSettings[k]
}

func (k Kind) String() string {
	if s, ok := kindSettings[k]; ok {
		return s.Name
	}
	return "Unknown"
}

// Glyph returns the map character for k
func (k Kind) Glyph() rune {
	return k.Settings().Glyph
}

// IsSolid reports whether entities of this kind block movement
func (k Kind) IsSolid() bool {
	return k.Settings().Solid
}

// IsOpaque reports whether entities of this kind block sight
func (k Kind) IsOpaque() bool {
	return k.Settings().Opaque
}

// IsPickup reports whether the player collects this kind by walking over it
func (k Kind) IsPickup() bool {
	return k == KindKey || k == KindGold || k == KindPotion
}

// IsDoorway reports whether this kind can be opened
func (k Kind) IsDoorway() bool {
	return k == KindGate || k == KindDoor
}
