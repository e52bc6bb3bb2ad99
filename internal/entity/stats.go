package entity

// StatBlock holds attributes. Health and mana are derived once at creation and
// afterwards only change through combat.
type StatBlock struct {
	Strength     int
	Dexterity    int
	Intelligence int
	Health       int
	Mana         int
}

// NewStatBlock creates a stat block with health = 2*strength and
// mana = 2*intelligence.
func NewStatBlock(strength, dexterity, intelligence int) StatBlock {
	return StatBlock{
		Strength:     strength,
		Dexterity:    dexterity,
		Intelligence: intelligence,
		Health:       strength * 2,
		Mana:         intelligence * 2,
	}
}
