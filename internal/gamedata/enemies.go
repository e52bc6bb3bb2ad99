package gamedata

// EnemyDef defines a creature kind loaded from JSON. Every kind shares the
// same chasing behaviour; only stats and looks differ.
type EnemyDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "goblin")
	Name         string `json:"name"`         // Name used in combat messages (e.g., "a Goblin")
	Glyph        string `json:"glyph"`        // Single character for rendering (e.g., "g")
	Strength     int    `json:"strength"`     // Attack damage; health is twice this
	Dexterity    int    `json:"dexterity"`    // Not used by combat yet
	Intelligence int    `json:"intelligence"` // Mana is twice this
	SpawnWeight  int    `json:"spawnWeight"`  // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
