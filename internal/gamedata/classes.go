package gamedata

import "fmt"

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "warrior")
	Name         string `json:"name"`         // Display name (e.g., "Warrior")
	Strength     int    `json:"strength"`     // Drives attack damage and health
	Dexterity    int    `json:"dexterity"`    // Not used by combat yet
	Intelligence int    `json:"intelligence"` // Drives mana
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// ClassByID loads the classes and returns the one matching id.
func ClassByID(id string) (*ClassDef, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i], nil
		}
	}
	return nil, fmt.Errorf("unknown class %q", id)
}
