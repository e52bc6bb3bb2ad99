// Package combat provides attack resolution and the combat message log.
package combat

import (
	"github.com/samdwyer/roomcrawl/internal/point"
)

// AttackType classifies how an attack deals damage.
type AttackType int

const (
	AttackSlashing AttackType = iota
	AttackPiercing
	AttackElemental
)

// String returns a human-readable attack type name.
func (t AttackType) String() string {
	switch t {
	case AttackSlashing:
		return "slashing"
	case AttackPiercing:
		return "piercing"
	case AttackElemental:
		return "elemental"
	default:
		return "unknown"
	}
}

// Element qualifies elemental attacks.
type Element int

const (
	ElementNone Element = iota
	ElementFire
	ElementFrost
	ElementLightning
)

// Attack is a single blow aimed at a tile.
type Attack struct {
	Type     AttackType
	Element  Element // Only meaningful for AttackElemental
	Damage   int
	Position point.Point
}

// Result is the outcome of an attack as seen by the target.
type Result struct {
	Damage      int
	TargetAlive bool
	TargetName  string
}

// Combatant is anything that can be hit.
type Combatant interface {
	GetName() string
	IsAlive() bool
	ReceiveAttack(attack Attack) Result
}

// Attacker is anything that can produce an attack.
type Attacker interface {
	GetName() string
	SendAttack() Attack
}

// Logger receives combat outcomes for display.
type Logger interface {
	LogCombat(actor string, result Result)
}

// Strike resolves one attack from attacker against target and reports it.
// log may be nil.
func Strike(attacker Attacker, target Combatant, log Logger) Result {
	result := target.ReceiveAttack(attacker.SendAttack())
	if log != nil {
		log.LogCombat(attacker.GetName(), result)
	}
	return result
}
