package engine

import (
	"fmt"
	"math"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// fluctuationRange is the half-width of the uniform multiplicative damage
// fluctuation: every resolved hit lands between -15% and +15% of its
// computed total.
const fluctuationRange = 0.15

// ComputeDamage resolves a skill against a defender. For each element in
// the skill's damage map, the defender's resistance comes from the first
// attribute in its stored attribute order that defines an entry for that
// element; later attributes are ignored for that element. Each element
// contributes max(0, base - resistance); the sum is then fluctuated by a
// uniform draw in [-15%, +15%] and rounded. The result is never negative.
func (e *Engine) ComputeDamage(skill *game.Skill, defender *game.Participant) int {
	total := 0
	for _, elem := range game.Elements {
		base, ok := skill.Damage[elem]
		if !ok {
			continue
		}
		if d := base - resistanceFor(defender, elem); d > 0 {
			total += d
		}
	}
	fluctuation := e.float64()*(2*fluctuationRange) - fluctuationRange
	dealt := float64(total) * (1 + fluctuation)
	if dealt < 0 {
		dealt = 0
	}
	return int(math.Round(dealt))
}

// resistanceFor implements the order-sensitive "first matching attribute
// wins" lookup rule.
func resistanceFor(p *game.Participant, elem game.Element) int {
	for _, attr := range p.Character.Attributes {
		if r, ok := attr.Resistance[elem]; ok {
			return r
		}
	}
	return 0
}

// ResolveAttack applies one skill use from attacker to defender, appending
// the use_skill, deal_damage, hp_update and (when lethal) defeated entries
// to the log. Both the stored and the logged HP are clamped at 0. Returns
// the damage dealt.
func (e *Engine) ResolveAttack(attacker, defender *game.Participant, skill *game.Skill, log *[]game.LogEntry) int {
	*log = append(*log, game.LogEntry{
		Event:     game.EventUseSkill,
		Character: attacker.Name(),
		Defender:  defender.Name(),
		Skill:     skill.Name,
		Effect:    skill.Effect,
		Message:   fmt.Sprintf("%q uses %q on %q!", attacker.Name(), skill.Name, defender.Name()),
	})

	dmg := e.ComputeDamage(skill, defender)
	before, after := defender.ApplyDamage(dmg)
	attacker.DamageDealt += dmg
	defender.DamageTaken += dmg

	*log = append(*log, game.LogEntry{
		Event:            game.EventDealDamage,
		Attacker:         attacker.Name(),
		Defender:         defender.Name(),
		Skill:            skill.Name,
		DamageDealt:      game.IntRef(dmg),
		DefenderHPBefore: game.IntRef(before),
		DefenderHPAfter:  game.IntRef(after),
		Message:          fmt.Sprintf("%q takes %d damage.", defender.Name(), dmg),
	})
	*log = append(*log, game.LogEntry{
		Event:     game.EventHPUpdate,
		Character: defender.Name(),
		HP:        game.IntRef(after),
		Message:   fmt.Sprintf("%q has %d HP remaining.", defender.Name(), after),
	})
	if !defender.Alive() {
		*log = append(*log, game.LogEntry{
			Event:     game.EventDefeated,
			Character: defender.Name(),
			Message:   fmt.Sprintf("%q has been defeated!", defender.Name()),
		})
	}
	return dmg
}
