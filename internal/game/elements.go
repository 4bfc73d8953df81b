package game

// Element is one of the fixed damage/resistance categories. The set is
// closed: it is never extended at runtime, and every damage or resistance
// map is expected to carry an entry for each element before a battle runs.
type Element string

const (
	Metal   Element = "metal"
	Wood    Element = "wood"
	Water   Element = "water"
	Fire    Element = "fire"
	Earth   Element = "earth"
	Wind    Element = "wind"
	Thunder Element = "thunder"
	Poison  Element = "poison"
	Arcane  Element = "arcane"
	Holy    Element = "holy"
	Mental  Element = "mental"
)

// Elements is the canonical ordered list of all elements. Iterating this
// slice (instead of ranging over a map) keeps damage computation
// deterministic for a fixed random source.
var Elements = []Element{
	Metal, Wood, Water, Fire, Earth, Wind,
	Thunder, Poison, Arcane, Holy, Mental,
}

// ElementMap maps an element to an integer magnitude: base damage on a
// skill, or resistance on an attribute (negative values are
// vulnerabilities).
type ElementMap map[Element]int

// Normalized returns a copy of the map with every element present,
// defaulting missing entries to 0. Used at ingestion time so the engine
// always sees complete maps.
func (m ElementMap) Normalized() ElementMap {
	out := make(ElementMap, len(Elements))
	for _, e := range Elements {
		out[e] = m[e]
	}
	return out
}

// Complete reports whether the map defines a value for every element.
func (m ElementMap) Complete() bool {
	for _, e := range Elements {
		if _, ok := m[e]; !ok {
			return false
		}
	}
	return true
}
