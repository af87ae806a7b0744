package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/abilities"
	"github.com/KirkDiggler/rpg-retool/internal/entries"
)

// variantSuffixes name the ability variants of a race that has more than one.
var variantSuffixes = []string{"A", "B"}

const lineageLanguages = "You can speak, read, and write Common and one other language " +
	"that you and your DM agree is appropriate for your character."

// lineageAbilities replaces the ability list of races with a custom lineage.
var lineageAbilities = map[string]gjson.Result{
	"VRGR": gjson.Parse(`[{"choose":{"weighted":{"weights":[2,1]}}},{"choose":{"weighted":{"weights":[1,1,1]}}}]`),
	"UA1":  gjson.Parse(`[{"choose":{"weighted":{"weights":[2,1]}}}]`),
}

// RaceConverter converts a { "race": [...], "subrace": [...] } document.
type RaceConverter struct {
	workers   int
	logger    *slog.Logger
	allocator *abilities.Allocator
}

// Convert implements Converter.
func (c *RaceConverter) Convert(ctx context.Context, doc gjson.Result) (any, error) {
	return c.Records(ctx, doc)
}

// Records converts every race in doc. Each race contributes its ability
// variants followed by one record per matching subrace and variant.
func (c *RaceConverter) Records(ctx context.Context, doc gjson.Result) ([]RaceRecord, error) {
	races, err := topLevel(doc, "race")
	if err != nil {
		return nil, err
	}
	subraces := doc.Get("subrace").Array()

	return convertEach(ctx, c.workers, races.Array(), func(race gjson.Result) []RaceRecord {
		return c.records(race, subracesOf(race, subraces))
	})
}

func (c *RaceConverter) records(race gjson.Result, subraces []gjson.Result) []RaceRecord {
	specs, traits := c.lineage(race)

	allocs := c.allocator.Allocate(specs)
	if len(allocs) == 0 {
		allocs = []abilities.Allocation{{}}
	}
	suffix := len(allocs) > 1

	var out []RaceRecord
	var bases []RaceRecord
	var baseAllocs []abilities.Allocation
	for i, alloc := range allocs {
		name, ok := raceName(race, i, suffix)
		if !ok {
			c.logger.Debug("Dropping race ability variant without a suffix",
				"race", race.Get("name").String(), "variant", i)
			continue
		}
		rec := RaceRecord{
			Name:               name,
			Speed:              raceSpeed(race.Get("speed")),
			AbilityBonuses:     alloc.Bonuses,
			FlexAbilityBonuses: flex(alloc.Choices),
			Traits:             traits,
		}
		bases = append(bases, rec)
		baseAllocs = append(baseAllocs, alloc)
	}
	out = append(out, bases...)

	for _, sub := range subraces {
		for i, base := range bases {
			out = append(out, c.subraceRecord(base, baseAllocs[i], sub))
		}
	}
	return out
}

func (c *RaceConverter) subraceRecord(base RaceRecord, alloc abilities.Allocation, sub gjson.Result) RaceRecord {
	merged := c.allocator.ForSubrace(alloc, sub)

	speed := base.Speed
	if s := sub.Get("speed"); s.Exists() {
		speed = raceSpeed(s)
	}

	traits := make([]Trait, 0, len(base.Traits))
	traits = append(traits, base.Traits...)
	traits = append(traits, namedTraits(sub.Get("entries"))...)

	return RaceRecord{
		Name:               subraceName(base.Name, sub),
		Speed:              speed,
		AbilityBonuses:     merged.Bonuses,
		FlexAbilityBonuses: flex(merged.Choices),
		Traits:             traits,
	}
}

// lineage returns the ability specs and traits of race, applying the custom
// lineage rules when the race declares one.
func (c *RaceConverter) lineage(race gjson.Result) (gjson.Result, []Trait) {
	specs := race.Get("ability")
	traits := namedTraits(race.Get("entries"))

	override, ok := lineageAbilities[race.Get("lineage").String()]
	if !ok {
		return specs, traits
	}

	traits = append(traits, Trait{Name: "Languages", Desc: lineageLanguages})
	return override, traits
}

// subracesOf returns the named subraces that belong to race.
func subracesOf(race gjson.Result, subraces []gjson.Result) []gjson.Result {
	name := race.Get("name").String()
	source := race.Get("source").String()

	var out []gjson.Result
	for _, sub := range subraces {
		if sub.Get("name").String() == "" {
			continue
		}
		if sub.Get("raceName").String() != name || sub.Get("raceSource").String() != source {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func raceName(race gjson.Result, idx int, suffix bool) (string, bool) {
	name := race.Get("name").String()
	source := race.Get("source").String()
	if !suffix {
		return fmt.Sprintf("%s (%s)", name, source), true
	}
	if idx >= len(variantSuffixes) {
		return "", false
	}
	return fmt.Sprintf("%s %s (%s)", name, variantSuffixes[idx], source), true
}

// subraceName splices "{race} ({subrace})" into the base record name.
func subraceName(baseName string, sub gjson.Result) string {
	raceName := sub.Get("raceName").String()
	full := fmt.Sprintf("%s (%s)", raceName, sub.Get("name").String())
	return strings.Replace(baseName, raceName, full, 1)
}

// raceSpeed reads a speed given as a number or as { "walk": n }.
func raceSpeed(speed gjson.Result) int {
	switch {
	case speed.Type == gjson.Number:
		return int(speed.Int())
	case speed.IsObject():
		return int(speed.Get("walk").Int())
	default:
		return 0
	}
}

func namedTraits(list gjson.Result) []Trait {
	traits := []Trait{}
	for _, e := range list.Array() {
		name := e.Get("name")
		if !e.IsObject() || name.Type != gjson.String {
			continue
		}
		desc, _ := entries.RenderEntries(e.Get("entries"))
		traits = append(traits, Trait{Name: name.String(), Desc: desc})
	}
	return traits
}

func flex(choices []int) []int {
	if choices == nil {
		return []int{}
	}
	return choices
}
