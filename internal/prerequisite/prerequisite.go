// Package prerequisite turns a feat's list of prerequisite clauses into one
// sentence, e.g. "Prerequisites: 4th level, Elf or Half-Elf".
package prerequisite

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	singularPrefix = "Prerequisite: "
	pluralPrefix   = "Prerequisites: "
)

// fragmentFunc builds the text for one clause key. It reports false when the
// value yields nothing worth printing.
type fragmentFunc func(value gjson.Result) (string, bool)

type rule struct {
	key   string
	build fragmentFunc
}

// rules is evaluated in order for every clause. Keys not listed here ("note",
// "feat", "background", "psionics"...) produce nothing.
var rules = []rule{
	{key: "level", build: levelFragment},
	{key: "race", build: raceFragment},
	{key: "ability", build: abilityFragment},
	{key: "proficiency", build: proficiencyFragment},
	{key: "spellcasting", build: flagFragment("The ability to cast at least one spell")},
	{key: "spellcasting2020", build: flagFragment("Spellcasting or Pact Magic feature")},
	{key: "alignment", build: alignmentFragment},
	{key: "other", build: otherFragment},
}

// weights orders clauses in the final sentence; lower comes first.
var weights = map[string]int{
	"level":            0,
	"pact":             1,
	"patron":           2,
	"spell":            3,
	"race":             4,
	"ability":          5,
	"proficiency":      6,
	"spellcasting":     7,
	"spellcasting2020": 7,
	"feature":          8,
	"item":             9,
	"other":            10,
	"otherSummary":     11,
}

const unknownWeight = 12

func weightOf(key string) int {
	if w, ok := weights[key]; ok {
		return w
	}
	return unknownWeight
}

type clause struct {
	text      string
	weight    int
	fragments int
}

// ToString renders the prerequisite clause list. It returns "" when no clause
// produces any text.
func ToString(clauses gjson.Result) string {
	var rendered []clause
	for _, c := range clauses.Array() {
		if built, ok := buildClause(c); ok {
			rendered = append(rendered, built)
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		return rendered[i].weight < rendered[j].weight
	})

	total := 0
	texts := make([]string, len(rendered))
	for i, c := range rendered {
		total += c.fragments
		texts[i] = c.text
	}

	switch total {
	case 0:
		return ""
	case 1:
		return singularPrefix + texts[0]
	default:
		return pluralPrefix + strings.Join(texts, ", ")
	}
}

func buildClause(c gjson.Result) (clause, bool) {
	if !c.IsObject() {
		return clause{}, false
	}

	var b strings.Builder
	out := clause{weight: unknownWeight}

	for _, r := range rules {
		value := c.Get(r.key)
		if !value.Exists() {
			continue
		}
		text, ok := r.build(value)
		if !ok {
			continue
		}

		if out.fragments > 0 {
			// a fragment that is itself an "or" list gets a stronger separator
			if strings.Contains(text, " or ") {
				b.WriteString("; ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(text)

		out.fragments++
		if w := weightOf(r.key); w < out.weight {
			out.weight = w
		}
	}

	out.text = b.String()
	return out, out.fragments > 0
}

func flagFragment(text string) fragmentFunc {
	return func(value gjson.Result) (string, bool) {
		if value.Type != gjson.True {
			return "", false
		}
		return text, true
	}
}
