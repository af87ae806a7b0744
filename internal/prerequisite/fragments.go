package prerequisite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/markup"
	"github.com/KirkDiggler/rpg-retool/internal/prose"
)

type ability struct {
	key   string
	label string
}

var abilities = []ability{
	{"str", "Strength"},
	{"dex", "Dexterity"},
	{"con", "Constitution"},
	{"int", "Intelligence"},
	{"wis", "Wisdom"},
	{"cha", "Charisma"},
}

func levelFragment(value gjson.Result) (string, bool) {
	if value.Type == gjson.Number {
		return prose.Ordinal(int(value.Int())) + " level", true
	}
	if !value.IsObject() {
		return "", false
	}

	var tokens []string
	if level := value.Get("level"); level.Exists() && level.Int() != 1 {
		tokens = append(tokens, prose.Ordinal(int(level.Int()))+" level")
	}
	for _, key := range []string{"class", "subclass"} {
		if ref := value.Get(key); ref.Get("visible").Bool() {
			if name := ref.Get("name").String(); name != "" {
				tokens = append(tokens, name)
			}
		}
	}

	if len(tokens) == 0 {
		return "", false
	}
	return strings.Join(tokens, " "), true
}

func raceFragment(value gjson.Result) (string, bool) {
	var names []string
	for _, race := range value.Array() {
		name := race.Get("name").String()
		if display := race.Get("displayEntry"); display.Exists() {
			name = display.String()
		}
		name = prose.TitleCase(markup.Resolve(name))
		if name == "" {
			continue
		}
		if subrace := race.Get("subrace"); subrace.Exists() {
			name += fmt.Sprintf(" (%s)", subrace.String())
		}
		names = append(names, name)
	}
	return prose.JoinConjunct(names, ", ", "or ")
}

func abilityFragment(value gjson.Result) (string, bool) {
	var labels []string
	seen := make(map[string]bool)
	threshold := int64(0)

	for _, member := range value.Array() {
		for _, a := range abilities {
			score := member.Get(a.key)
			if !score.Exists() {
				continue
			}
			if !seen[a.key] {
				seen[a.key] = true
				labels = append(labels, a.label)
			}
			if score.Int() > threshold {
				threshold = score.Int()
			}
		}
	}

	joined, ok := prose.JoinConjunct(labels, ", ", "or ")
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s %d or higher", joined, threshold), true
}

func proficiencyFragment(value gjson.Result) (string, bool) {
	var sets []string
	for _, set := range value.Array() {
		var parts []string
		set.ForEach(func(key, kind gjson.Result) bool {
			switch key.String() {
			case "armor":
				parts = append(parts, kind.String()+" armor")
			case "weapon":
				parts = append(parts, "a "+kind.String()+" weapon")
			}
			return true
		})
		if joined, ok := prose.JoinConjunct(parts, ", ", "and "); ok {
			sets = append(sets, joined)
		}
	}

	joined, ok := prose.JoinConjunct(sets, ", ", "or ")
	if !ok {
		return "", false
	}
	return "Proficiency with " + joined, true
}

func otherFragment(value gjson.Result) (string, bool) {
	text := markup.Resolve(value.String())
	return text, text != ""
}

var alignmentWords = map[string]string{
	"L":  "lawful",
	"C":  "chaotic",
	"G":  "good",
	"E":  "evil",
	"N":  "neutral",
	"NX": "neutral",
	"NY": "neutral",
	"U":  "unaligned",
	"A":  "any",
}

// alignmentSets names the multi-code combinations. Keys are sorted codes
// joined by commas; "N" is expanded to NX and NY before lookup.
var alignmentSets = map[string]string{
	"C,E,G,L,NX,NY": "any alignment",
	"C,G,L,NX":      "any good alignment",
	"C,E,L,NX":      "any evil alignment",
	"E,G,L,NY":      "any lawful alignment",
	"C,E,G,NY":      "any chaotic alignment",
	"C,E,L,NX,NY":   "any non-good alignment",
	"C,G,L,NX,NY":   "any non-evil alignment",
	"C,E,G,NX,NY":   "any non-lawful alignment",
	"E,G,L,NX,NY":   "any non-chaotic alignment",
}

func alignmentFragment(value gjson.Result) (string, bool) {
	var codes []string
	for _, code := range value.Array() {
		c := code.String()
		if _, ok := alignmentWords[c]; !ok {
			return "", false
		}
		if c == "A" {
			return "Any alignment", true
		}
		codes = append(codes, c)
	}

	switch len(codes) {
	case 0:
		return "", false
	case 1, 2:
		return literalAlignment(codes), true
	}

	set := make(map[string]bool)
	for _, c := range codes {
		if c == "N" {
			set["NX"], set["NY"] = true, true
			continue
		}
		set[c] = true
	}
	keys := make([]string, 0, len(set))
	for c := range set {
		keys = append(keys, c)
	}
	sort.Strings(keys)

	name, ok := alignmentSets[strings.Join(keys, ",")]
	if !ok {
		return "", false
	}
	return capitalize(name), true
}

func literalAlignment(codes []string) string {
	if len(codes) == 1 && codes[0] == "U" {
		return "Unaligned"
	}

	var words []string
	for _, c := range codes {
		word := alignmentWords[c]
		if len(words) > 0 && words[len(words)-1] == word {
			continue
		}
		words = append(words, word)
	}
	return capitalize(strings.Join(words, " ")) + " alignment"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
