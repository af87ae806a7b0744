package convert

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Skills lists the canonical skill names.
var Skills = []string{
	"Acrobatics",
	"Animal Handling",
	"Arcana",
	"Athletics",
	"Deception",
	"History",
	"Insight",
	"Intimidation",
	"Investigation",
	"Medicine",
	"Nature",
	"Perception",
	"Performance",
	"Persuasion",
	"Religion",
	"Sleight of Hand",
	"Stealth",
	"Survival",
}

var skillsByKey = func() map[string]string {
	m := make(map[string]string, len(Skills))
	for _, s := range Skills {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// skillName maps a lowercase data key to its display name. Unknown keys are
// kept as written.
func skillName(key string) string {
	if name, ok := skillsByKey[strings.ToLower(key)]; ok {
		return name
	}
	return key
}

// parseSkills reads one skillProficiencies entry. The count is how many of the
// returned skills the character picks; 0 means all of them are granted.
func parseSkills(value gjson.Result) ([]string, int, bool) {
	if !value.IsObject() {
		return nil, 0, false
	}

	if from := value.Get("choose.from"); from.IsArray() {
		count := 1
		if c := value.Get("choose.count"); c.Type == gjson.Number {
			count = int(c.Int())
		}
		var skills []string
		for _, s := range from.Array() {
			skills = append(skills, skillName(s.String()))
		}
		if len(skills) == 0 {
			return nil, 0, false
		}
		return skills, count, true
	}

	if anyCount := value.Get("any"); anyCount.Type == gjson.Number {
		return append([]string(nil), Skills...), int(anyCount.Int()), true
	}

	var skills []string
	value.ForEach(func(key, v gjson.Result) bool {
		if v.Type == gjson.True {
			skills = append(skills, skillName(key.String()))
		}
		return true
	})
	if len(skills) == 0 {
		return nil, 0, false
	}
	return skills, 0, true
}
