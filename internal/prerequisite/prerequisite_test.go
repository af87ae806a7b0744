package prerequisite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/prerequisite"
)

func TestToString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no prerequisite",
			input:    ``,
			expected: "",
		},
		{
			name:     "empty list",
			input:    `[]`,
			expected: "",
		},
		{
			name:     "integer level",
			input:    `[{"level": 4}]`,
			expected: "Prerequisite: 4th level",
		},
		{
			name:     "race sorts before ability",
			input:    `[{"ability": [{"str": 13}]}, {"race": [{"name": "elf"}]}]`,
			expected: "Prerequisites: Elf, Strength 13 or higher",
		},
		{
			name:     "two races",
			input:    `[{"race": [{"name": "elf"}, {"name": "half-elf"}]}]`,
			expected: "Prerequisite: Elf or Half-Elf",
		},
		{
			name:     "three races use an oxford comma",
			input:    `[{"race": [{"name": "half-elf"}, {"name": "half-orc"}, {"name": "human"}]}]`,
			expected: "Prerequisite: Half-Elf, Half-Orc, or Human",
		},
		{
			name:     "race display entry and subrace",
			input:    `[{"race": [{"name": "dwarf"}, {"name": "small", "displayEntry": "small race"}, {"name": "elf", "subrace": "high"}]}]`,
			expected: "Prerequisite: Dwarf, Small race, or Elf (high)",
		},
		{
			name:     "single ability",
			input:    `[{"ability": [{"cha": 13}]}]`,
			expected: "Prerequisite: Charisma 13 or higher",
		},
		{
			name:     "ability union keeps the highest threshold",
			input:    `[{"ability": [{"int": 13}, {"wis": 15}]}]`,
			expected: "Prerequisite: Intelligence or Wisdom 15 or higher",
		},
		{
			name:     "unknown ability keys drop the fragment",
			input:    `[{"ability": [{"luck": 13}]}]`,
			expected: "",
		},
		{
			name:     "armor proficiency",
			input:    `[{"proficiency": [{"armor": "light"}]}]`,
			expected: "Prerequisite: Proficiency with light armor",
		},
		{
			name:     "armor and weapon in one set",
			input:    `[{"proficiency": [{"armor": "medium", "weapon": "martial"}]}]`,
			expected: "Prerequisite: Proficiency with medium armor and a martial weapon",
		},
		{
			name:     "proficiency sets are or-joined",
			input:    `[{"proficiency": [{"armor": "light"}, {"weapon": "simple"}]}]`,
			expected: "Prerequisite: Proficiency with light armor or a simple weapon",
		},
		{
			name:     "unknown proficiency class",
			input:    `[{"proficiency": [{"weaponGroup": "firearms"}]}]`,
			expected: "",
		},
		{
			name:     "spellcasting",
			input:    `[{"spellcasting": true}]`,
			expected: "Prerequisite: The ability to cast at least one spell",
		},
		{
			name:     "spellcasting false",
			input:    `[{"spellcasting": false}]`,
			expected: "",
		},
		{
			name:     "spellcasting 2020",
			input:    `[{"spellcasting2020": true}]`,
			expected: "Prerequisite: Spellcasting or Pact Magic feature",
		},
		{
			name:     "other text",
			input:    `[{"other": "Strixhaven Initiate feat"}]`,
			expected: "Prerequisite: Strixhaven Initiate feat",
		},
		{
			name:     "note is ignored",
			input:    `[{"note": "Your DM must approve"}]`,
			expected: "",
		},
		{
			name:     "level and other in separate clauses",
			input:    `[{"other": "Strixhaven Initiate feat"}, {"level": 4}]`,
			expected: "Prerequisites: 4th level, Strixhaven Initiate feat",
		},
		{
			name:     "or fragment inside a clause gets a semicolon",
			input:    `[{"level": 4, "race": [{"name": "dwarf"}, {"name": "gnome"}]}]`,
			expected: "Prerequisites: 4th level; Dwarf or Gnome",
		},
		{
			name:     "plain fragments inside a clause get a comma",
			input:    `[{"level": 8, "spellcasting": true}]`,
			expected: "Prerequisites: 8th level, The ability to cast at least one spell",
		},
		{
			name:     "level object with visible class",
			input:    `[{"level": {"level": 5, "class": {"name": "Fighter", "visible": true}}}]`,
			expected: "Prerequisite: 5th level Fighter",
		},
		{
			name:     "level object at first level shows only the class",
			input:    `[{"level": {"level": 1, "class": {"name": "Warlock", "visible": true}, "subclass": {"name": "Fiend", "visible": true}}}]`,
			expected: "Prerequisite: Warlock Fiend",
		},
		{
			name:     "level object with hidden class",
			input:    `[{"level": {"level": 1, "class": {"name": "Warlock"}}}]`,
			expected: "",
		},
		{
			name:     "non-object clauses are skipped",
			input:    `["junk", 3, {"level": 12}]`,
			expected: "Prerequisite: 12th level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.input != "" {
				require.True(t, gjson.Valid(tc.input), "invalid fixture")
			}
			assert.Equal(t, tc.expected, prerequisite.ToString(gjson.Parse(tc.input)))
		})
	}
}

func TestAlignment(t *testing.T) {
	testCases := []struct {
		name     string
		codes    string
		expected string
	}{
		{"single", `["N"]`, "Prerequisite: Neutral alignment"},
		{"pair", `["L", "G"]`, "Prerequisite: Lawful good alignment"},
		{"true neutral pair", `["NX", "NY"]`, "Prerequisite: Neutral alignment"},
		{"unaligned", `["U"]`, "Prerequisite: Unaligned"},
		{"any code", `["A"]`, "Prerequisite: Any alignment"},
		{"all six", `["L", "NX", "C", "G", "NY", "E"]`, "Prerequisite: Any alignment"},
		{"any evil", `["L", "NX", "C", "E"]`, "Prerequisite: Any evil alignment"},
		{"any chaotic", `["C", "G", "NY", "E"]`, "Prerequisite: Any chaotic alignment"},
		{"any non-good", `["L", "NX", "C", "NY", "E"]`, "Prerequisite: Any non-good alignment"},
		{"any non-lawful with plain N", `["N", "C", "G", "E"]`, "Prerequisite: Any non-lawful alignment"},
		{"unmatched set drops", `["L", "G", "E"]`, ""},
		{"unknown code drops", `["X"]`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := `[{"alignment": ` + tc.codes + `}]`
			assert.Equal(t, tc.expected, prerequisite.ToString(gjson.Parse(input)))
		})
	}
}
