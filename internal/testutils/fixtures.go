package testutils

// Sample documents in the 5e.tools layout.
const (
	// FeatDocument holds two feats, one with a prerequisite and skills.
	FeatDocument = `{
		"feat": [
			{
				"name": "Alert",
				"source": "PHB",
				"entries": ["Always on the lookout for danger."]
			},
			{
				"name": "Prodigy",
				"source": "XGE",
				"prerequisite": [{"race": [{"name": "half-elf"}, {"name": "human"}]}],
				"skillProficiencies": [{"any": 1}],
				"entries": ["You have a knack for learning new things."]
			}
		]
	}`

	// RaceDocument holds one race with a single subrace.
	RaceDocument = `{
		"race": [
			{
				"name": "Dwarf",
				"source": "PHB",
				"speed": 25,
				"ability": [{"con": 2}],
				"entries": [{"type": "entries", "name": "Darkvision", "entries": ["You see in dim light."]}]
			}
		],
		"subrace": [
			{"name": "Hill", "source": "PHB", "raceName": "Dwarf", "raceSource": "PHB", "ability": [{"wis": 1}]}
		]
	}`

	// FeatRecordCount and RaceRecordCount are the record counts the documents convert to.
	FeatRecordCount = 2
	RaceRecordCount = 2
)
