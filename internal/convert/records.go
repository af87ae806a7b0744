package convert

// FeatRecord is the output shape for one feat.
type FeatRecord struct {
	Name              string   `json:"name"`
	Desc              string   `json:"desc"`
	SkillsCountChoose int      `json:"skills_count_choose"`
	Skills            []string `json:"skills"`
}

// RaceRecord is the output shape for one race variant.
type RaceRecord struct {
	Name               string  `json:"name"`
	Speed              int     `json:"speed"`
	AbilityBonuses     [6]int  `json:"ability_bonuses"`
	FlexAbilityBonuses []int   `json:"flex_ability_bonuses"`
	Traits             []Trait `json:"traits"`
}

// Trait is a named block of race rules text.
type Trait struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}
