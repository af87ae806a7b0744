// Package abilities converts race ability-bonus specifications into fixed
// six-slot bonus vectors plus the list of bonuses the player assigns freely.
package abilities

import (
	"log/slog"

	"github.com/tidwall/gjson"
)

// Keys lists the ability shorthands in bonus-vector order.
var Keys = [6]string{"str", "dex", "con", "int", "wis", "cha"}

const chooseKey = "choose"

// Allocation is the result of one ability specification.
type Allocation struct {
	// Bonuses is indexed like Keys.
	Bonuses [6]int
	// Choices holds flexible bonuses; nil when the spec has none.
	Choices []int
}

// Config configures an Allocator.
type Config struct {
	// Logger receives unknown-key diagnostics (optional, defaults to slog.Default())
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Allocator maps ability specifications to allocations.
type Allocator struct {
	logger *slog.Logger
}

// New creates an Allocator. A nil config uses the defaults.
func New(cfg *Config) *Allocator {
	if cfg == nil {
		cfg = &Config{}
	}
	_ = cfg.Validate()

	return &Allocator{logger: cfg.Logger}
}

// Allocate returns one Allocation per element of specs, in order.
func (a *Allocator) Allocate(specs gjson.Result) []Allocation {
	members := specs.Array()
	out := make([]Allocation, 0, len(members))
	for _, spec := range members {
		out = append(out, a.allocateOne(spec))
	}
	return out
}

// ForSubrace layers a subrace's first ability spec over a base allocation:
// fixed bonuses are added, and the subrace's choices replace the base ones
// when it has any.
func (a *Allocator) ForSubrace(base Allocation, subrace gjson.Result) Allocation {
	merged := Allocation{Bonuses: base.Bonuses, Choices: base.Choices}

	spec := subrace.Get("ability.0")
	if !spec.IsObject() {
		return merged
	}

	extra := a.allocateOne(spec)
	for i := range merged.Bonuses {
		merged.Bonuses[i] += extra.Bonuses[i]
	}
	if extra.Choices != nil {
		merged.Choices = extra.Choices
	}
	return merged
}

func (a *Allocator) allocateOne(spec gjson.Result) Allocation {
	var alloc Allocation

	spec.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == chooseKey {
			alloc.Choices = parseChoices(value)
			return true
		}
		if slot, ok := slotOf(name); ok {
			alloc.Bonuses[slot] = int(value.Int())
			return true
		}
		a.logger.Debug("Skipping unknown ability key", "key", name)
		return true
	})

	return alloc
}

func parseChoices(value gjson.Result) []int {
	if weighted := value.Get("weighted"); weighted.IsObject() {
		weights := weighted.Get("weights").Array()
		choices := make([]int, 0, len(weights))
		for _, w := range weights {
			choices = append(choices, int(w.Int()))
		}
		return choices
	}

	count := value.Get("count")
	if !count.Exists() {
		return nil
	}

	amount := 1
	if a := value.Get("amount"); a.Exists() {
		amount = int(a.Int())
	}

	choices := make([]int, 0, max(count.Int(), 0))
	for i := int64(0); i < count.Int(); i++ {
		choices = append(choices, amount)
	}
	return choices
}

func slotOf(key string) (int, bool) {
	for i, k := range Keys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}
