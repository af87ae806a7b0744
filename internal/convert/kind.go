package convert

import (
	"strings"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
)

// Kind selects a converter.
type Kind string

// Converter kinds
const (
	// KindDummy passes the document through unchanged
	KindDummy Kind = "dummy"
	KindFeat  Kind = "feat"
	KindRace  Kind = "race"
)

var allKinds = []Kind{KindDummy, KindFeat, KindRace}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Kinds returns the names of every supported kind.
func Kinds() []string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = k.String()
	}
	return names
}

// ParseKind converts a name such as "feat" to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range allKinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown converter kind %q, expected one of: %s",
		name, strings.Join(Kinds(), ", ")).WithMeta("kind", name)
}
