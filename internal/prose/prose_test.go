package prose_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-retool/internal/prose"
)

func TestOrdinal(t *testing.T) {
	testCases := map[int]string{
		0:   "0th",
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		10:  "10th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		14:  "14th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
		112: "112th",
		213: "213th",
		-1:  "-1st",
		-12: "-12th",
		-22: "-22nd",
	}

	for n, expected := range testCases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, prose.Ordinal(n))
		})
	}
}

func TestOrdinalMinInt(t *testing.T) {
	assert.Equal(t, strconv.Itoa(math.MinInt)+"th", prose.Ordinal(math.MinInt))
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"elf", "Elf"},
		{"half-elf", "Half-Elf"},
		{"HALF-ORC", "Half-Orc"},
		{"dwarf", "Dwarf"},
		{"small race", "Small race"},
		{"", ""},
		{"a--b", "A--B"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, prose.TitleCase(tc.input))
		})
	}
}

func TestJoinConjunct(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		sep      string
		conj     string
		expected string
		ok       bool
	}{
		{name: "empty", items: nil, sep: ", ", conj: "or ", ok: false},
		{name: "one", items: []string{"a"}, sep: ",", conj: "or ", expected: "a", ok: true},
		{name: "two", items: []string{"a", "b"}, sep: ", ", conj: "or ", expected: "a or b", ok: true},
		{name: "three", items: []string{"a", "b", "c"}, sep: ", ", conj: "or ", expected: "a, b, or c", ok: true},
		{name: "four with and", items: []string{"a", "b", "c", "d"}, sep: ", ", conj: "and ", expected: "a, b, c, and d", ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := prose.JoinConjunct(tc.items, tc.sep, tc.conj)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}
