package abilities_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/abilities"
)

type AllocatorTestSuite struct {
	suite.Suite
	logs      *bytes.Buffer
	allocator *abilities.Allocator
}

func TestAllocatorSuite(t *testing.T) {
	suite.Run(t, new(AllocatorTestSuite))
}

func (s *AllocatorTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.allocator = abilities.New(&abilities.Config{
		Logger: slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
}

func (s *AllocatorTestSuite) TestAllocate() {
	testCases := []struct {
		name     string
		input    string
		expected []abilities.Allocation
	}{
		{
			name:     "str and dex only",
			input:    `[{"str": 1, "dex": 2}]`,
			expected: []abilities.Allocation{{Bonuses: [6]int{1, 2, 0, 0, 0, 0}}},
		},
		{
			name:     "con and cha only",
			input:    `[{"con": 3, "cha": 4}]`,
			expected: []abilities.Allocation{{Bonuses: [6]int{0, 0, 3, 0, 0, 4}}},
		},
		{
			name:     "int and wis only",
			input:    `[{"int": 5, "wis": 6}]`,
			expected: []abilities.Allocation{{Bonuses: [6]int{0, 0, 0, 5, 6, 0}}},
		},
		{
			name:     "choose 1",
			input:    `[{"choose": {"count": 1}}]`,
			expected: []abilities.Allocation{{Choices: []int{1}}},
		},
		{
			name:     "choose 2",
			input:    `[{"choose": {"count": 2}}]`,
			expected: []abilities.Allocation{{Choices: []int{1, 1}}},
		},
		{
			name:     "choose 1 amount 2",
			input:    `[{"choose": {"count": 1, "amount": 2}}]`,
			expected: []abilities.Allocation{{Choices: []int{2}}},
		},
		{
			name:     "fixed bonus plus choice",
			input:    `[{"cha": 2, "choose": {"from": ["str", "dex"], "count": 2}}]`,
			expected: []abilities.Allocation{{Bonuses: [6]int{0, 0, 0, 0, 0, 2}, Choices: []int{1, 1}}},
		},
		{
			name:  "two weighted variants",
			input: `[{"choose": {"weighted": {"weights": [2, 1]}}}, {"choose": {"weighted": {"weights": [1, 1, 1]}}}]`,
			expected: []abilities.Allocation{
				{Choices: []int{2, 1}},
				{Choices: []int{1, 1, 1}},
			},
		},
		{
			name:     "choose without count or weights",
			input:    `[{"choose": {"from": ["str"]}}]`,
			expected: []abilities.Allocation{{}},
		},
		{
			name:     "no specs",
			input:    `[]`,
			expected: []abilities.Allocation{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.allocator.Allocate(gjson.Parse(tc.input)))
		})
	}
}

func (s *AllocatorTestSuite) TestAllocateSkipsUnknownKeys() {
	got := s.allocator.Allocate(gjson.Parse(`[{"str": 2, "luck": 1}]`))

	s.Equal([]abilities.Allocation{{Bonuses: [6]int{2, 0, 0, 0, 0, 0}}}, got)
	s.Contains(s.logs.String(), "key=luck")
}

func (s *AllocatorTestSuite) TestForSubrace() {
	base := abilities.Allocation{Bonuses: [6]int{0, 0, 2, 0, 0, 0}, Choices: []int{1}}

	s.Run("adds fixed bonuses and keeps base choices", func() {
		got := s.allocator.ForSubrace(base, gjson.Parse(`{"ability": [{"str": 1, "con": 1}]}`))
		s.Equal([6]int{1, 0, 3, 0, 0, 0}, got.Bonuses)
		s.Equal([]int{1}, got.Choices)
	})

	s.Run("subrace choices replace base choices", func() {
		got := s.allocator.ForSubrace(base, gjson.Parse(`{"ability": [{"choose": {"count": 2, "amount": 1}}]}`))
		s.Equal(base.Bonuses, got.Bonuses)
		s.Equal([]int{1, 1}, got.Choices)
	})

	s.Run("subrace without ability keeps base", func() {
		got := s.allocator.ForSubrace(base, gjson.Parse(`{"name": "Hill"}`))
		s.Equal(base, got)
	})

	s.Run("base is not mutated", func() {
		_ = s.allocator.ForSubrace(base, gjson.Parse(`{"ability": [{"con": 5}]}`))
		s.Equal([6]int{0, 0, 2, 0, 0, 0}, base.Bonuses)
	})
}

func (s *AllocatorTestSuite) TestNewWithNilConfig() {
	allocator := abilities.New(nil)
	s.Len(allocator.Allocate(gjson.Parse(`[{"str": 1}]`)), 1)
}
