package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionLevelRank(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Rank(), levels[i-1].Rank(),
			"%s must rank deeper than %s", levels[i], levels[i-1])
	}
	assert.Equal(t, 999, SectionLevel("part").Rank(), "unknown levels rank deepest")
}

func TestSectionLevelIsValid(t *testing.T) {
	for _, l := range Levels() {
		assert.True(t, l.IsValid(), "%s should be valid", l)
	}
	assert.False(t, SectionLevel("part").IsValid())
	assert.False(t, SectionLevel("").IsValid())
}
