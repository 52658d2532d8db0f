package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_FullMatch(t *testing.T) {
	seeker := NormalizeSkills("ruby, sql, problem solving")
	required := NormalizeSkills("ruby, sql, problem solving")

	count, percent := Score(seeker, required)

	assert.Equal(t, 3, count)
	assert.Equal(t, 100.0, percent)
}

func TestScore_NoOverlap(t *testing.T) {
	count, percent := Score(NormalizeSkills("python"), NormalizeSkills("ruby, sql"))

	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, percent)
}

func TestScore_PartialMatch(t *testing.T) {
	seeker := NormalizeSkills("go, sql")
	required := NormalizeSkills("go, kubernetes, terraform")

	count, percent := Score(seeker, required)

	assert.Equal(t, 1, count)
	assert.InDelta(t, 33.3333, percent, 0.001)
}

func TestScore_EmptyRequired(t *testing.T) {
	// Empty required set scores zero, never a division fault.
	count, percent := Score(NormalizeSkills("go, sql"), SkillSet{})

	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, percent)
}

func TestScore_CountSymmetricPercentNot(t *testing.T) {
	a := NormalizeSkills("go, sql, docker")
	b := NormalizeSkills("go, sql")

	countAB, percentAB := Score(a, b)
	countBA, percentBA := Score(b, a)

	assert.Equal(t, countAB, countBA)
	assert.Equal(t, 100.0, percentAB)
	assert.InDelta(t, 66.6667, percentBA, 0.001)
}

func TestScore_BlankTokensMatch(t *testing.T) {
	// Two blank skill fields share the empty token and score as a full match.
	count, percent := Score(NormalizeSkills(""), NormalizeSkills("  "))

	assert.Equal(t, 1, count)
	assert.Equal(t, 100.0, percent)
}

func TestScore_CountBoundedByRequired(t *testing.T) {
	seeker := NormalizeSkills("a, b, c, d, e")
	required := NormalizeSkills("a, b")

	count, _ := Score(seeker, required)

	assert.LessOrEqual(t, count, len(required))
}
