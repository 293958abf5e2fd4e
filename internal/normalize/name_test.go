package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst_DropsHonorific(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "John", n.First("dr. john"))
	assert.Equal(t, "Rian", n.First("dr. rian"))
	assert.Equal(t, "Jane", n.First("Prof Jane"))
}

func TestFirst_HonorificAloneKept(t *testing.T) {
	// Only token left; dropping it would erase the field.
	n := NewNamer(true)
	assert.Equal(t, "Dr", n.First("dr"))
}

func TestFirst_TitleCase(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "John", n.First("JOHN paul"))
	assert.Equal(t, "Mary", n.First("  mary  "))
}

func TestFirst_IrishPrefix(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "O'Brien", n.First("o'brien"))
}

func TestFirst_Absent(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "", n.First(""))
	assert.Equal(t, "", n.First("nan"))
	assert.Equal(t, "", n.First("NULL"))
}

func TestLast_McPrefix(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "McDonald", n.Last("mcdonald"))
	assert.Equal(t, "McDonald", n.Last("MCDONALD"))
}

func TestLast_MultiWordSurname(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "Van Der Berg", n.Last("van der berg"))
}

func TestLast_Apostrophe(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "O'Connor", n.Last("o'connor"))
}

func TestLast_SingleCharacter(t *testing.T) {
	n := NewNamer(true)
	assert.Equal(t, "S", n.Last("s"))
}

func TestFirst_McIsNotAFirstNameRule(t *testing.T) {
	// Mc capitalization applies to surnames only.
	n := NewNamer(true)
	assert.Equal(t, "Mcdonald", n.First("mcdonald"))
}

func TestFirst_Idempotent(t *testing.T) {
	n := NewNamer(true)
	for _, in := range []string{"dr. john", "o'brien", "JOHN", "dr", "j", "JosÃ©"} {
		once := n.First(in)
		assert.Equal(t, once, n.First(once), "input %q", in)
	}
}

func TestLast_Idempotent(t *testing.T) {
	n := NewNamer(true)
	for _, in := range []string{"mcdonald", "o'connor", "van der berg", "SMITH", "s", "GarcÃ­a"} {
		once := n.Last(in)
		assert.Equal(t, once, n.Last(once), "input %q", in)
	}
}

func TestNamer_CustomHonorifics(t *testing.T) {
	n := NewNamerWith([]string{"rev"}, false)
	assert.Equal(t, "Jane", n.First("rev jane"))
	// "dr." is not in the custom set, so it survives as the first token.
	assert.Equal(t, "Dr.", n.First("dr. jane"))
}

func TestCapToken(t *testing.T) {
	assert.Equal(t, "J", capToken("j"))
	assert.Equal(t, "Mc", capToken("mc"))
	assert.Equal(t, "McCarthy", capToken("mccarthy"))
	assert.Equal(t, "Smith", capToken("SMITH"))
}
