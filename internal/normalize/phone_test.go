package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone_USNumber(t *testing.T) {
	got, valid := Phone("(202) 555-0123", "US")
	assert.True(t, valid)
	assert.Equal(t, "+12025550123", got)
}

func TestPhone_InternationalNumber(t *testing.T) {
	got, valid := Phone("+44 20 7946 0958", "US")
	assert.True(t, valid)
	assert.Equal(t, "+442079460958", got)
}

func TestPhone_TooShort(t *testing.T) {
	got, valid := Phone("12345", "US")
	assert.False(t, valid)
	assert.Equal(t, "12345", got)
}

func TestPhone_Empty(t *testing.T) {
	got, valid := Phone("", "US")
	assert.False(t, valid)
	assert.Equal(t, "", got)

	got, valid = Phone("ext.", "US")
	assert.False(t, valid)
	assert.Equal(t, "", got)
}

func TestPhone_LengthFallback(t *testing.T) {
	// Unparseable by the library but ten or more digits.
	_, valid := Phone("0000000000", "US")
	assert.True(t, valid)
}

func TestStripPhone(t *testing.T) {
	assert.Equal(t, "+12025550123", stripPhone("+1 (202) 555-0123"))
	assert.Equal(t, "2025550123", stripPhone("202.555.0123 ext 4"))
	// A + is only kept in the leading position.
	assert.Equal(t, "12", stripPhone("1+2"))
}
