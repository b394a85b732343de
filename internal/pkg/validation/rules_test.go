package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("Asha.Rao@GEC.edu"))
	assert.True(t, ValidEmail("x@college.academy"))
	assert.False(t, ValidEmail("asha@"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone(""))
	assert.True(t, ValidPhone("9876543210"))
	assert.False(t, ValidPhone("98-76"))
}

func TestValidNameAndSemester(t *testing.T) {
	assert.True(t, ValidName("Li"))
	assert.False(t, ValidName("L"))
	assert.True(t, ValidSemester(1))
	assert.True(t, ValidSemester(10))
	assert.False(t, ValidSemester(0))
	assert.False(t, ValidSemester(11))
}

func TestValidName_CountsRunesAndTrims(t *testing.T) {
	assert.True(t, ValidName("Łu"))
	assert.False(t, ValidName("  L  "))
	assert.False(t, ValidName(strings.Repeat("a", NameMaxLength+1)))
}
