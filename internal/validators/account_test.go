package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGmail(t *testing.T) {
	assert.True(t, IsGmail("ana.reyes+salon@gmail.com"))
	assert.True(t, IsGmail("ANA@GMAIL.COM"))
	assert.False(t, IsGmail("ana@yahoo.com"))
	assert.False(t, IsGmail("not-an-email"))
	assert.False(t, IsGmail("@gmail.com"))
}

func TestIsPhilippineMobile(t *testing.T) {
	assert.True(t, IsPhilippineMobile("09171234567"))
	assert.True(t, IsPhilippineMobile("0917-123-4567"))
	assert.True(t, IsPhilippineMobile("0917 123 4567"))
	assert.False(t, IsPhilippineMobile("091712345"))
	assert.False(t, IsPhilippineMobile("+639171234567"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Str0ng!pass"))
	assert.False(t, IsStrongPassword("Ab1!xyz"))
	assert.False(t, IsStrongPassword("alllowercase1!"))
	assert.False(t, IsStrongPassword("ALLUPPERCASE1!"))
	assert.False(t, IsStrongPassword("NoDigits!!"))
	assert.False(t, IsStrongPassword("NoSymbols123"))
}
