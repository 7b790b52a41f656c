package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	assert.Equal(t, "?", Initials("   "))
	assert.Equal(t, "S", Initials("samir"))
	assert.Equal(t, "SH", Initials("Samir Hebibov"))
	assert.Equal(t, "JD", Initials("john  ronald  doe"))
	assert.Equal(t, "ÇŞ", Initials("çin şah"))
}

func TestAvatarColorIsStable(t *testing.T) {
	a := AvatarColor("Jane Doe")
	assert.Equal(t, a, AvatarColor("Jane Doe"))
	assert.Contains(t, avatarColors, a)
	// "A" is code point 65, 65 % 10 == 5.
	assert.Equal(t, avatarColors[5], AvatarColor("A"))
}
