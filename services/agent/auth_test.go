package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	for _, pw := range []string{"Str0ng!pass", "Another#1A", "xY9$aaaa"} {
		assert.NoError(t, verifyPasswordComplexity(pw), "password %q", pw)
	}

	invalid := []string{
		"alllowercase1!", // no uppercase
		"ALLUPPERCASE1!", // no lowercase
		"NoDigits!!",     // no digit
		"NoSymbol11a",    // no symbol
		"aB1!",           // too short
	}
	for _, pw := range invalid {
		assert.Error(t, verifyPasswordComplexity(pw), "password %q", pw)
	}
}
