package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use(language.AmericanEnglish)

	assert.Equal("line 3 'LDA'", From("line %d '%v'", 3, "LDA"))
	assert.Equal("plain", From("plain"))
}
