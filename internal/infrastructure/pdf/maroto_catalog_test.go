package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	corta := "descripción corta"
	assert.Equal(t, corta, truncateDescription(corta, 90), "por debajo del límite no se toca")

	// 120 caracteres multibyte: el corte en bytes partiría una ñ al medio.
	larga := strings.Repeat("ñ", 120)
	got := truncateDescription(larga, 90)

	assert.True(t, utf8.ValidString(got), "el corte nunca debe partir un carácter UTF-8")
	assert.Equal(t, 91, utf8.RuneCountInString(got), "90 runas más la elipsis")
	assert.True(t, strings.HasSuffix(got, "…"))

	exacta := strings.Repeat("á", 90)
	assert.Equal(t, exacta, truncateDescription(exacta, 90), "el límite exacto no agrega elipsis")
}
