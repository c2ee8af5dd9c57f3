package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlace_PlainJSON(t *testing.T) {
	p, err := parsePlace(`{"city":"Berlin","region":"Berlin","country":"Germany"}`)
	require.NoError(t, err)
	assert.Equal(t, "Berlin, Berlin, Germany", p.Name())
}

func TestParsePlace_FencedJSON(t *testing.T) {
	p, err := parsePlace("Sure! Here you go:\n```json\n{\"city\":\"Tokyo\",\"region\":\"\",\"country\":\"Japan\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo, Japan", p.Name())
}

func TestParsePlace_NoJSON(t *testing.T) {
	_, err := parsePlace("I cannot determine that location.")
	assert.Error(t, err)
}

func TestPlaceName_AllEmpty(t *testing.T) {
	assert.Equal(t, "", Place{}.Name())
}
