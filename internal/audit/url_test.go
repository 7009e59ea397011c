package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "example.com", want: "https://example.com"},
		{in: "  example.com/pricing  ", want: "https://example.com/pricing"},
		{in: "http://example.com", want: "http://example.com"},
		{in: "HTTPS://Example.com/a?b=c", want: "https://Example.com/a?b=c"},
		{in: "sub.example.co.uk:8443/x", want: "https://sub.example.co.uk:8443/x"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeURL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeURL_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "exa mple.com", "https://", "ftp://example.com", "https://.com."} {
		_, err := NormalizeURL(in)
		assert.ErrorIs(t, err, ErrInvalidURL, in)
	}
}

func TestKindAndUserMessage(t *testing.T) {
	assert.Equal(t, KindInvalidURL, Kind(ErrInvalidURL))
	assert.Equal(t, KindConfiguration, Kind(ErrConfiguration))
	assert.Equal(t, KindUnknown, Kind(assert.AnError))
	assert.Equal(t, "", Kind(nil))
	assert.Contains(t, UserMessage(ErrMalformedReport), "parse")
}
