package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv(NewsAPIKey, "secret")

	v, err := NewEnvProvider().GetCredential(NewsAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "secret", v)

	_, err = NewEnvProvider().GetCredential("STOCK_PULSE_UNSET_KEY")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticProvider_EmptyValueIsMissing(t *testing.T) {
	p := NewStaticProvider(map[string]string{NewsAPIKey: ""})

	_, err := p.GetCredential(NewsAPIKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChain_FirstHitWins(t *testing.T) {
	t.Setenv(NewsAPIKey, "")
	c := Chain{
		NewEnvProvider(),
		NewStaticProvider(map[string]string{NewsAPIKey: "from-file"}),
		NewStaticProvider(map[string]string{NewsAPIKey: "never"}),
	}

	v, err := c.GetCredential(NewsAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", v)

	_, err = Chain{}.GetCredential(NewsAPIKey)
	assert.ErrorIs(t, err, ErrNotFound)
}
