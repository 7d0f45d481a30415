package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct{}

func (fakeSource) Discover(Config) ([]string, error) { return nil, nil }

func TestRegistryRoundTrip(t *testing.T) {
	Register("registry-test", func() Source { return fakeSource{} })

	ctor, err := Get("registry-test")
	require.NoError(t, err)
	assert.NotNil(t, ctor())
	assert.Contains(t, Providers(), "registry-test")
}

func TestGetUnknownProvider(t *testing.T) {
	_, err := Get("no-such-provider")
	assert.Error(t, err)
}
