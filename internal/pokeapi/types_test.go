package pokeapi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKilogramsFromRaw(t *testing.T) {
	cases := []struct {
		raw  int
		want float64
	}{
		{905, 90.5},
		{10, 1.0},
		{0, 0.0},
		{40, 4.0},
		{1, 0.1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KilogramsFromRaw(tc.raw), "raw=%d", tc.raw)
	}
}

func TestDecodeSubjectInfo_EmptyAbilitiesIsValid(t *testing.T) {
	info, err := decodeSubjectInfo(strings.NewReader(`{"name":"a","weight":0,"abilities":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "a", info.Name)
	assert.Equal(t, 0.0, info.WeightKg)
	assert.Empty(t, info.Abilities)
}

func TestError_MessagesAndMatching(t *testing.T) {
	status := statusError("https://pokeapi.co/api/v2/pokemon/x", 404)
	assert.Contains(t, status.Error(), "404")
	assert.True(t, errors.Is(status, ErrNotFound))
	assert.True(t, errors.Is(status, ErrStatus))
	assert.False(t, errors.Is(status, ErrParse))
	assert.False(t, errors.Is(statusError("u", 500), ErrNotFound))

	cause := errors.New("dial tcp: no such host")
	transport := transportError("u", cause)
	assert.True(t, errors.Is(transport, cause))
	assert.Contains(t, transport.Error(), "no such host")
	assert.Equal(t, KindTransport, KindOf(transport))
	assert.Equal(t, Kind(""), KindOf(cause))
}
