package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizesLetters(t *testing.T) {
	s, err := New("TacCa", 'C', 3)
	require.NoError(t, err)
	require.Equal(t, "act", s.Letters())
	require.Equal(t, 'c', s.Required())
	require.Equal(t, 3, s.MinLength())
	require.True(t, s.Has('t'))
	require.False(t, s.Has('s'))
	require.Equal(t, "letters=act required=c min=3", s.String())
}

func TestNewRejectsInvalidSpecs(t *testing.T) {
	_, err := New("", 'a', 3)
	require.Error(t, err)

	_, err = New("12!", 'a', 3)
	require.Error(t, err)

	_, err = New("abc", 'z', 3)
	require.Error(t, err)

	_, err = New("abc", 'a', -1)
	require.Error(t, err)

	require.True(t, Spec{}.IsZero())
}

func TestNormalizeLetters(t *testing.T) {
	require.Equal(t, "aelpx", NormalizeLetters("Pexal apple"))
	require.Equal(t, "", NormalizeLetters("123 !"))
}
