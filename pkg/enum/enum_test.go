package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

var (
	red  = New(color("red"))
	blue = New(color("blue"))
)

func TestToEnum(t *testing.T) {
	parsed, err := ToEnum[color]("red")
	require.NoError(t, err)
	require.Equal(t, red, parsed)

	_, err = ToEnum[color]("green")
	require.Error(t, err)
}

func TestMembers(t *testing.T) {
	members := Members[color]()
	require.Len(t, members, 2)
	require.Contains(t, members, red)
	require.Contains(t, members, blue)
}
