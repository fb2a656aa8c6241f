package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	err := Wrap("open store", base)
	require.EqualError(t, err, "open store: boom")
	require.ErrorIs(t, err, base)
	require.NoError(t, Wrap("nothing", nil))
}
