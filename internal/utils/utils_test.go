package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvMissing(t *testing.T) {
	t.Setenv("LYRICS_TEST_PRESENT", "yes")

	_, err := LoadEnv([]string{"LYRICS_TEST_PRESENT", "LYRICS_TEST_ABSENT"})
	require.ErrorContains(t, err, "LYRICS_TEST_ABSENT")

	env, err := LoadEnv([]string{"LYRICS_TEST_PRESENT"})
	require.NoError(t, err)
	require.Equal(t, "yes", env["LYRICS_TEST_PRESENT"])
}

func TestOptionalEnvTrims(t *testing.T) {
	t.Setenv("LYRICS_TEST_OPTIONAL", "  value \n")
	require.Equal(t, "value", OptionalEnv("LYRICS_TEST_OPTIONAL"))
	require.Equal(t, "", OptionalEnv("LYRICS_TEST_NEVER_SET"))
}
