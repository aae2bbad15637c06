package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBig(t *testing.T) {
	require.Equal(t, int64(0), Big0.Int64())
	require.Equal(t, int64(1), Big1.Int64())
	require.Equal(t, int64(32), Big32.Int64())
	require.Equal(t, int64(257), Big257.Int64())
	require.True(t, U2560.IsZero())
}
