package debug

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/log"
)

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler(&buf, "json", log.LevelInfo)
	require.NoError(t, err)
	logger := log.NewLogger(h)
	logger.Debug("hidden")
	logger.Info("shown", "selector", "0xa9059cbb")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"selector":"0xa9059cbb"`)

	buf.Reset()
	h, err = newHandler(&buf, "logfmt", slog.LevelWarn)
	require.NoError(t, err)
	log.NewLogger(h).Warn("careful", "n", 1)
	require.Contains(t, buf.String(), "msg=careful")

	_, err = newHandler(&buf, "xml", log.LevelInfo)
	require.Error(t, err)
}
