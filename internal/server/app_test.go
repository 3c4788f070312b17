package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = config.MemoryDSN
	c.SigningKey = strings.Repeat("s", 64)
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.MetricsAddr = ""
	return c
}

func TestNewApp_InvalidSigningKey(t *testing.T) {
	c := testConfig(t)
	c.SigningKey = "short"

	_, err := NewApp(context.Background(), c, logging.Nop{})
	require.ErrorIs(t, err, common.ErrConfiguration)
}

func TestNewApp_RedisDetectorOnlyWithThreshold(t *testing.T) {
	mr := miniredis.RunT(t)

	c := testConfig(t)
	c.RedisAddr = mr.Addr()

	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)
	assert.Nil(t, app.redis)
	require.NoError(t, app.Close())

	c.ReuseCascadeThreshold = 3
	app, err = NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)
	assert.NotNil(t, app.redis)
	require.NoError(t, app.Close())
}

func TestRun_ServesMetricsAndStopsOnCancel(t *testing.T) {
	c := testConfig(t)
	c.MetricsAddr = freeAddr(t)

	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + c.MetricsAddr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "tokenkeeper_tokens_rotations_total")

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestRun_MetricsAddressInUse(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	c := testConfig(t)
	c.MetricsAddr = lis.Addr().String()

	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
}
