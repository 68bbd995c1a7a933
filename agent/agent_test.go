package agent

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/mohitkumar/engage/analytics"
	"github.com/mohitkumar/engage/config"
	"github.com/mohitkumar/engage/facts"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestAgentStartAndShutdown(t *testing.T) {
	port := freePort(t)
	a, err := New(config.Config{
		StorageType:     config.STORAGE_TYPE_INMEM,
		HttpPort:        port,
		CacheTTL:        time.Minute,
		MetricsInterval: 10 * time.Millisecond,
		ExtractorPaths:  facts.DefaultPaths(),
		AnalyticsConfig: analytics.DataCollectorConfig{CollectorType: analytics.NOOP_DATA_COLLECTOR},
	})
	require.NoError(t, err)
	errs := a.Start()

	url := fmt.Sprintf("http://127.0.0.1:%d/steps", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, a.Shutdown())
	require.NoError(t, a.Shutdown())
	select {
	case err := <-errs:
		t.Fatalf("unexpected server error: %v", err)
	default:
	}
}

func TestAgentRejectsInvalidConfig(t *testing.T) {
	_, err := New(config.Config{StorageType: "dynamo", HttpPort: 8080, CacheTTL: time.Minute})
	require.Error(t, err)
}
