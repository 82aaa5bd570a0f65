package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/leeaandrob/trendpulse/internal/analysis"
	apiserver "github.com/leeaandrob/trendpulse/internal/api"
	"github.com/leeaandrob/trendpulse/internal/generator"
	"github.com/leeaandrob/trendpulse/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, srvURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--server", srvURL}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	svc := analysis.NewService(
		storage.NewMemoryStore(),
		generator.NewSynthetic(generator.NewRandom(21, 22)),
		nil,
	)
	srv := httptest.NewServer(apiserver.NewServer(svc, apiserver.ServerOptions{}).Handler())
	defer srv.Close()

	_, err := runCLI(t, srv.URL, "report", "suya")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'trendctl analyze' first")

	out, err := runCLI(t, srv.URL, "analyze", "Jollof", "Rice")
	require.NoError(t, err)
	assert.Contains(t, out, `"query": "Jollof Rice"`)

	out, err = runCLI(t, srv.URL, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Jollof Rice")

	out, err = runCLI(t, srv.URL, "report", "jollof rice")
	require.NoError(t, err)
	assert.Contains(t, out, "# Market Intelligence Report: jollof rice")

	out, err = runCLI(t, srv.URL, "campaigns", "Zobo")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ")
}
