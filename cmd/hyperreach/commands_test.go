// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperreach/internal/archive"
	"github.com/katalvlaran/hyperreach/network"
)

const sample = "../../network/testdata/sample.json.bz2"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hyperreach dev\n", out)
}

func TestQuery(t *testing.T) {
	out, err := execute(t, "query", "--network", sample, "--source", "v4", "--kinds", "fastest,foremost")
	require.NoError(t, err)
	assert.Equal(t, "source,target,fastest,foremost\n"+
		"v4,v3,0,1577836857\n"+
		"v4,v8,106,1577836963\n", out)

	out, err = execute(t, "query", "--network", sample, "--source", "v4", "--kinds", "fastest", "--format", "time", "--vertex-dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "source,target,fastest\nv4,v3,0s\nv4,v8,1m46s\n", out)

	_, err = execute(t, "query", "--network", sample, "--source", "ghost")
	assert.Error(t, err)
	_, err = execute(t, "query", "--network", sample)
	assert.Error(t, err, "--source is required")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	networks := filepath.Join(dir, "networks")
	require.NoError(t, os.MkdirAll(networks, 0o755))
	raw, err := os.ReadFile(sample)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(networks, "trivago.json.bz2"), raw, 0o600))

	out := filepath.Join(dir, "out")
	_, err = execute(t, "run",
		"--select", "trivago",
		"--networks-dir", networks,
		"--results-dir", out,
		"--kinds", "shortest",
		"--workers", "2",
		"--compression", "none",
	)
	require.NoError(t, err)

	csv, err := os.ReadFile(filepath.Join(out, "trivago.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	assert.Equal(t, "source,target,shortest", lines[0])
	assert.Contains(t, lines, "v4,v8,2")
	assert.Contains(t, lines, "v4,v3,1")

	_, err = execute(t, "run", "--select", "github", "--networks-dir", networks)
	assert.Error(t, err, "unknown dataset")
	_, err = execute(t, "run", "--select", "trivago", "--networks-dir", networks, "--results-dir", out, "--compression", "lz4")
	assert.Error(t, err)
}

func TestRunDefaultsToBzip2(t *testing.T) {
	dir := t.TempDir()
	networks := filepath.Join(dir, "networks")
	require.NoError(t, os.MkdirAll(networks, 0o755))
	raw, err := os.ReadFile(sample)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(networks, "microsoft.json.bz2"), raw, 0o600))

	out := filepath.Join(dir, "out")
	_, err = execute(t, "run",
		"--select", "microsoft",
		"--networks-dir", networks,
		"--results-dir", out,
		"--kinds", "foremost",
	)
	require.NoError(t, err)

	r, err := archive.Open(filepath.Join(out, "microsoft.csv.bz2"))
	require.NoError(t, err)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	assert.Equal(t, "source,target,foremost", lines[0])
	assert.Contains(t, lines, "v4,v8,1577836963")
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.json.zst")
	_, err := execute(t, "generate", "--output", path, "--vertices", "12", "--hyperedges", "30", "--seed", "5")
	require.NoError(t, err)

	net, err := network.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "synthetic", net.Name)
	assert.Equal(t, 30, net.HyperedgeCount())
	assert.LessOrEqual(t, net.VertexCount(), 12)
	for _, p := range net.AllParticipants() {
		assert.True(t, strings.HasPrefix(p, "p"), p)
	}

	again := filepath.Join(t.TempDir(), "again.json.zst")
	_, err = execute(t, "generate", "--output", again, "--vertices", "12", "--hyperedges", "30", "--seed", "5")
	require.NoError(t, err)
	net2, err := network.Load(again)
	require.NoError(t, err)
	assert.Equal(t, net.Timings(), net2.Timings(), "same seed, same network")

	_, err = execute(t, "generate", "--output", path, "--vertices", "1")
	assert.Error(t, err)
}

func TestGenerateStartFollowsResolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.json")
	_, err := execute(t, "--resolution", "1m", "generate", "--output", path, "--hyperedges", "20", "--seed", "3")
	require.NoError(t, err)

	net, err := network.Load(path, network.WithResolution(time.Minute))
	require.NoError(t, err)
	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	first := network.Ticks(epoch, time.Minute)
	for h, tick := range net.Timings() {
		assert.GreaterOrEqual(t, tick, first, h)
		assert.Less(t, tick, first+86400, h)
		end, err := net.End(h)
		require.NoError(t, err)
		assert.Equal(t, 2020, end.Year(), h)
	}
}
