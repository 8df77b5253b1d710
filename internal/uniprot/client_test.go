package uniprot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUniProt serves a search endpoint that knows exactly the given
// accessions.
func fakeUniProt(t *testing.T, known map[string]bool, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uniprotkb/search" {
			http.NotFound(w, r)
			return
		}
		if calls != nil {
			calls.Add(1)
		}
		var resp searchResponse
		for _, code := range strings.Split(r.URL.Query().Get("query"), " OR ") {
			if known[code] {
				resp.Results = append(resp.Results, struct {
					PrimaryAccession string `json:"primaryAccession"`
				}{code})
			}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClient_CheckBatch(t *testing.T) {
	known := map[string]bool{"WP_058328214.1": true}
	server := fakeUniProt(t, known, nil)
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	client.HTTPClient = server.Client()

	found, err := client.CheckBatch(context.Background(), []string{"WP_058328214.1", "WP_000000000.1"})
	require.NoError(t, err)
	assert.True(t, found["WP_058328214.1"])
	assert.False(t, found["WP_000000000.1"])
}

func TestClient_CheckBatch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	client.HTTPClient = server.Client()

	_, err := client.CheckBatch(context.Background(), []string{"WP_058328214.1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_ValidateAll_Batches(t *testing.T) {
	known := map[string]bool{
		"WP_000000001.1": true,
		"WP_000000003.1": true,
	}
	var calls atomic.Int64
	server := fakeUniProt(t, known, &calls)
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, BatchSize: 2, Parallel: 2})
	client.HTTPClient = server.Client()

	codes := []string{
		"WP_000000001.1", "WP_000000002.1", "WP_000000003.1",
		"WP_000000004.1", "WP_000000001.1, ", // near-duplicate stays distinct
		"WP_000000001.1", // exact duplicate collapses
		"",               // empty is skipped
	}
	valid, err := client.ValidateAll(context.Background(), codes)
	require.NoError(t, err)

	assert.True(t, valid["WP_000000001.1"])
	assert.True(t, valid["WP_000000003.1"])
	assert.False(t, valid["WP_000000002.1"])
	// 5 unique codes at batch size 2 → 3 queries.
	assert.EqualValues(t, 3, calls.Load())
}

func TestClient_ValidateAll_Empty(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused.invalid"})
	valid, err := client.ValidateAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, valid)
}

func TestClient_Filter(t *testing.T) {
	known := map[string]bool{"WP_058328214.1": true}
	server := fakeUniProt(t, known, nil)
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	client.HTTPClient = server.Client()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.fasta")
	out := filepath.Join(dir, "out.fasta")
	input := `>WP_058328214.1 alkene reductase [Sinorhizobium sp. Sb3]
MKLN
>WP_000000000.1 alkene reductase [Fictional organism]
MMMM
>local_1 no accession here
AAAA
`
	require.NoError(t, os.WriteFile(in, []byte(input), 0600))

	extract := func(desc string) string {
		for _, f := range strings.Fields(desc) {
			if strings.HasPrefix(f, "WP_") {
				return f
			}
		}
		return ""
	}

	res, err := client.Filter(context.Background(), in, out, extract)
	require.NoError(t, err)
	assert.Equal(t, &FilterResult{Total: 3, Kept: 2, Dropped: 1}, res)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "WP_058328214.1")
	assert.Contains(t, text, "local_1")
	assert.NotContains(t, text, "WP_000000000.1")
}
