// Package uniprot validates accession codes against the UniProt REST API
// and filters FASTA sequence sets down to validated records before the
// pipeline aligns them.
package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"prolink/internal/logging"
)

// Config holds UniProt API connection and batching settings.
type Config struct {
	BaseURL   string // e.g. https://rest.uniprot.org
	BatchSize int    // accessions per query (default 100)
	Parallel  int    // concurrent batch queries (default 4)
}

// Client queries the UniProt search endpoint.
type Client struct {
	HTTPClient *http.Client
	Config     Config
}

// NewClient returns a client with the given config. Zero batching fields
// take the defaults; HTTPClient defaults to http.DefaultClient.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = 4
	}
	return &Client{Config: cfg, HTTPClient: http.DefaultClient}
}

// Minimal UniProt search response shape for unmarshalling.
type searchResponse struct {
	Results []struct {
		PrimaryAccession string `json:"primaryAccession"`
	} `json:"results"`
}

// CheckBatch queries one batch of accession codes and returns the subset
// UniProt knows about.
func (c *Client) CheckBatch(ctx context.Context, codes []string) (map[string]bool, error) {
	q := url.Values{}
	q.Set("query", strings.Join(codes, " OR "))
	q.Set("fields", "accession")
	q.Set("format", "json")
	u := fmt.Sprintf("%s/uniprotkb/search?%s", c.Config.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("uniprot search %s: %s", resp.Status, string(body))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	found := make(map[string]bool, len(sr.Results))
	for _, r := range sr.Results {
		found[r.PrimaryAccession] = true
	}
	return found, nil
}

// ValidateAll deduplicates codes, queries them in batches with bounded
// parallelism, and returns the union of validated accessions.
func (c *Client) ValidateAll(ctx context.Context, codes []string) (map[string]bool, error) {
	unique := dedupe(codes)
	if len(unique) == 0 {
		return map[string]bool{}, nil
	}

	log := logging.New("uniprot")
	log.Info("validating accessions", "codes", len(unique), "batch_size", c.Config.BatchSize)

	var (
		mu    sync.Mutex
		valid = make(map[string]bool)
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Config.Parallel)

	for start := 0; start < len(unique); start += c.Config.BatchSize {
		end := start + c.Config.BatchSize
		if end > len(unique) {
			end = len(unique)
		}
		batch := unique[start:end]
		g.Go(func() error {
			found, err := c.CheckBatch(ctx, batch)
			if err != nil {
				return fmt.Errorf("batch %s..%s: %w", batch[0], batch[len(batch)-1], err)
			}
			mu.Lock()
			for code := range found {
				valid[code] = true
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("validation finished", "valid", len(valid), "checked", len(unique))
	return valid, nil
}

// dedupe returns the unique codes in sorted order, for deterministic
// batching.
func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	var out []string
	for _, c := range codes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
