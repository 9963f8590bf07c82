package audit

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/studyforge/catalog/pkg/types"
)

// Checker defaults.
const (
	DefaultConcurrency  = 8
	DefaultCheckTimeout = 5 * time.Second
)

// Checker performs live reachability checks against resource URLs. Checks
// fan out through a bounded worker pool so a large catalog does not
// overwhelm external hosts. An unreachable or slow host is a soft finding,
// never a hard failure.
type Checker struct {
	// Concurrency caps the number of in-flight requests.
	Concurrency int
	// Timeout bounds each individual check.
	Timeout time.Duration
	// Client issues the requests. Defaults to http.DefaultClient.
	Client *http.Client
}

// checkTarget is one URL to probe, tagged with its origin for the finding.
type checkTarget struct {
	order   int
	topicID string
	path    string
	url     string
}

// CheckLive probes every syntactically valid resource URL with a HEAD
// request and returns findings for URLs that failed or timed out.
// Syntactically broken URLs are skipped here; Run already reports them.
// Cancelling ctx aborts the whole pass.
func (c *Checker) CheckLive(ctx context.Context, topics []*types.Topic) ([]types.Finding, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	var targets []checkTarget
	for _, t := range topics {
		for i, res := range t.Resources {
			if !ValidURL(res.URL) {
				continue
			}
			targets = append(targets, checkTarget{
				order:   len(targets),
				topicID: t.ID,
				path:    fmt.Sprintf("resources[%d].url", i),
				url:     res.URL,
			})
		}
	}

	findings := make([]types.Finding, 0)
	results := make(chan types.Finding, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			if reason, ok := probe(gctx, client, timeout, target.url); !ok {
				results <- types.Finding{
					Kind:    types.FindingUnreachableURL,
					TopicID: target.topicID,
					Path:    target.path,
					Detail:  reason,
				}
			}
			return gctx.Err()
		})
	}
	err := g.Wait()
	close(results)
	for f := range results {
		findings = append(findings, f)
	}

	// Worker completion order is nondeterministic; sort so repeated runs
	// over the same input produce the same report.
	sort.Slice(findings, func(a, b int) bool {
		if findings[a].TopicID != findings[b].TopicID {
			return findings[a].TopicID < findings[b].TopicID
		}
		return findings[a].Path < findings[b].Path
	})

	if err != nil {
		return findings, fmt.Errorf("link check: %w", err)
	}
	return findings, nil
}

// probe issues one HEAD request. It returns ok=false with a human-readable
// reason when the host is unreachable, slow, or answers with a server or
// not-found class status.
func probe(ctx context.Context, client *http.Client, timeout time.Duration, rawURL string) (string, bool) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return fmt.Sprintf("building request: %v", err), false
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("request failed: %v", err), false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		return fmt.Sprintf("host answered %s", resp.Status), false
	}
	return "", true
}
