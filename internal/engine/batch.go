package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Site names one independent set of estimate inputs, such as one pool of a
// multi-site operator.
type Site struct {
	Name   string `yaml:"name"   json:"name"`
	Inputs Inputs `yaml:"inputs" json:"inputs"`
}

// SiteEstimate pairs a site with its computed result.
type SiteEstimate struct {
	Name   string `json:"name"`
	Inputs Inputs `json:"inputs"`
	Result Result `json:"result"`
}

// ComputeBatch estimates every site with model m. Sites are independent, so
// they are computed concurrently with a limit of runtime.NumCPU(); results are
// returned in input order.
//
// ComputeBatch returns ErrNoSites for an empty slice and the context error if
// ctx is canceled before every site has been computed.
func ComputeBatch(ctx context.Context, m Model, sites []Site) ([]SiteEstimate, error) {
	if len(sites) == 0 {
		return nil, ErrNoSites
	}

	out := make([]SiteEstimate, len(sites))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, site := range sites {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("site %q: %w", site.Name, err)
			}
			// Each goroutine writes only its own index.
			out[i] = SiteEstimate{
				Name:   site.Name,
				Inputs: site.Inputs,
				Result: m.Compute(site.Inputs),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
