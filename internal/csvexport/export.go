package csvexport

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// PageSource generates one page of a dataset.
type PageSource interface {
	Generate(ctx context.Context, req protocol.GenerateRequest) (recordgen.Page, error)
}

// Job describes pages 1..Pages of one dataset.
type Job struct {
	Region      string
	Errors      float64
	Seed        string
	Pages       int
	Concurrency int
}

// Export fetches the job's pages with up to job.Concurrency requests in
// flight and writes them to w in page order. progress, if set, is called
// once per fetched page and may be called concurrently.
func Export(ctx context.Context, src PageSource, job Job, w io.Writer, progress func()) (int, error) {
	if job.Pages < 1 {
		return 0, fmt.Errorf("%w: need at least one page", recordgen.ErrInvalidPage)
	}

	pages := make([]recordgen.Page, job.Pages)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(job.Concurrency, 1))

	for i := range pages {
		g.Go(func() error {
			page, err := src.Generate(ctx, protocol.GenerateRequest{
				Region: job.Region,
				Errors: protocol.ErrorRate(job.Errors),
				Seed:   protocol.Seed(job.Seed),
				Page:   i + 1,
			})
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			pages[i] = page
			if progress != nil {
				progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	cw := NewWriter(w)
	for _, page := range pages {
		if err := cw.Write(page); err != nil {
			return cw.Rows(), err
		}
	}
	return cw.Rows(), cw.Flush()
}
