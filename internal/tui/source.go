package tui

import (
	"context"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// Source supplies pages and seeds to the browser. *client.Client is a
// Source; LocalSource generates in-process.
type Source interface {
	Generate(ctx context.Context, req protocol.GenerateRequest) (recordgen.Page, error)
	RandomSeed(ctx context.Context) (int64, error)
}

// LocalSource generates pages without a server.
type LocalSource struct {
	gen   *recordgen.Generator
	seeds *recordgen.SeedSource
}

// NewLocalSource creates a LocalSource whose random seeds come from seed.
func NewLocalSource(seed int64) *LocalSource {
	return &LocalSource{
		gen:   recordgen.NewGenerator(),
		seeds: recordgen.NewSeedSource(seed),
	}
}

func (s *LocalSource) Generate(ctx context.Context, req protocol.GenerateRequest) (recordgen.Page, error) {
	return s.gen.Generate(ctx, req.ToGenerationRequest())
}

func (s *LocalSource) RandomSeed(context.Context) (int64, error) {
	return s.seeds.RandomSeed(), nil
}
