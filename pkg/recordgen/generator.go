package recordgen

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MaxErrorRate is the largest accepted per-record error count.
const MaxErrorRate = 1000

var tracer = otel.Tracer("pkg.jsn.cam/recordgen")

// GenerationRequest describes one page of a logical dataset.
type GenerationRequest struct {
	Region    Region
	ErrorRate float64
	Seed      string
	Page      int
}

// Validate checks the numeric inputs. The seed is checked when resolved.
func (r GenerationRequest) Validate() error {
	if math.IsNaN(r.ErrorRate) || r.ErrorRate < 0 || r.ErrorRate > MaxErrorRate {
		return fmt.Errorf("%w: must be between 0 and %d", ErrInvalidErrorRate, MaxErrorRate)
	}
	if r.Page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, r.Page)
	}
	return nil
}

// GeneratePage produces PageSize records for region from effectiveSeed, each
// corrupted with errorCount mutations.
//
// Each record draws a mutation seed from the page stream whether or not
// errors are requested, so record content does not depend on errorCount.
func GeneratePage(region Region, errorCount float64, effectiveSeed int64) (Page, error) {
	f := NewStream(effectiveSeed)
	formatter := FormatterFor(region)

	page := make(Page, 0, PageSize)
	for i := 1; i <= PageSize; i++ {
		id, err := uuid.NewRandomFromReader(f.Rand)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d identifier: %v", ErrGeneration, i, err)
		}

		rec := Record{
			SequenceNumber: i,
			Identifier:     id.String(),
			Name:           formatter.Name(f),
			Address:        formatter.Address(f),
			Phone:          formatter.Phone(f),
		}

		mutationSeed := f.Rand.Int63()
		if errorCount > 0 {
			ApplyErrors(rand.New(rand.NewSource(mutationSeed)), &rec, errorCount)
		}
		page = append(page, rec)
	}

	return page, nil
}

// Generator resolves requests into pages.
type Generator struct{}

// NewGenerator creates a generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate validates req, derives the page seed and generates the page.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (Page, error) {
	ctx, span := tracer.Start(ctx, "recordgen.Generate",
		trace.WithAttributes(
			attribute.String("recordgen.region", req.Region.String()),
			attribute.Float64("recordgen.error_rate", req.ErrorRate),
			attribute.Int("recordgen.page", req.Page),
		),
	)
	defer span.End()

	page, err := g.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return page, nil
}

func (g *Generator) generate(ctx context.Context, req GenerationRequest) (Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seed, err := ResolveEffectiveSeed(req.Seed, req.Page)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("recordgen.effective_seed", seed))

	return GeneratePage(req.Region, req.ErrorRate, seed)
}
