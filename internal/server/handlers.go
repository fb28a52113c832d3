package server

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"pkg.jsn.cam/recordgen/internal/csvexport"
	"pkg.jsn.cam/recordgen/internal/presets"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/httpx"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// ExportFilename is the attachment name of /export.csv responses.
const ExportFilename = "generated_data.csv"

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "recordgen is running\n")
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) error {
	var req protocol.GenerateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	page, err := s.generate(r, req.ToGenerationRequest())
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusOK, page)
	return nil
}

// generate runs one generation and records its metrics.
func (s *Server) generate(r *http.Request, req recordgen.GenerationRequest) (recordgen.Page, error) {
	start := time.Now()
	page, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePage(req.Region.String(), time.Since(start))
	return page, nil
}

func (s *Server) handleRandomSeed(w http.ResponseWriter, r *http.Request) {
	s.metrics.SeedsIssued.Inc()
	httpx.JSON(w, http.StatusOK, protocol.RandomSeedResponse{Seed: s.seeds.RandomSeed()})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	resp := protocol.RegionListResponse{Regions: make([]protocol.RegionInfo, 0, len(recordgen.Regions))}
	for _, region := range recordgen.Regions {
		resp.Regions = append(resp.Regions, protocol.RegionInfo{
			Code:  region.Code(),
			Label: region.Label(),
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// handleExportCSV renders pages 1..N of a dataset as one CSV file. The body
// is buffered so a failure on any page still yields a JSON error.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) error {
	q := protocol.ExportQuery{Pages: 1}
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		return httpx.BadRequest("invalid query: %v", err)
	}
	if err := httpx.Validate(q); err != nil {
		return err
	}
	if q.Pages > s.opts.MaxExportPages {
		return httpx.BadRequest("pages must be at most %d", s.opts.MaxExportPages)
	}

	region := recordgen.ParseRegion(q.Region)
	var buf bytes.Buffer
	cw := csvexport.NewWriter(&buf)
	for p := 1; p <= q.Pages; p++ {
		page, err := s.generate(r, recordgen.GenerationRequest{
			Region:    region,
			ErrorRate: q.Errors,
			Seed:      q.Seed,
			Page:      p,
		})
		if err != nil {
			return err
		}
		if err := cw.Write(page); err != nil {
			return err
		}
	}
	if err := cw.Flush(); err != nil {
		return err
	}

	s.logger.DebugContext(r.Context(), "csv export",
		slog.String("region", region.String()),
		slog.Int("pages", q.Pages),
		slog.Int("rows", cw.Rows()),
	)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) error {
	list, err := s.presets.List()
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, protocol.PresetListResponse{Presets: list})
	return nil
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) error {
	var req protocol.PresetCreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	p, err := s.presets.Create(req)
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusCreated, p)
	return nil
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) error {
	p, err := s.lookupPreset(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := s.presets.Delete(id); err != nil {
		return presetError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// handlePresetPage generates one page of the dataset a preset names.
func (s *Server) handlePresetPage(w http.ResponseWriter, r *http.Request) error {
	p, err := s.lookupPreset(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	pageNum, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		return httpx.BadRequest("invalid page %q", chi.URLParam(r, "page"))
	}

	page, err := s.generate(r, recordgen.GenerationRequest{
		Region:    recordgen.ParseRegion(p.Region),
		ErrorRate: p.Errors,
		Seed:      p.Seed,
		Page:      pageNum,
	})
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusOK, page)
	return nil
}

func (s *Server) lookupPreset(id string) (protocol.Preset, error) {
	p, err := s.presets.Get(id)
	if err != nil {
		return protocol.Preset{}, presetError(err)
	}
	return p, nil
}

func presetError(err error) error {
	if errors.Is(err, presets.ErrNotFound) {
		return httpx.NewStatusError(http.StatusNotFound, err)
	}
	return err
}
