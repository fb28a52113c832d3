package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

// Seed is a caller seed. Clients send it either as a JSON string or a JSON
// number; both are kept as text and parsed by the seed controller.
type Seed string

// UnmarshalJSON accepts "42", 42 and null.
func (s *Seed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Seed(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("seed must be a string or a number")
	}
	*s = Seed(num.String())
	return nil
}

// ErrorRate is the per-record error count. Browser inputs deliver it as a
// string, so both "2.5" and 2.5 are accepted.
type ErrorRate float64

// UnmarshalJSON accepts numbers, numeric strings, "" and null (zero).
func (e *ErrorRate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = 0
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*e = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("errors must be a number")
	}
	*e = ErrorRate(v)
	return nil
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Region string    `json:"region"`
	Errors ErrorRate `json:"errors" validate:"gte=0,lte=1000"`
	Seed   Seed      `json:"seed" validate:"required"`
	Page   int       `json:"page" validate:"gte=1"`
}

// ToGenerationRequest converts the wire request into a generator request.
func (r GenerateRequest) ToGenerationRequest() recordgen.GenerationRequest {
	return recordgen.GenerationRequest{
		Region:    recordgen.ParseRegion(r.Region),
		ErrorRate: float64(r.Errors),
		Seed:      string(r.Seed),
		Page:      r.Page,
	}
}

// GenerateResponse is the body returned by POST /generate.
type GenerateResponse = recordgen.Page

// RandomSeedResponse is returned by GET /random-seed.
type RandomSeedResponse struct {
	Seed int64 `json:"seed"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegionInfo describes one selectable region.
type RegionInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// RegionListResponse is returned by GET /api/regions.
type RegionListResponse struct {
	Regions []RegionInfo `json:"regions"`
}

// ExportQuery holds the query parameters of GET /export.csv.
type ExportQuery struct {
	Region string  `schema:"region"`
	Errors float64 `schema:"errors" validate:"gte=0,lte=1000"`
	Seed   string  `schema:"seed" validate:"required"`
	Pages  int     `schema:"pages" validate:"gte=1"`
}

// Preset is a saved generation configuration.
type Preset struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Seed      string    `json:"seed"`
	Errors    float64   `json:"errors"`
}

// PresetCreateRequest is the body of POST /api/presets.
type PresetCreateRequest struct {
	Name   string    `json:"name" validate:"required,max=100"`
	Region string    `json:"region"`
	Errors ErrorRate `json:"errors" validate:"gte=0,lte=1000"`
	Seed   Seed      `json:"seed" validate:"required"`
}

// PresetListResponse is returned by GET /api/presets.
type PresetListResponse struct {
	Presets []Preset `json:"presets"`
}
