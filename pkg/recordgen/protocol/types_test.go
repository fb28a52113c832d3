package protocol

import (
	"encoding/json"
	"testing"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

func TestGenerateRequestDecoding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    GenerateRequest
		wantErr bool
	}{
		{
			name: "string seed",
			body: `{"region":"de","errors":2,"seed":"5","page":1}`,
			want: GenerateRequest{Region: "de", Errors: 2, Seed: "5", Page: 1},
		},
		{
			name: "numeric seed and string errors",
			body: `{"region":"pl","errors":"2.5","seed":42,"page":3}`,
			want: GenerateRequest{Region: "pl", Errors: 2.5, Seed: "42", Page: 3},
		},
		{
			name: "empty errors and null seed",
			body: `{"errors":"","seed":null,"page":1}`,
			want: GenerateRequest{Page: 1},
		},
		{
			name:    "object seed",
			body:    `{"seed":{"x":1},"page":1}`,
			wantErr: true,
		},
		{
			name:    "word errors",
			body:    `{"errors":"many","seed":"1","page":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GenerateRequest
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToGenerationRequest(t *testing.T) {
	req := GenerateRequest{Region: "xx", Errors: 1.5, Seed: "9", Page: 4}
	got := req.ToGenerationRequest()

	if got.Region != recordgen.RegionDefault {
		t.Errorf("unknown region should fall back to default, got %v", got.Region)
	}
	if got.ErrorRate != 1.5 || got.Seed != "9" || got.Page != 4 {
		t.Errorf("unexpected conversion: %+v", got)
	}
}

func TestIsCompatibleVersion(t *testing.T) {
	tests := []struct {
		server, client string
		want           bool
		wantErr        bool
	}{
		{"v1.0.0", "v1.0.0", true, false},
		{"v1.4.2", "v1.0.0", true, false},
		{"v2.0.0", "v1.0.0", false, false},
		{"1.0.0", "v1.0.0", false, true},
		{"v1.0.0", "garbage", false, true},
	}

	for _, tt := range tests {
		got, err := IsCompatibleVersion(tt.server, tt.client)
		if (err != nil) != tt.wantErr {
			t.Errorf("IsCompatibleVersion(%q, %q) error = %v, wantErr %v", tt.server, tt.client, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("IsCompatibleVersion(%q, %q) = %v, want %v", tt.server, tt.client, got, tt.want)
		}
	}
}
