package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/serenakung/speech-scene-generator/pkg/assets"
	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/pipeline"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

func testBank() *lexicon.Bank {
	return &lexicon.Bank{
		Nouns: []lexicon.Item{
			{Word: "sun", Position: lexicon.PositionInitial, Syllables: 1, Phonemes: []string{"s", "n"}},
			{Word: "sock", Position: lexicon.PositionInitial, Syllables: 1, Phonemes: []string{"s", "k"}},
			{Word: "soap", Position: lexicon.PositionInitial, Syllables: 1, Phonemes: []string{"s", "p"}},
		},
		Verbs: []lexicon.Item{
			{Word: "sip", Position: lexicon.PositionInitial, Syllables: 1, Phonemes: []string{"s", "p"}},
		},
	}
}

func testServer(t *testing.T, usage usagelog.Store) *httptest.Server {
	t.Helper()
	bank := testBank()
	loader := assets.NewLoader(t.TempDir())
	runner := pipeline.NewRunner(bank, loader, nil, usage, nil)
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(runner, loader, bank, usage, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestGenerateJSON(t *testing.T) {
	srv := testServer(t, nil)

	body := `{"mode":"i-spy","count":2,"phonemes":["s"],"positions":["initial"],"seed":7,"formats":["json"]}`
	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/generate error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
	if seed := resp.Header.Get("X-Scene-Seed"); seed != "7" {
		t.Errorf("X-Scene-Seed = %q, want %q", seed, "7")
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if doc["canvas_width"].(float64) != 2480 {
		t.Errorf("canvas_width = %v, want 2480", doc["canvas_width"])
	}
}

func TestGenerateMultipleFormats(t *testing.T) {
	srv := testServer(t, nil)

	body := `{"mode":"i-spy","phonemes":["s"],"positions":["initial"],"seed":7,"formats":["svg","json"]}`
	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/generate error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var doc struct {
		Seed      uint64            `json:"seed"`
		Artifacts map[string][]byte `json:"artifacts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if doc.Seed != 7 {
		t.Errorf("seed = %d, want 7", doc.Seed)
	}
	if len(doc.Artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(doc.Artifacts))
	}
	if !strings.HasPrefix(string(doc.Artifacts["svg"]), "<svg") {
		t.Error("svg artifact does not start with <svg")
	}
}

func TestGenerateErrors(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "no positions",
			body:   `{"mode":"i-spy","phonemes":["s"],"seed":1,"formats":["json"]}`,
			status: http.StatusBadRequest,
			code:   "NO_SELECTION",
		},
		{
			name:   "bad mode",
			body:   `{"mode":"bingo","positions":["initial"],"seed":1,"formats":["json"]}`,
			status: http.StatusBadRequest,
			code:   "INVALID_MODE",
		},
		{
			name:   "empty pool",
			body:   `{"mode":"i-spy","phonemes":["z"],"positions":["medial"],"seed":1,"formats":["json"]}`,
			status: http.StatusUnprocessableEntity,
			code:   "EMPTY_POOL",
		},
		{
			name:   "malformed body",
			body:   `{not json`,
			status: http.StatusBadRequest,
			code:   "INVALID_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var doc map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if doc["code"] != tt.code {
				t.Errorf("code = %q, want %q", doc["code"], tt.code)
			}
		})
	}
}

func TestLogCSV(t *testing.T) {
	store, err := usagelog.NewFileStore(t.TempDir(), "usage")
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	srv := testServer(t, store)

	body := `{"mode":"sentence","count":1,"phonemes":["s"],"positions":["initial"],"seed":3,"formats":["json"]}`
	if _, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body)); err != nil {
		t.Fatalf("POST /api/generate error = %v", err)
	}

	resp, err := http.Get(srv.URL + "/api/log.csv")
	if err != nil {
		t.Fatalf("GET /api/log.csv error = %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/csv")
	}
	data, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "timestamp,mode,verb,noun" {
		t.Errorf("header = %q, want %q", lines[0], "timestamp,mode,verb,noun")
	}
	if len(lines) < 2 {
		t.Error("expected at least one record after generation")
	}
}

func TestAuditEndpoint(t *testing.T) {
	srv := testServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/audit")
	if err != nil {
		t.Fatalf("GET /api/audit error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var report struct {
		Missing []struct {
			Kind   string `json:"kind"`
			Word   string `json:"word"`
			Reason string `json:"reason"`
		} `json:"missing"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	// No bank entry has an image path, so every word is reported.
	if len(report.Missing) != 4 {
		t.Errorf("got %d missing entries, want 4", len(report.Missing))
	}
}
