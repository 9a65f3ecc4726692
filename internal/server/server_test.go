package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/logtrack/pkg/cache"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/pipeline"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	runner := pipeline.NewRunner(fc, cache.NewScopedKeyer(nil, "api:"), logger)
	ts := httptest.NewServer(New(runner, logger).Handler())
	t.Cleanup(ts.Close)
	return ts, &logs
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"status": "ok"`) {
		t.Errorf("body = %s", body)
	}
	if _, err := uuid.Parse(resp.Header.Get(HeaderRequestID)); err != nil {
		t.Errorf("request id %q: %v", resp.Header.Get(HeaderRequestID), err)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	ts, logs := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(HeaderRequestID, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}
	if !strings.Contains(logs.String(), id) {
		t.Errorf("request id missing from log:\n%s", logs.String())
	}

	req.Header.Set(HeaderRequestID, "not-a-uuid")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got == "not-a-uuid" {
		t.Error("invalid request id was echoed")
	}
}

func TestListExamples(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/v1/examples")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got []exampleSummary
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d examples", len(got))
	}
	if got[2].Name != "three" || len(got[2].Tracks) != 3 {
		t.Errorf("third example = %+v", got[2])
	}
}

func TestGetExample(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/v1/examples/exampleTwo")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `"name": "two"`) {
		t.Errorf("body = %s", body)
	}

	resp, body = get(t, ts.URL+"/api/v1/examples/four")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown example status = %d", resp.StatusCode)
	}
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatal(err)
	}
	if e.Error.Code != errs.ErrCodeUnknownExample || e.RequestID == "" {
		t.Errorf("error body = %+v", e)
	}
}

func TestPrimitives(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/v1/examples/one/primitives?max_depth=50")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	prims, err := primitive.Unmarshal(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) == 0 {
		t.Error("no primitives")
	}
}

func TestRenderExample(t *testing.T) {
	ts, _ := newTestServer(t)
	url := ts.URL + "/api/v1/examples/two/render/svg?style=paper&width=400"

	resp, body := get(t, url)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(body, []byte("<svg")) || !strings.Contains(string(body), `width="400"`) {
		t.Errorf("unexpected svg: %.120s", body)
	}
	if got := resp.Header.Get(HeaderCache); got != "miss" {
		t.Errorf("first X-Cache = %q", got)
	}

	resp, _ = get(t, url)
	if got := resp.Header.Get(HeaderCache); got != "hit" {
		t.Errorf("second X-Cache = %q", got)
	}
}

func TestRenderExampleErrors(t *testing.T) {
	ts, _ := newTestServer(t)
	tests := []struct {
		path   string
		status int
		code   errs.Code
	}{
		{"/api/v1/examples/two/render/gif", http.StatusBadRequest, errs.ErrCodeInvalidFormat},
		{"/api/v1/examples/two/render/svg?style=neon", http.StatusBadRequest, errs.ErrCodeInvalidStyle},
		{"/api/v1/examples/two/render/svg?step=-1", http.StatusBadRequest, errs.ErrCodeInvalidRange},
		{"/api/v1/examples/two/render/svg?step=0", http.StatusBadRequest, errs.ErrCodeInvalidRange},
		{"/api/v1/examples/two/render/svg?width=wide", http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"/api/v1/examples/two/render/png?width=100000", http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"/api/v1/examples/two/render/png?height=8193", http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"/api/v1/examples/nine/render/svg", http.StatusNotFound, errs.ErrCodeUnknownExample},
		{"/api/v1/nope", http.StatusNotFound, errs.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode %s: %v", body, err)
			}
			if e.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Error.Code, tt.code)
			}
		})
	}
}

func TestRenderPost(t *testing.T) {
	ts, _ := newTestServer(t)
	body := `{
		"scene": {
			"name": "custom",
			"title": "Custom",
			"max_depth": 40,
			"step": 1,
			"spacing": 100,
			"tick_interval": 10,
			"ticks": true,
			"tracks": [{"name": "GR", "color": "#00ff88", "scale": 1, "wave": {"kind": "sin", "base": 50, "amplitude": 20, "divisor": 4}}]
		},
		"formats": ["svg", "json"]
	}`
	resp, err := http.Post(ts.URL+"/api/v1/render", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, b)
	}

	var got renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Scene != "custom" || got.Stats.Samples != 41 || got.Stats.Tracks != 1 {
		t.Errorf("response = %+v", got)
	}
	if !bytes.HasPrefix(got.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing")
	}
	if got.Cache.Scene != "miss" {
		t.Errorf("cache = %+v", got.Cache)
	}
}

func TestRenderPostRejectsUnknownFields(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/v1/render", "application/json", strings.NewReader(`{"exampel": "two"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.New(errs.ErrCodeInvalidRange, "x"), http.StatusBadRequest},
		{errs.New(errs.ErrCodeUnknownTrackSpec, "x"), http.StatusBadRequest},
		{errs.New(errs.ErrCodeNotFound, "x"), http.StatusNotFound},
		{errs.New(errs.ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{errs.New(errs.ErrCodeInternal, "x"), http.StatusInternalServerError},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s := New(pipeline.NewRunner(nil, nil, log.New(io.Discard)), log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
