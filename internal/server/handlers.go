package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/logtrack/pkg/buildinfo"
	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/pipeline"
)

// HeaderCache reports "hit" or "miss" for rendered artifacts.
const HeaderCache = "X-Cache"

type exampleSummary struct {
	Name        catalog.Example `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	MaxDepth    float64         `json:"max_depth"`
	Tracks      []string        `json:"tracks"`
}

func summarize(d catalog.Definition) exampleSummary {
	s := exampleSummary{Name: d.Name, Title: d.Title, Description: d.Description, MaxDepth: d.MaxDepth}
	for _, t := range d.Tracks {
		s.Tracks = append(s.Tracks, t.Name)
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Current(),
	})
}

func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	all := catalog.All()
	out := make([]exampleSummary, len(all))
	for i, d := range all {
		out[i] = summarize(d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetExample(w http.ResponseWriter, r *http.Request) {
	def, err := catalog.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handlePrimitives(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Example = chi.URLParam(r, "name")
	opts.Logger = s.requestLogger(r)

	scene, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := primitive.Marshal(scene.Primitives)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

func (s *Server) handleRenderExample(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := strings.ToLower(chi.URLParam(r, "format"))
	opts.Example = chi.URLParam(r, "name")
	opts.Formats = []string{format}
	opts.Logger = s.requestLogger(r)

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(HeaderCache, cacheStatus(res.CacheInfo.RenderHit))
	w.Header().Set("ETag", strconv.Quote(res.SceneHash))
	_, _ = w.Write(res.Artifacts[format])
}

// renderResponse is the body of POST /api/v1/render. Artifacts are base64
// encoded by encoding/json.
type renderResponse struct {
	Scene     string            `json:"scene"`
	SceneHash string            `json:"scene_hash"`
	Artifacts map[string][]byte `json:"artifacts"`
	Stats     renderStats       `json:"stats"`
	Cache     renderCache       `json:"cache"`
}

type renderStats struct {
	Tracks     int     `json:"tracks"`
	Samples    int     `json:"samples"`
	Primitives int     `json:"primitives"`
	GenerateMS float64 `json:"generate_ms"`
	RenderMS   float64 `json:"render_ms"`
}

type renderCache struct {
	Scene  string `json:"scene"`
	Render string `json:"render"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var opts pipeline.Options
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	opts.Logger = s.requestLogger(r)

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{
		Scene:     string(res.Scene.Definition.Name),
		SceneHash: res.SceneHash,
		Artifacts: res.Artifacts,
		Stats: renderStats{
			Tracks:     res.Stats.Tracks,
			Samples:    res.Stats.Samples,
			Primitives: res.Stats.Primitives(),
			GenerateMS: float64(res.Stats.GenerateTime.Microseconds()) / 1000,
			RenderMS:   float64(res.Stats.RenderTime.Microseconds()) / 1000,
		},
		Cache: renderCache{
			Scene:  cacheStatus(res.CacheInfo.SceneHit),
			Render: cacheStatus(res.CacheInfo.RenderHit),
		},
	})
}

func (s *Server) requestLogger(r *http.Request) *log.Logger {
	return s.logger.With("id", RequestID(r.Context()))
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// optionsFromQuery reads render and override parameters:
// style, width, height, max_depth, step, spacing, tick_interval, refresh.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{Style: q.Get("style")}
	var err error
	if opts.Width, err = queryFloat(q, "width", 0); err != nil {
		return opts, err
	}
	if opts.Height, err = queryFloat(q, "height", 0); err != nil {
		return opts, err
	}
	overrides := []struct {
		key string
		dst **float64
	}{
		{"max_depth", &opts.MaxDepth},
		{"step", &opts.Step},
		{"spacing", &opts.Spacing},
		{"tick_interval", &opts.TickInterval},
	}
	for _, o := range overrides {
		if q.Get(o.key) == "" {
			continue
		}
		n, err := queryFloat(q, o.key, 0)
		if err != nil {
			return opts, err
		}
		*o.dst = pipeline.Float(n)
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "refresh: not a boolean: %q", v)
		}
		opts.Refresh = b
	}
	return opts, nil
}

func queryFloat(q url.Values, key string, def float64) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s: not a number: %q", key, v)
	}
	return n, nil
}
