package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/logtrack/pkg/cache"
	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
)

// Generate builds the scene described by opts without caching.
func Generate(opts Options) (*catalog.Scene, error) {
	def, err := opts.Definition()
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// sceneRecord is the cached form of a scene. Primitives are stored as the
// tagged primitive document since the interface slice has no JSON shape of
// its own.
type sceneRecord struct {
	Scene      *catalog.Scene  `json:"scene"`
	Primitives json.RawMessage `json:"primitives"`
}

// MarshalScene serializes a scene including its primitives.
func MarshalScene(s *catalog.Scene) ([]byte, error) {
	doc, err := primitive.Marshal(s.Primitives)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sceneRecord{Scene: s, Primitives: doc})
}

// UnmarshalScene restores a scene written by [MarshalScene].
func UnmarshalScene(data []byte) (*catalog.Scene, error) {
	var rec sceneRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if rec.Scene == nil {
		return nil, fmt.Errorf("decode scene: missing scene")
	}
	prims, err := primitive.Unmarshal(rec.Primitives)
	if err != nil {
		return nil, err
	}
	rec.Scene.Primitives = prims
	return rec.Scene, nil
}

// SceneHash returns the content hash of a scene's primitive document. Two
// scenes with the same hash render identically.
func SceneHash(s *catalog.Scene) (string, error) {
	doc, err := primitive.Marshal(s.Primitives)
	if err != nil {
		return "", err
	}
	return cache.Hash(doc), nil
}
