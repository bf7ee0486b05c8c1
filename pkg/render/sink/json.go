package sink

import (
	"encoding/json"

	"github.com/matzehuels/spheregrid/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithCompactJSON drops indentation.
func WithCompactJSON() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON exports the scene tree for external renderers. Colors are hex
// strings, clamped and quantized to 8 bits per channel like every other
// sink's output, so a decoded scene matches the in-memory one only to within
// 1/255 per channel. Paths keep their typed segments.
func RenderJSON(s *scene.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.compact {
		return json.Marshal(s)
	}
	return json.MarshalIndent(s, "", "  ")
}

// ReadJSON decodes a scene written by [RenderJSON].
func ReadJSON(data []byte) (*scene.Scene, error) {
	var s scene.Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
