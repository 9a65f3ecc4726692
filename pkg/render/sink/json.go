package sink

import "github.com/matzehuels/logtrack/pkg/core/primitive"

// RenderJSON encodes prims as the tagged primitive document.
func RenderJSON(prims []primitive.Primitive) ([]byte, error) {
	return primitive.Marshal(prims)
}
