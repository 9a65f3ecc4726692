package io

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
)

// WritePrimitives encodes prims as a primitive document and writes it to w.
func WritePrimitives(prims []primitive.Primitive, w io.Writer) error {
	data, err := primitive.Marshal(prims)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportPrimitives writes a primitive document to path.
func ExportPrimitives(prims []primitive.Primitive, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePrimitives(prims, f)
}

// WriteScene encodes d as a TOML scene file. The output can be read back
// with [ReadScene]; `logtrack list --export` uses it to seed custom scenes.
func WriteScene(d catalog.Definition, w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
