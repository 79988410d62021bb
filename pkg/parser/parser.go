// Package parser reads input documents into the JSON value model used by the
// normalizer: nil, bool, json.Number, string, []any and map[string]any.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/jsondiff/pkg/normalizer"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Load reads the file at path, decompresses it when it is gzip or zstd
// compressed and decodes it with the given format.
func Load(path string, format Format) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data, err = Decompress(path, data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}

	v, err := Parse(data, format.Detect(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}

// Decompress inflates data when the path has a .gz, .zst or .zstd suffix or
// the content starts with a gzip or zstd header. Other data is returned as is.
func Decompress(path string, data []byte) ([]byte, error) {
	name := strings.ToLower(path)
	switch {
	case strings.HasSuffix(name, ".gz"), bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"), bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	default:
		return data, nil
	}
}

// Parse decodes a single document. FormatAuto is treated as JSON; use
// Format.Detect to pick a format from a file name.
func Parse(data []byte, format Format) (any, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON, FormatAuto, "":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unmarshaling JSON: empty document")
		}
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshaling JSON: unexpected data after document at offset %d", dec.InputOffset())
	}
	return v, nil
}

func parseYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	return fromYAML(raw)
}

// fromYAML converts a value decoded by yaml.v3 into the JSON value model.
func fromYAML(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, string:
		return t, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("unsupported YAML number %v: not representable in JSON", t)
		}
		return json.Number(normalizer.FormatFloat(t)), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case []byte:
		return string(t), nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			c, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			c, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			c, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			out[yamlKey(k)] = c
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}

func yamlKey(k any) string {
	switch t := k.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return normalizer.FormatFloat(t)
	default:
		return fmt.Sprint(t)
	}
}
