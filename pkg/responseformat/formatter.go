package responseformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"
)

// Format names an output encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
	CSV     Format = "csv"
)

// ParseFormat maps a format name to a Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, MsgPack, CSV:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml, msgpack or csv)", s)
	}
}

// Formatter handles encoding records in JSON, YAML, MessagePack or CSV.
// JSON, YAML and MessagePack all use the json struct tags so the three
// encodings carry the same field names.
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Write encodes data to w. CSV output requires a slice of structs with csv
// tags.
func (f *Formatter) Write(w io.Writer, format Format, data any) error {
	switch format {
	case JSON:
		return f.writeJSON(w, data)
	case YAML:
		return f.writeYAML(w, data)
	case MsgPack:
		return f.writeMsgPack(w, data)
	case CSV:
		return f.writeCSV(w, data)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// writeYAML goes through JSON so that the json tags name the keys. Decoding
// into a MapSlice keeps the struct field order.
func (f *Formatter) writeYAML(w io.Writer, data any) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	doc, err := orderedYAML(jsonBytes)
	if err != nil {
		return fmt.Errorf("error converting to YAML: %w", err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func orderedYAML(jsonBytes []byte) (any, error) {
	trimmed := bytes.TrimSpace(jsonBytes)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{':
			var m yaml.MapSlice
			if err := yaml.Unmarshal(trimmed, &m); err == nil {
				return m, nil
			}
		case '[':
			var l []yaml.MapSlice
			if err := yaml.Unmarshal(trimmed, &l); err == nil {
				return l, nil
			}
		}
	}

	var doc any
	err := yaml.Unmarshal(trimmed, &doc)
	return doc, err
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}

func (f *Formatter) writeCSV(w io.Writer, data any) error {
	if k := reflect.TypeOf(data); k == nil || (k.Kind() != reflect.Slice && k.Kind() != reflect.Array) {
		return fmt.Errorf("CSV output needs a slice of records, got %T", data)
	}
	return gocsv.Marshal(data, w)
}
