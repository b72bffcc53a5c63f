package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadError reports a network file that could not be read or decoded.
type LoadError struct {
	// File is the path of the file, empty for in-memory documents.
	File string

	// Message describes the failure.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes a network document. Unknown keys are rejected in both
// formats so that a misspelt parameter does not silently fall back to zero.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, &LoadError{Message: "failed to parse TOML", Cause: fmt.Errorf("%w: %w", ErrParse, err)}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, &LoadError{
				Message: "unknown keys",
				Cause:   fmt.Errorf("%w: %s", ErrParse, strings.Join(keys, ", ")),
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: fmt.Errorf("%w: %w", ErrParse, err)}
		}
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnknownFormat, format)
	}
	return &f, nil
}

// Load reads and decodes the network file at path, choosing the format from
// its extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	f, err := Parse(data, format)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return f, nil
}
