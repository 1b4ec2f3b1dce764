package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

// emit writes v as YAML when --format yaml is set and calls text otherwise.
func emit(w io.Writer, v any, text func(io.Writer) error) error {
	if opts.Format != formatYAML {
		return text(w)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
