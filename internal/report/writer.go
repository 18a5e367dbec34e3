package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SummaryWriter renders a complete summary to some output format.
type SummaryWriter interface {
	WriteSummary(*Summary) error
}

// JSONSummaryWriter writes a summary as indented JSON.
type JSONSummaryWriter struct {
	encoder *json.Encoder
}

func NewJSONSummaryWriter(w io.Writer) *JSONSummaryWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONSummaryWriter{encoder: enc}
}

func (w *JSONSummaryWriter) WriteSummary(s *Summary) error {
	return w.encoder.Encode(s)
}

// YAMLSummaryWriter writes a summary as YAML.
type YAMLSummaryWriter struct {
	writer io.Writer
}

func NewYAMLSummaryWriter(w io.Writer) *YAMLSummaryWriter {
	return &YAMLSummaryWriter{writer: w}
}

func (w *YAMLSummaryWriter) WriteSummary(s *Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	_, err = w.writer.Write(data)
	return err
}

// NewWriter returns the summary writer for a format name.
func NewWriter(format string, w io.Writer) (SummaryWriter, error) {
	switch format {
	case "json":
		return NewJSONSummaryWriter(w), nil
	case "yaml", "yml":
		return NewYAMLSummaryWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: yaml, json)", format)
	}
}
