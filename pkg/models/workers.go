package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WorkerStats is one worker's performance snapshot as reported by the scanner.
type WorkerStats struct {
	ID                string  `json:"slave_id,omitempty"`
	Device            string  `json:"device"`
	LinksFound        int     `json:"links_found"`
	TotalBytesMB      float64 `json:"total_bytes_mb"`
	PagesProcessed    int     `json:"pages_processed"`
	AvgPageSizeKB     float64 `json:"avg_page_size_kb"`
	AvgProcessingTime float64 `json:"avg_processing_time"`
	Errors            int     `json:"errors"`
	TimeoutErrors     int     `json:"timeout_errors"`
	ErrorRate         float64 `json:"error_rate,omitempty"`
	TimeoutRate       float64 `json:"timeout_rate,omitempty"`
}

// Workers is the slave_performance mapping in server order.
// A nil Workers means the field was absent; an empty one means no workers.
type Workers []WorkerStats

func (w *Workers) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	out := Workers{}
	err := eachMember(data, func(key string, raw json.RawMessage) error {
		var stats WorkerStats
		if err := json.Unmarshal(raw, &stats); err != nil {
			return fmt.Errorf("worker %q: %w", key, err)
		}
		// The mapping key is authoritative for the worker identity.
		stats.ID = key
		out = append(out, stats)
		return nil
	})
	if err != nil {
		return err
	}
	*w = out
	return nil
}

// eachMember walks a JSON object in document order.
func eachMember(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
