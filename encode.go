package workledger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeProjects writes projects as JSONL, one project per line, in order.
func EncodeProjects(w io.Writer, projects []Project) error { return encodeLines(w, projects) }

// DecodeProjects reads projects written by EncodeProjects. A JSON array of
// projects is also accepted.
func DecodeProjects(r io.Reader) ([]Project, error) { return decodeLines[Project](r) }

// EncodeWorkers writes workers as JSONL, one worker per line, in order.
func EncodeWorkers(w io.Writer, workers []Worker) error { return encodeLines(w, workers) }

// DecodeWorkers reads workers written by EncodeWorkers. A JSON array of
// workers is also accepted.
func DecodeWorkers(r io.Reader) ([]Worker, error) { return decodeLines[Worker](r) }

func encodeLines[T any](w io.Writer, list []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, v := range list {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func decodeLines[T any](r io.Reader) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	list := make([]T, 0)
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var v T
		if err := json.Unmarshal(lineBytes, &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		list = append(list, v)
	}
	return list, scanner.Err()
}
