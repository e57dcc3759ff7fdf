package lcgcrack

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

// SequenceParser defines the interface for reading an ordered observation
// sequence from a source. Observations are returned oldest first.
type SequenceParser interface {
	ParseValues(source string) ([]*big.Int, error)
}

// JSONParser parses observations from JSON files.
//
// Accepted formats:
//
//	[123, "456", "0x1c8"]
//	[{"value": "123"}, {"value": "456"}]
type JSONParser struct {
	ValueField string // field name when elements are objects (default: "value")
}

// ParseValues parses observations from a JSON file.
func (p *JSONParser) ParseValues(jsonFile string) ([]*big.Int, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // preserve large numbers as json.Number instead of float64

	var items []interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	field := p.ValueField
	if field == "" {
		field = "value"
	}

	values := make([]*big.Int, 0, len(items))
	for i, item := range items {
		raw := item
		if obj, ok := item.(map[string]interface{}); ok {
			v, ok := obj[field]
			if !ok {
				return nil, fmt.Errorf("element %d: missing %q field", i, field)
			}
			raw = v
		}
		v, err := parseBigInt(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// CSVParser parses observations from CSV files with a header row.
type CSVParser struct {
	ValueCol string // column name (default: "value")
}

// ParseValues parses observations from a CSV file.
func (p *CSVParser) ParseValues(csvFile string) ([]*big.Int, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	col := p.ValueCol
	if col == "" {
		col = "value"
	}

	idx := -1
	for i, name := range header {
		if name == col {
			idx = i
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("missing required column: %s", col)
	}

	values := make([]*big.Int, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if idx >= len(record) {
			return nil, fmt.Errorf("column %s out of range in record %v", col, record)
		}
		v, err := parseBigInt(record[idx])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(values), err)
		}
		values = append(values, v)
	}

	return values, nil
}

// PlainParser parses observations from plain text files, one or more
// whitespace-separated integers per line. Blank lines and lines starting
// with # are skipped.
type PlainParser struct{}

// ParseValues parses observations from a text file.
func (p *PlainParser) ParseValues(textFile string) ([]*big.Int, error) {
	file, err := os.Open(textFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	values := make([]*big.Int, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := parseBigInt(tok)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return values, nil
}

// parseBigInt parses an integer from the decoded forms the parsers produce.
// Strings are decimal unless explicitly prefixed with 0x.
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		body := strings.TrimPrefix(s, "-")
		base := 10
		if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
			body = body[2:]
			base = 16
		}
		z, ok := new(big.Int).SetString(body, base)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %q", v)
		}
		if strings.HasPrefix(s, "-") {
			z.Neg(z)
		}
		return z, nil

	case json.Number:
		z, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %q", v)
		}
		return z, nil

	case float64:
		z, ok := new(big.Int).SetString(fmt.Sprintf("%.0f", v), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %v", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported value type: %T", val)
	}
}
