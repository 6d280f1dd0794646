package cart

import (
	"encoding/json"

	"github.com/google/uuid"
)

// LineItem is one row of the cart: a product+size combination and its
// quantity. Name and UnitPrice are snapshots taken at add time, so a
// catalog reload cannot silently change cart totals. LineID is a
// generated identifier that stays stable across re-renders; removal
// and quantity updates target it rather than a positional index.
type LineItem struct {
	LineID    string  `json:"line_id"`
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int64   `json:"quantity"`
}

// NewLineID returns a fresh stable line identifier.
func NewLineID() string {
	return uuid.NewString()
}

// TotalItemCount sums the quantities of all lines (the badge number).
func TotalItemCount(lines []LineItem) int64 {
	var total int64
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// EncodeSnapshot serializes the full cart for the snapshot store.
func EncodeSnapshot(lines []LineItem) ([]byte, error) {
	if lines == nil {
		lines = []LineItem{}
	}
	return json.Marshal(lines)
}

// DecodeSnapshot parses a persisted cart. Malformed data yields an
// error so the caller can log it; the returned slice is always usable
// (empty on failure). Lines persisted before line ids existed get one
// assigned here.
func DecodeSnapshot(data []byte) ([]LineItem, error) {
	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return []LineItem{}, err
	}
	for i := range lines {
		if lines[i].LineID == "" {
			lines[i].LineID = NewLineID()
		}
	}
	return lines, nil
}
