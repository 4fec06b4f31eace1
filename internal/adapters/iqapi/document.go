package iqapi

import (
	"encoding/json"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

// Document is one successful platform response. When the body was valid JSON
// the decoded value is kept; otherwise the raw text stands in for it, so a
// successful fetch always produces something the caller can return.
type Document struct {
	value  interface{}
	raw    []byte
	isJSON bool
}

// ParseDocument builds a Document from a response body, falling back to the
// raw text when the body is not valid JSON.
func ParseDocument(raw []byte) *Document {
	d := &Document{raw: raw}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil {
		d.value = v
		d.isJSON = true
	}
	return d
}

// Value returns the decoded JSON value, or the raw body text when the
// response was not JSON.
func (d *Document) Value() interface{} {
	if d.isJSON {
		return d.value
	}
	return string(d.raw)
}

// IsJSON reports whether the body parsed as JSON.
func (d *Document) IsJSON() bool {
	return d.isJSON
}

// String returns the raw response body.
func (d *Document) String() string {
	return string(d.raw)
}

// MarshalJSON serializes the document's value, keeping passthrough responses
// structurally identical to what the platform sent.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}

// Transactions extracts the ordered "transactions" array from the document.
// A non-JSON body, a non-object document, or a missing/odd-shaped field all
// yield nil: the feed treats such a page as containing no transactions.
func (d *Document) Transactions() []domain.Transaction {
	obj, ok := d.Value().(map[string]interface{})
	if !ok {
		return nil
	}
	list, ok := obj["transactions"].([]interface{})
	if !ok {
		return nil
	}
	txns := make([]domain.Transaction, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		txns = append(txns, domain.Transaction(record))
	}
	return txns
}
