package iqapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates optional request parameters. Keys keep their insertion
// order, and values that are nil or empty strings are dropped entirely so the
// platform never sees a bare "key=".
type Query struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewQuery creates an empty query builder.
func NewQuery() *Query {
	return &Query{}
}

// Set appends a parameter. Nil values and empty strings are skipped; numbers
// and booleans are formatted the way the platform expects them.
func (q *Query) Set(key string, value interface{}) *Query {
	switch v := value.(type) {
	case nil:
		return q
	case string:
		if v == "" {
			return q
		}
		q.add(key, v)
	case bool:
		q.add(key, strconv.FormatBool(v))
	case int:
		q.add(key, strconv.Itoa(v))
	case int64:
		q.add(key, strconv.FormatInt(v, 10))
	case float64:
		q.add(key, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		s := fmt.Sprintf("%v", v)
		if s == "" {
			return q
		}
		q.add(key, s)
	}
	return q
}

func (q *Query) add(key, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

// Encode serializes the query with a leading "?", or returns the empty string
// when no parameter survived.
func (q *Query) Encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('?')
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
