package iqapi

import "testing"

func TestQuery_Encode(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Query
		expected string
	}{
		{
			name:     "empty",
			build:    func() *Query { return NewQuery() },
			expected: "",
		},
		{
			name: "single parameter",
			build: func() *Query {
				return NewQuery().Set("ticker", "SOPHIA")
			},
			expected: "?ticker=SOPHIA",
		},
		{
			name: "skips nil and empty values",
			build: func() *Query {
				return NewQuery().
					Set("ticker", "").
					Set("userId", nil).
					Set("page", 2)
			},
			expected: "?page=2",
		},
		{
			name: "all values skipped yields empty string",
			build: func() *Query {
				return NewQuery().Set("a", "").Set("b", nil)
			},
			expected: "",
		},
		{
			name: "preserves insertion order",
			build: func() *Query {
				return NewQuery().
					Set("page", 1).
					Set("ticker", "IQ").
					Set("userId", "u-42")
			},
			expected: "?page=1&ticker=IQ&userId=u-42",
		},
		{
			name: "formats booleans and floats",
			build: func() *Query {
				return NewQuery().
					Set("extendedStats", true).
					Set("threshold", 0.5)
			},
			expected: "?extendedStats=true&threshold=0.5",
		},
		{
			name: "url escapes values",
			build: func() *Query {
				return NewQuery().Set("ticker", "A&B C")
			},
			expected: "?ticker=A%26B+C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Encode(); got != tt.expected {
				t.Errorf("Encode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestQuery_NilEncode(t *testing.T) {
	var q *Query
	if got := q.Encode(); got != "" {
		t.Errorf("nil query Encode() = %q, want empty", got)
	}
}
