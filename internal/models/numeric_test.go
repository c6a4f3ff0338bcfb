package models

import (
	"encoding/json"
	"testing"
)

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		nan  bool
	}{
		{in: "12345", want: 12345},
		{in: "0012345", want: 12345},
		{in: "0x3039", want: 12345},
		{in: "0X3039", want: 12345},
		{in: "0", want: 0},
		{in: "", nan: true},
		{in: "not-a-number", nan: true},
		{in: "0xzz", nan: true},
	}

	for _, tc := range cases {
		got := ParseNumeric(tc.in)
		if tc.nan {
			if !got.IsNaN() {
				t.Fatalf("%q: expected NaN, got %v", tc.in, got)
			}
			continue
		}
		if float64(got) != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestNumericMarshalsNaNAsNull(t *testing.T) {
	entry := LogEntry{
		BlockNumber: ParseNumeric("42"),
		Timestamp:   ParseNumeric("garbage"),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["blockNumber"] != float64(42) {
		t.Fatalf("unexpected blockNumber: %v", decoded["blockNumber"])
	}
	if decoded["timestamp"] != nil {
		t.Fatalf("expected null timestamp, got %v", decoded["timestamp"])
	}
}
