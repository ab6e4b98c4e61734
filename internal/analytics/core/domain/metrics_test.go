package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMetricType(t *testing.T) {
	cases := []struct {
		in   string
		want MetricType
	}{
		{"total_messages", MetricTotalMessages},
		{"  Total_Members ", MetricTotalMembers},
		{"LEADERBOARD", MetricLeaderboard},
		{"gc_health", MetricGCHealth},
	}

	for _, tc := range cases {
		got, err := ParseMetricType(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestParseMetricType_Unknown(t *testing.T) {
	for _, in := range []string{"", "messages", "total-messages", "bogus"} {
		if _, err := ParseMetricType(in); !errors.Is(err, ErrUnknownMetricType) {
			t.Errorf("%q: expected ErrUnknownMetricType, got %v", in, err)
		}
	}
}

func TestEncodeScalar_WrapsAsString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{int64(42), `{"value":"42"}`},
		{17, `{"value":"17"}`},
		{3.5, `{"value":"3.5"}`},
		{"7.2", `{"value":"7.2"}`},
	}

	for _, tc := range cases {
		if got := string(EncodeScalar(tc.in)); got != tc.want {
			t.Errorf("EncodeScalar(%v): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestScalarInt(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int64
	}{
		{"wrapped int", `{"value":"123"}`, 123},
		{"wrapped float truncates", `{"value":"12.9"}`, 12},
		{"bare string", `"55"`, 55},
		{"bare number", `55`, 55},
		{"garbage defaults", `{"value":"abc"}`, 7},
		{"empty defaults", ``, 7},
		{"wrong shape defaults", `[1,2]`, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScalarInt(json.RawMessage(tc.raw), 7); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestScalarFloat(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"wrapped float", `{"value":"7.25"}`, 7.25},
		{"wrapped int", `{"value":"10"}`, 10},
		{"bare number", `6.5`, 6.5},
		{"garbage defaults", `{"value":"n/a"}`, 0},
		{"empty defaults", ``, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScalarFloat(json.RawMessage(tc.raw), 0); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEncodeScalarRoundTrip(t *testing.T) {
	if got := ScalarInt(EncodeScalar(int64(981)), 0); got != 981 {
		t.Errorf("expected 981, got %d", got)
	}
	if got := ScalarFloat(EncodeScalar(8.4), 0); got != 8.4 {
		t.Errorf("expected 8.4, got %v", got)
	}
}
