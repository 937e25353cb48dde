package player

import (
	"encoding/json"
	"testing"
)

func TestAvgRatingString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{8, "8.0"},
		{33.0 / 4.0, "8.3"}, // 8, 8, 8, 9
		{29.0 / 4.0, "7.3"}, // 7, 7, 7, 8
		{17.0 / 3.0, "5.7"},
		{25.0 / 3.0, "8.3"},
		{10, "10.0"},
	}
	for _, tc := range cases {
		if got := AvgRating(tc.in).String(); got != tc.want {
			t.Fatalf("AvgRating(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAvgRatingMarshalsAsString(t *testing.T) {
	b, err := json.Marshal(struct {
		Avg AvgRating `json:"avg"`
	}{AvgRating(8.25)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"avg":"8.3"}` {
		t.Fatalf("unexpected json %s", b)
	}
}
