package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"speed":     "260",
		"threshold": "0.5",
		"seed":      "42",
		"pattern":   "pulsar",
	})
	if c.SpeedMS != 250 {
		t.Fatalf("speed = %d, want 250", c.SpeedMS)
	}
	if c.Threshold != 0.5 || c.Seed != 42 || c.Pattern != "pulsar" {
		t.Fatalf("unexpected config %+v", c)
	}

	bad := FromMap(map[string]string{"threshold": "2", "pattern": "nope", "speed": "x"})
	if bad != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestClampSpeed(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 50}, {50, 50}, {74, 50}, {75, 100}, {100, 100}, {999, 1000}, {5000, 1000},
	}
	for _, tc := range cases {
		if got := ClampSpeed(tc.in); got != tc.want {
			t.Fatalf("ClampSpeed(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
