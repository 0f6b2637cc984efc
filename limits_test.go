package gqlpager

import "testing"

func Test_IsNormalizedPageSizeMax(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		max      int
		want     int
		isStrict bool
	}{
		{"no max keeps size", 1000, NoMaxPageSize, 1000, true},
		{"within max unchanged", 7, 50, 7, true},
		{"equal max unchanged", 50, 50, 50, true},
		{"above max clamped", 51, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedPageSizeMax(tt.size, tt.max)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_NormalizePageSizeMax(t *testing.T) {
	tests := []struct {
		name string
		size int
		max  int
		want int
	}{
		{"clamp to max", 1000, 77, 77},
		{"keep when ok", 12, 77, 12},
		{"keep without max", 12, NoMaxPageSize, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePageSizeMax(tt.size, tt.max); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}
