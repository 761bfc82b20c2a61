package cache

import "testing"

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params map[string]any
		want   string
	}{
		{"empty params", "/x", map[string]any{}, "/x?"},
		{"nil params", "/x", nil, "/x?"},
		{
			"sorted by key",
			"/api/weather/current",
			map[string]any{"lon": 126.978, "lat": 37.5665, "units": "metric"},
			"/api/weather/current?lat=37.5665&lon=126.978&units=metric",
		},
		{
			"mixed scalars",
			"/p",
			map[string]any{"hours": 24, "b": true, "a": "x"},
			"/p?a=x&b=true&hours=24",
		},
		{
			"no escaping",
			"/p",
			map[string]any{"q": "a b&c=d"},
			"/p?q=a b&c=d",
		},
		{
			"code point order",
			"/p",
			map[string]any{"b": 1, "B": 2, "a": 3},
			"/p?B=2&a=3&b=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildKey(tt.path, tt.params); got != tt.want {
				t.Errorf("BuildKey(%q, %v) = %q, want %q", tt.path, tt.params, got, tt.want)
			}
		})
	}
}

func TestBuildKey_InsertionOrderIrrelevant(t *testing.T) {
	p1 := map[string]any{}
	p1["units"] = "metric"
	p1["lat"] = 37.5665
	p1["lon"] = 126.978

	p2 := map[string]any{}
	p2["lon"] = 126.978
	p2["units"] = "metric"
	p2["lat"] = 37.5665

	for i := 0; i < 20; i++ {
		if BuildKey("/x", p1) != BuildKey("/x", p2) {
			t.Fatalf("keys differ for identical params")
		}
	}
}

func TestBuildKey_DifferentValuesDiffer(t *testing.T) {
	base := BuildKey("/x", map[string]any{"lat": "37.5665", "lon": "126.9780"})

	tests := []map[string]any{
		{"lat": "37.5665", "lon": "126.978"},
		{"lat": "37.5666", "lon": "126.9780"},
		{"lat": "37.5665", "lon": "126.9780", "units": "metric"},
	}
	for _, p := range tests {
		if got := BuildKey("/x", p); got == base {
			t.Errorf("BuildKey(%v) = %q, should differ from %q", p, got, base)
		}
	}
}
