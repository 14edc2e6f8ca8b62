package tfdrawer

import "testing"

func TestBuildTableRamp(t *testing.T) {
	table := BuildTable([]Point{{0, 0}, {128, 255}, {255, 255}})

	if got := table[0]; got != 0 {
		t.Errorf("table[0] = %d, want 0", got)
	}
	if got := table[128]; got != 255 {
		t.Errorf("table[128] = %d, want 255", got)
	}
	if got := table[192]; got != 255 {
		t.Errorf("table[192] = %d, want 255 (flat segment)", got)
	}
	for i := 0; i <= 128; i++ {
		want := uint8(255 * i / 128)
		if table[i] != want {
			t.Fatalf("table[%d] = %d, want %d (linear ramp)", i, table[i], want)
		}
	}
}

func TestBuildTableEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		points []Point
		first  uint8
		last   uint8
	}{
		{name: "boundaries only", points: []Point{{0, 0}, {255, 255}}, first: 0, last: 255},
		{name: "no explicit boundaries", points: []Point{{64, 200}}, first: 0, last: 255},
		{name: "empty", points: nil, first: 0, last: 255},
		{name: "several interior", points: []Point{{10, 30}, {100, 200}, {200, 100}}, first: 0, last: 255},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			table := BuildTable(tc.points)
			if table[0] != tc.first {
				t.Errorf("table[0] = %d, want %d", table[0], tc.first)
			}
			if table[255] != tc.last {
				t.Errorf("table[255] = %d, want %d", table[255], tc.last)
			}
		})
	}
}

func TestBuildTableIdentity(t *testing.T) {
	table := BuildTable(nil)
	if !table.IsIdentity() {
		t.Error("boundary-only point set should build the identity table")
	}
	if table != IdentityTable() {
		t.Error("built identity differs from IdentityTable()")
	}
}

func TestBuildTableMonotonicInputMonotonicOutput(t *testing.T) {
	cases := [][]Point{
		{{30, 10}, {60, 60}, {200, 240}},
		{{1, 0}, {254, 255}},
		{{50, 50}, {100, 50}, {150, 200}},
	}
	for _, points := range cases {
		table := BuildTable(points)
		for i := 1; i < TableSize; i++ {
			if table[i] < table[i-1] {
				t.Fatalf("points %v: table[%d]=%d < table[%d]=%d", points, i, table[i], i-1, table[i-1])
			}
		}
	}
}

func TestBuildTableDegenerateSpan(t *testing.T) {
	// Duplicate interior X is tolerated; the exact column value is
	// unspecified, but the table must stay complete and in range.
	table := BuildTable([]Point{{100, 50}, {100, 200}})
	if table[0] != 0 || table[255] != 255 {
		t.Errorf("endpoints = %d, %d, want 0, 255", table[0], table[255])
	}
	// Last write wins within the duplicated column.
	if table[100] != 200 {
		t.Errorf("table[100] = %d, want 200", table[100])
	}
}
