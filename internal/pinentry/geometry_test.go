package pinentry

import "testing"

func TestGeometry_Measure(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		width    Constraint
		height   Constraint
		wantSize Size
		wantCell int
	}{
		{
			name:     "exact width, open height",
			capacity: 6,
			width:    Exact(120),
			height:   AtMost(999),
			wantSize: Size{Width: 120, Height: 20},
			wantCell: 20,
		},
		{
			name:     "open width, exact height",
			capacity: 4,
			width:    AtMost(500),
			height:   Exact(30),
			wantSize: Size{Width: 120, Height: 30},
			wantCell: 30,
		},
		{
			name:     "open width clamped to proposal",
			capacity: 6,
			width:    AtMost(100),
			height:   Exact(30),
			wantSize: Size{Width: 100, Height: 30},
			wantCell: 30,
		},
		{
			name:     "both open uses default cell",
			capacity: 6,
			width:    AtMost(1000),
			height:   AtMost(1000),
			wantSize: Size{Width: 120, Height: 20},
			wantCell: 20,
		},
		{
			name:     "both open clamped",
			capacity: 6,
			width:    AtMost(50),
			height:   AtMost(10),
			wantSize: Size{Width: 50, Height: 10},
			wantCell: 20,
		},
		{
			name:     "both exact kept as given",
			capacity: 6,
			width:    Exact(300),
			height:   Exact(40),
			wantSize: Size{Width: 300, Height: 40},
			wantCell: 20,
		},
		{
			name:     "zero width propagates",
			capacity: 6,
			width:    Exact(0),
			height:   AtMost(100),
			wantSize: Size{Width: 0, Height: 0},
			wantCell: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(1.0)
			got := g.Measure(tt.capacity, tt.width, tt.height)
			if got != tt.wantSize {
				t.Errorf("Measure() = %+v, want %+v", got, tt.wantSize)
			}
			if g.CellSize != tt.wantCell {
				t.Errorf("CellSize = %d, want %d", g.CellSize, tt.wantCell)
			}
		})
	}
}

func TestGeometry_DensityScaling(t *testing.T) {
	g := NewGeometry(2.0)

	if g.DefaultCellSize != 40 {
		t.Errorf("DefaultCellSize = %d, want 40", g.DefaultCellSize)
	}
	if g.CornerRadius != 10 {
		t.Errorf("CornerRadius = %v, want 10", g.CornerRadius)
	}

	size := g.Measure(3, AtMost(1000), AtMost(1000))
	if size != (Size{Width: 120, Height: 40}) {
		t.Errorf("Measure() = %+v, want 120x40", size)
	}
}

func TestGeometry_Settle(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		w, h     int
	}{
		{"even split", 6, 120, 20},
		{"uneven split", 7, 100, 14},
		{"single cell", 1, 33, 33},
		{"zero size", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(1.0)
			g.Settle(tt.capacity, tt.w, tt.h)

			if g.CellSize*tt.capacity > tt.w {
				t.Errorf("CellSize*capacity = %d exceeds width %d", g.CellSize*tt.capacity, tt.w)
			}
			if g.CellSize != tt.w/tt.capacity {
				t.Errorf("CellSize = %d, want %d", g.CellSize, tt.w/tt.capacity)
			}
			if got := g.Bounds.Width(); got != float64(tt.w-2) {
				t.Errorf("Bounds.Width() = %v, want %v", got, tt.w-2)
			}
			if got := g.Bounds.Height(); got != float64(tt.h-2) {
				t.Errorf("Bounds.Height() = %v, want %v", got, tt.h-2)
			}
			if g.Settled != (Size{Width: tt.w, Height: tt.h}) {
				t.Errorf("Settled = %+v", g.Settled)
			}
		})
	}
}

func TestConstraintString(t *testing.T) {
	if got := Exact(5).String(); got != "exact(5)" {
		t.Errorf("Exact(5).String() = %q", got)
	}
	if got := AtMost(7).String(); got != "at_most(7)" {
		t.Errorf("AtMost(7).String() = %q", got)
	}
}
