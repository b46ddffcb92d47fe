package aa

import "testing"

func TestFollowLine(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		row, col int
		dir      Direction
		steps    int
		want     int
	}{
		{"bend north", []string{".....*", "*****."}, 1, 0, East, 8, 5},
		{"bend south", []string{"*****.", ".....*"}, 0, 0, East, 8, -5},
		{"bend west", []string{"*.....", ".*****"}, 1, 5, West, 8, 5},
		{"too short", []string{".....*", "*****."}, 1, 0, East, 4, 0},
		{"abrupt end", []string{"....", "***.", "...."}, 1, 0, East, 8, 0},
		{"straight past limit", []string{"........", "********"}, 1, 0, East, 3, 0},
		{"side turns", []string{".....*", "******"}, 1, 0, East, 8, 5},
		{"junction", []string{".....*", "******", ".....*"}, 1, 0, East, 8, 0},
		{"tee", []string{".....**", "*******"}, 1, 0, East, 8, 0},
		{"inside region", []string{"***", "***", "***"}, 1, 1, East, 8, 0},
		{"off raster", []string{"**"}, 0, 2, West, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, tt.rows...)
			if got := FollowLine(r, tt.row, tt.col, tt.dir, tt.steps); got != tt.want {
				t.Errorf("FollowLine(%d, %d, %v) = %d, want %d", tt.row, tt.col, tt.dir, got, tt.want)
			}
		})
	}
}

// TestFollowLineRotated tests that rotating the raster rotates the walk:
// East becomes South and the north side becomes the east side.
func TestFollowLineRotated(t *testing.T) {
	r := mustRaster(t, ".....*", "*****.").Rotate90()
	if got := FollowLine(r, 0, 0, South, 8); got != 5 {
		t.Errorf("FollowLine(South) = %d, want 5", got)
	}
	flipped := mustRaster(t, "*****.", ".....*").Rotate90()
	if got := FollowLine(flipped, 0, 1, South, 8); got != -5 {
		t.Errorf("FollowLine(South) = %d, want -5", got)
	}
}

func TestDirectionString(t *testing.T) {
	if North.String() != "North" || West.String() != "West" || Direction(9).String() != "Direction(9)" {
		t.Error("unexpected Direction names")
	}
}
