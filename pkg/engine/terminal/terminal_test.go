package terminal

import "testing"

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name               string
		width, height      int
		wantRows, wantCols int
	}{
		{"standard terminal", 80, 24, 9, 77},
		{"large terminal", 200, 60, 45, 197},
		{"tiny terminal uses minimums", 10, 10, 7, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := FitViewport(tt.width, tt.height, 14, 7, 15)
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("FitViewport(%d, %d) = %d, %d, want %d, %d",
					tt.width, tt.height, rows, cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}
