package pca

import (
	"math"
	"testing"

	"github.com/james-bowman/sparse"

	"github.com/TFMV/SentimentSuite/internal/features"
)

func lineMatrix() *features.Matrix {
	// Three collinear points: all variance sits on one axis.
	dok := sparse.NewDOK(3, 2)
	dok.Set(1, 0, 1)
	dok.Set(1, 1, 1)
	dok.Set(2, 0, 2)
	dok.Set(2, 1, 2)
	return &features.Matrix{
		X:      dok.ToCSR(),
		Terms:  []string{"alpha", "beta"},
		DocIDs: []int{1, 2, 3},
		DF:     []int{2, 2},
	}
}

func TestProjectCollinearPoints(t *testing.T) {
	projected, err := Project(lineMatrix(), 1)
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	rows, cols := projected.Dims()
	if rows != 3 || cols != 1 {
		t.Fatalf("Project() dims = %dx%d, want 3x1", rows, cols)
	}

	// The component direction's sign is arbitrary, so compare
	// magnitudes and symmetry around the center point.
	root2 := math.Sqrt(2)
	if v := math.Abs(projected.At(0, 0)); math.Abs(v-root2) > 1e-9 {
		t.Errorf("first projection magnitude = %v, want %v", v, root2)
	}
	if v := math.Abs(projected.At(1, 0)); v > 1e-9 {
		t.Errorf("center projection = %v, want 0", v)
	}
	if v := projected.At(0, 0) + projected.At(2, 0); math.Abs(v) > 1e-9 {
		t.Errorf("end projections = %v and %v, want symmetric", projected.At(0, 0), projected.At(2, 0))
	}
}

func TestProjectClampsComponents(t *testing.T) {
	projected, err := Project(lineMatrix(), 10)
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	if _, cols := projected.Dims(); cols != 2 {
		t.Errorf("Project(10) cols = %d, want clamp to 2 terms", cols)
	}

	projected, err = Project(lineMatrix(), 0)
	if err != nil {
		t.Fatalf("Project(0) error: %v", err)
	}
	if _, cols := projected.Dims(); cols != 2 {
		t.Errorf("Project(0) cols = %d, want every component", cols)
	}
}

func TestProjectErrors(t *testing.T) {
	if _, err := Project(&features.Matrix{Terms: []string{"alpha"}}, 1); err == nil {
		t.Error("Project() on empty matrix expected error")
	}
	if _, err := Project(lineMatrix(), -1); err == nil {
		t.Error("Project(-1) expected error")
	}
}

func TestTransformBeforeFit(t *testing.T) {
	p := NewPCA(1)
	if _, err := p.Transform(lineMatrix().X.ToDense()); err == nil {
		t.Error("Transform() before Fit() expected error")
	}
}
