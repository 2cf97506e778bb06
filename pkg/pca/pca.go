package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/TFMV/SentimentSuite/internal/features"
)

// PCA projects mean-centered data onto its leading principal
// components via thin SVD. A component count of zero keeps every
// component the factorization yields.
type PCA struct {
	NumComponents int
	svd           *mat.SVD
	means         []float64
}

// NewPCA creates a new PCA instance with the specified number of components.
func NewPCA(numComponents int) *PCA {
	return &PCA{NumComponents: numComponents}
}

// FitTransform fits the PCA model to the data and transforms it.
func (pca *PCA) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	if err := pca.Fit(X); err != nil {
		return nil, err
	}
	return pca.Transform(X)
}

// Fit learns the column means and factorizes the centered data.
func (pca *PCA) Fit(X *mat.Dense) error {
	if pca.NumComponents < 0 {
		return fmt.Errorf("number of components can't be less than zero")
	}

	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("cannot fit on a %dx%d matrix", rows, cols)
	}

	pca.means = make([]float64, cols)
	for j := 0; j < cols; j++ {
		pca.means[j] = mat.Sum(X.ColView(j)) / float64(rows)
	}

	pca.svd = &mat.SVD{}
	if ok := pca.svd.Factorize(centered(X, pca.means), mat.SVDThin); !ok {
		pca.svd = nil
		return fmt.Errorf("unable to factorize %dx%d matrix", rows, cols)
	}
	return nil
}

// Transform centers the data with the fitted means and projects it
// onto the principal axes.
func (pca *PCA) Transform(X *mat.Dense) (*mat.Dense, error) {
	if pca.svd == nil {
		return nil, fmt.Errorf("pca model is not fitted")
	}
	numSamples, numFeatures := X.Dims()
	if numFeatures != len(pca.means) {
		return nil, fmt.Errorf("got %d features, fitted on %d", numFeatures, len(pca.means))
	}

	var v mat.Dense
	pca.svd.VTo(&v)

	var projected mat.Dense
	projected.Mul(centered(X, pca.means), &v)

	_, available := projected.Dims()
	if pca.NumComponents == 0 || pca.NumComponents >= available {
		return &projected, nil
	}
	result := mat.NewDense(numSamples, pca.NumComponents, nil)
	result.Copy(&projected)
	return result, nil
}

// Project densifies a sparse feature matrix and keeps its leading
// principal components, clamped to the number of terms.
func Project(m *features.Matrix, components int) (*mat.Dense, error) {
	if m == nil || len(m.DocIDs) == 0 {
		return nil, fmt.Errorf("cannot project an empty matrix")
	}
	if components < 0 {
		return nil, fmt.Errorf("components must be non-negative, got %d", components)
	}
	if components > len(m.Terms) {
		components = len(m.Terms)
	}
	projected, err := NewPCA(components).FitTransform(m.X.ToDense())
	if err != nil {
		return nil, fmt.Errorf("failed to project features: %v", err)
	}
	return projected, nil
}

// centered returns a copy of X with the column means subtracted.
func centered(X *mat.Dense, means []float64) *mat.Dense {
	rows, cols := X.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, X.At(i, j)-means[j])
		}
	}
	return out
}
