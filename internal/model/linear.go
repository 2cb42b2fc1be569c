package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearParams is the serializable parameterization of a fitted linear
// estimator: one weight row per output, plus intercepts.
type LinearParams struct {
	Intercept []float64   `json:"intercept"`
	Coef      [][]float64 `json:"coef"` // [output][feature]
}

type linearModel struct {
	params LinearParams
}

// NewLinearEstimator builds an Estimator from fitted parameters.
func NewLinearEstimator(p LinearParams) (Estimator, error) {
	if len(p.Intercept) == 0 || len(p.Coef) != len(p.Intercept) {
		return nil, fmt.Errorf("linear params: %d intercepts, %d coefficient rows", len(p.Intercept), len(p.Coef))
	}
	width := len(p.Coef[0])
	for i, row := range p.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("linear params: coefficient row %d has width %d, want %d", i, len(row), width)
		}
	}
	return &linearModel{params: p}, nil
}

func (m *linearModel) NumOutputs() int { return len(m.params.Intercept) }

func (m *linearModel) Predict(features []float64) ([]float64, error) {
	if len(features) != len(m.params.Coef[0]) {
		return nil, fmt.Errorf("feature vector has %d elements, model expects %d", len(features), len(m.params.Coef[0]))
	}
	out := make([]float64, len(m.params.Intercept))
	for k, row := range m.params.Coef {
		y := m.params.Intercept[k]
		for j, w := range row {
			y += w * features[j]
		}
		out[k] = y
	}
	return out, nil
}

// FitRidge fits a multi-output ridge regression on X (n x p) against
// Y (n x k): W = (Xa'Xa + lambda*I)^-1 Xa'Y with a bias column prepended
// to X. A small lambda keeps the normal equations well conditioned.
func FitRidge(X, Y *mat.Dense, lambda float64) (Estimator, error) {
	n, p := X.Dims()
	yn, k := Y.Dims()
	if n == 0 || yn != n {
		return nil, fmt.Errorf("fit: X has %d rows, Y has %d", n, yn)
	}

	xa := mat.NewDense(n, p+1, nil)
	for i := 0; i < n; i++ {
		xa.Set(i, 0, 1)
		for j := 0; j < p; j++ {
			xa.Set(i, j+1, X.At(i, j))
		}
	}

	var gram mat.Dense
	gram.Mul(xa.T(), xa)
	for i := 0; i < p+1; i++ {
		gram.Set(i, i, gram.At(i, i)+lambda)
	}

	var xty mat.Dense
	xty.Mul(xa.T(), Y)

	var w mat.Dense
	if err := w.Solve(&gram, &xty); err != nil {
		return nil, fmt.Errorf("fit: solving normal equations: %w", err)
	}

	params := LinearParams{
		Intercept: make([]float64, k),
		Coef:      make([][]float64, k),
	}
	for out := 0; out < k; out++ {
		params.Intercept[out] = w.At(0, out)
		params.Coef[out] = make([]float64, p)
		for j := 0; j < p; j++ {
			params.Coef[out][j] = w.At(j+1, out)
		}
	}
	return NewLinearEstimator(params)
}
