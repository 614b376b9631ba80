package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained from a data matrix and targets.
type Fitter interface {
	// Fit trains the model. X is row-major with one attribute per column;
	// y is an n×1 matrix of targets.
	Fit(X, y mat.Matrix) error
}

// Predictor is a trained model that can score new rows.
type Predictor interface {
	// Predict returns an n×1 matrix of predictions for the rows of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor combines fitting, prediction and goodness-of-fit scoring.
type Regressor interface {
	Fitter
	Predictor
	// Score returns the coefficient of determination R² on (X, y).
	Score(X, y mat.Matrix) (float64, error)
}
