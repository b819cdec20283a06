package labels

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ridge is the relative amount added to the covariance diagonal when it is singular.
const ridge = 1e-9

// Gaussian is a bivariate normal distribution used to measure Mahalanobis distances and unnormalized densities.
type Gaussian struct {
	Mean Point
	chol mat.Cholesky
}

// NewGaussian returns a Gaussian with mean mu and covariance matrix [[sxx sxy] [sxy syy]]. Singular covariances are regularized, and a covariance without any spread falls back to the identity matrix.
func NewGaussian(mu Point, sxx, sxy, syy float64) *Gaussian {
	g := &Gaussian{Mean: mu}
	cov := mat.NewSymDense(2, []float64{sxx, sxy, sxy, syy})
	if g.chol.Factorize(cov) {
		return g
	}

	eps := ridge * math.Max(math.Abs(sxx)+math.Abs(syy), 1.0)
	cov.SetSym(0, 0, sxx+eps)
	cov.SetSym(1, 1, syy+eps)
	if (sxx != 0.0 || syy != 0.0) && g.chol.Factorize(cov) {
		return g
	}
	g.chol.Factorize(mat.NewSymDense(2, []float64{1.0, 0.0, 0.0, 1.0}))
	return g
}

// NewIsotropicGaussian returns a Gaussian with mean mu and covariance variance times the identity matrix.
func NewIsotropicGaussian(mu Point, variance float64) *Gaussian {
	return NewGaussian(mu, variance, 0.0, variance)
}

// FitGaussian returns the Gaussian with the sample mean and sample covariance (normalized by N-1) of the points. With fewer than two points the covariance is the identity matrix.
func FitGaussian(pts []Point) *Gaussian {
	if len(pts) == 0 {
		return NewIsotropicGaussian(Point{}, 1.0)
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	data := make([]float64, 0, 2*len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
		data = append(data, p.X, p.Y)
	}
	mu := Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
	if len(pts) < 2 {
		return NewIsotropicGaussian(mu, 1.0)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, mat.NewDense(len(pts), 2, data), nil)
	return NewGaussian(mu, cov.At(0, 0), cov.At(0, 1), cov.At(1, 1))
}

// SqDist returns the squared Mahalanobis distance of p to the mean.
func (g *Gaussian) SqDist(p Point) float64 {
	x := mat.NewVecDense(2, []float64{p.X, p.Y})
	mu := mat.NewVecDense(2, []float64{g.Mean.X, g.Mean.Y})
	d := stat.Mahalanobis(x, mu, &g.chol)
	return d * d
}

// Density returns the unnormalized probability density at p, which is one at the mean.
func (g *Gaussian) Density(p Point) float64 {
	return math.Exp(-0.5 * g.SqDist(p))
}
