// Package polyroot finds the roots of real transfer-function polynomials.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all zero, non-finite, convergence failure).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// Roots returns the roots in z of a transfer-function polynomial given in
// powers of z^-1, c[0] + c[1]*z^-1 + ... + c[n]*z^-n. Multiplying through by
// z^n makes c the descending-power coefficients of an ordinary polynomial.
// Leading zeros lower the degree. Trailing zeros contribute roots at z = 0.
// A constant polynomial has no roots.
func Roots(c []float64) ([]complex128, error) {
	start := 0
	for start < len(c) && c[start] == 0 {
		start++
	}
	if start == len(c) {
		return nil, ErrDegeneratePolynomial
	}
	c = c[start:]
	if len(c) < 2 {
		return nil, nil
	}

	coeff := make([]complex128, len(c))
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrDegeneratePolynomial
		}
		coeff[i] = complex(v, 0)
	}

	roots, err := DurandKerner(coeff)
	if err != nil {
		return nil, err
	}
	for i, r := range roots {
		// Snap numerically real roots onto the axis.
		if math.Abs(imag(r)) < ConjugateTol*math.Max(1, math.Abs(real(r))) {
			roots[i] = complex(real(r), 0)
		}
	}
	return roots, nil
}

// MaxMagnitude returns the largest |r| over roots, or 0 for none.
func MaxMagnitude(roots []complex128) float64 {
	var m float64
	for _, r := range roots {
		m = math.Max(m, cmplx.Abs(r))
	}
	return m
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0
	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
