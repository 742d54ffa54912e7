// Package poly reads polynomials in x with complex coefficients, divides them
// by (x - r) with Horner's scheme and renders the results.
//
// Coefficient vectors are ordered from the highest degree down and always
// hold maxDegree+1 entries; missing degrees are explicit zeros.
package poly
