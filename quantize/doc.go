// Package quantize implements the log-normal CDF quantization codec used to
// compress per-cell expression magnitudes.
//
// Given the full row of expression values for a gene and the subset of
// positions that actually express it, Quantize fits a normal distribution
// to the expressing values and encodes every value in the row (including
// the zeros) as a fixed-width quantile index under that distribution's CDF.
// The fit is computed over expressing positions only, but the resulting
// codes cover the full row.
package quantize
