// Package ratio maps pixel dimensions to low-denominator aspect ratios.
//
// Approximate walks the Stern-Brocot tree (equivalently, the Farey sequence of
// order limiter) towards width/height using exact integer arithmetic and
// stops once the next mediant's denominator would exceed the limiter. The
// closer of the two bracketing fractions wins; on a tie the smaller
// denominator wins, and on equal denominators the lower bound wins.
//
// Labels render as "{num}x{den}" and keep the input orientation, so portrait
// media lands in folders such as "9x16". The Common table names well-known
// ratios for display only; the search never consults it.
package ratio
