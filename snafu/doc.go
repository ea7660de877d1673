// Package snafu converts between integers and SNAFU numbers: balanced
// base five written with the digits = - 0 1 2, standing for -2 to 2.
//
//	1=-0-2  →  1747
//	2=-1=0  →  4890
//
// The sum of the input numbers is part 1; part 2 has no puzzle of its own
// and is always "0".
package snafu
