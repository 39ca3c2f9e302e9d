// Package grade compares a learner's implementation of a function against a
// trusted reference implementation and renders the outcome as feedback text.
//
// A suite is an ordered list of labeled argument tuples. For every case the
// reference is evaluated first, then the candidate; outputs are compared with
// a relative/absolute tolerance and mismatches are collected in case order.
// A candidate that reports NotImplemented stops the run immediately.
//
// Example usage:
//
//	func MassBH(a, t float64) grade.Outcome {
//	    return grade.Implemented(4 * math.Pi * math.Pi / g * a * a * a / (t * t))
//	}
//
//	report := grade.Grade("Blackhole Mass", cases,
//	    grade.Reference2(lib.MassBH), grade.Candidate2(MassBH),
//	    grade.DefaultTolerance(), nil)
//	fmt.Println(report)
package grade
