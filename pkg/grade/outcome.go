package grade

// Outcome is the result of calling a candidate function: either a value or
// the NotImplemented marker. The zero Outcome is NotImplemented.
type Outcome struct {
	value       float64
	implemented bool
}

// Implemented wraps a computed value.
func Implemented(v float64) Outcome {
	return Outcome{value: v, implemented: true}
}

// NotImplemented reports that the candidate has no implementation yet.
func NotImplemented() Outcome {
	return Outcome{}
}

// Value returns the wrapped value and whether the candidate was implemented.
func (o Outcome) Value() (float64, bool) {
	return o.value, o.implemented
}

// IsImplemented reports whether o carries a value.
func (o Outcome) IsImplemented() bool {
	return o.implemented
}

// ReferenceFunc computes the expected value for an argument tuple.
type ReferenceFunc func(args ...float64) float64

// CandidateFunc is the implementation under test.
type CandidateFunc func(args ...float64) Outcome

// Reference2 adapts a two-argument function. The returned ReferenceFunc
// panics when called with fewer than two arguments.
func Reference2(f func(a, b float64) float64) ReferenceFunc {
	return func(args ...float64) float64 {
		return f(args[0], args[1])
	}
}

// Reference3 adapts a three-argument function.
func Reference3(f func(a, b, c float64) float64) ReferenceFunc {
	return func(args ...float64) float64 {
		return f(args[0], args[1], args[2])
	}
}

// Candidate2 adapts a two-argument candidate.
func Candidate2(f func(a, b float64) Outcome) CandidateFunc {
	return func(args ...float64) Outcome {
		return f(args[0], args[1])
	}
}

// Candidate3 adapts a three-argument candidate.
func Candidate3(f func(a, b, c float64) Outcome) CandidateFunc {
	return func(args ...float64) Outcome {
		return f(args[0], args[1], args[2])
	}
}

// FromReference turns a reference function into a candidate that always
// answers. Useful for checking a suite against itself.
func FromReference(ref ReferenceFunc) CandidateFunc {
	return func(args ...float64) Outcome {
		return Implemented(ref(args...))
	}
}
