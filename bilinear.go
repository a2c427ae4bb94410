package gamath

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// BilinearForm maps a pair of vector symbols to a scalar, if the pairing
// is known. Unknown pairs are deferred: the inner-product pass leaves
// them symbolic.
type BilinearForm func(a, b string) (float64, bool)

// ConformalMetric is the bilinear form of the conformal 5-basis
// {e1, e2, e3, no, ni}: the Euclidean basis is orthonormal, no and ni
// are null vectors with no·ni = ni·no = −1, and the Euclidean basis is
// orthogonal to both null vectors. Any symbol starting with 'e' paired
// with no or ni also yields 0. Any other symbol pair is unknown.
func ConformalMetric(a, b string) (float64, bool) {
	if v, ok := conformalPairs[a+"."+b]; ok {
		return v, true
	}
	if (a == "no" || a == "ni") && len(b) > 0 && b[0] == 'e' {
		return 0.0, true
	}
	if (b == "no" || b == "ni") && len(a) > 0 && a[0] == 'e' {
		return 0.0, true
	}
	return 0, false
}

var conformalPairs = map[string]float64{
	"e1.e1": 1.0,
	"e1.e2": 0.0,
	"e1.e3": 0.0,
	"e1.no": 0.0,
	"e1.ni": 0.0,

	"e2.e1": 0.0,
	"e2.e2": 1.0,
	"e2.e3": 0.0,
	"e2.no": 0.0,
	"e2.ni": 0.0,

	"e3.e1": 0.0,
	"e3.e2": 0.0,
	"e3.e3": 1.0,
	"e3.no": 0.0,
	"e3.ni": 0.0,

	"no.e1": 0.0,
	"no.e2": 0.0,
	"no.e3": 0.0,
	"no.no": 0.0,
	"no.ni": -1.0,

	"ni.e1": 0.0,
	"ni.e2": 0.0,
	"ni.e3": 0.0,
	"ni.no": -1.0,
	"ni.ni": 0.0,
}
