package netpart

import (
	"regexp"
	"strconv"
)

// ratioPattern matches "<uint>:<uint>", e.g. "5:2".
var ratioPattern = regexp.MustCompile(`^([0-9]+):([0-9]+)$`)

// Ratio is the private:public address-space weighting. The pool with the
// larger weight receives the larger per-zone blocks. Both weights are > 0.
type Ratio struct {
	Private int
	Public  int
}

// ParseRatio parses a textual ratio such as "5:2" into its two weights.
func ParseRatio(s string) (Ratio, error) {
	m := ratioPattern.FindStringSubmatch(s)
	if m == nil {
		return Ratio{}, validationf("invalid ratio %q: expected \"<uint>:<uint>\", e.g. \"5:2\"", s)
	}

	private, err := strconv.Atoi(m[1])
	if err != nil {
		return Ratio{}, validationf("invalid ratio %q: %v", s, err)
	}
	public, err := strconv.Atoi(m[2])
	if err != nil {
		return Ratio{}, validationf("invalid ratio %q: %v", s, err)
	}

	r := Ratio{Private: private, Public: public}
	if err := r.validate(); err != nil {
		return Ratio{}, err
	}
	return r, nil
}

func (r Ratio) validate() error {
	if r.Private <= 0 || r.Public <= 0 {
		return validationf("invalid ratio %d:%d: both weights must be positive", r.Private, r.Public)
	}
	return nil
}
