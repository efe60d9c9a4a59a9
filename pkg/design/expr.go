package design

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vito/vast/pkg/subset"
)

var (
	sizedLit   = regexp.MustCompile(`^([0-9]+)'([dDbBhH])([0-9a-fA-FxXzZ_]+)$`)
	decimalLit = regexp.MustCompile(`^-?[0-9]+$`)
	identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)
	radixes    = map[byte]subset.Radix{'d': subset.Dec, 'b': subset.Bin, 'h': subset.Hex}
	digitSets  = map[subset.Radix]string{
		subset.Dec: "0123456789_",
		subset.Bin: "01xXzZ_",
		subset.Hex: "0123456789abcdefABCDEFxXzZ_",
	}
)

// ParseExpr parses the expression forms a description may use:
//
//	8'hff       sized literal
//	42          decimal integer
//	"text"      string
//	a, u0.out   reference or hierarchical path
func ParseExpr(s string) (subset.Expr, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, errors.New("empty expression")
	case strings.HasPrefix(s, `"`):
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, errors.Errorf("invalid string %s", s)
		}
		return subset.NewStr(v), nil
	case sizedLit.MatchString(s):
		return parseSized(s)
	case decimalLit.MatchString(s):
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "integer %s", s)
		}
		return subset.NewInt(int32(v)), nil
	}

	names := strings.Split(s, ".")
	for _, name := range names {
		if !identifier.MatchString(name) {
			return nil, errors.Errorf("invalid expression %q", s)
		}
	}
	if len(names) == 1 {
		return subset.NewRef(s), nil
	}
	return subset.NewInstancePath(names...), nil
}

func parseSized(s string) (subset.Expr, error) {
	m := sizedLit.FindStringSubmatch(s)
	width, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "literal %s", s)
	}
	if err := subset.CheckWidth(width); err != nil {
		return nil, errors.Wrapf(err, "literal %s", s)
	}
	radix := radixes[strings.ToLower(m[2])[0]]
	for _, c := range m[3] {
		if !strings.ContainsRune(digitSets[radix], c) {
			return nil, errors.Errorf("literal %s: invalid %s digit %q", s, radix, c)
		}
	}
	return subset.NewULit(uint32(width), radix, m[3]), nil
}
