package engine

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Resolve matches rules against a live device snapshot.
//
// Output order is rule declaration order, then device enumeration order within
// a substring rule. Each rule's FailOk is copied onto every device it yields.
func Resolve(rules []DeviceRule, live []LiveInputDevice) ([]ResolvedDevice, error) {
	out := make([]ResolvedDevice, 0, len(rules))
	for _, r := range rules {
		switch r.Mode {
		case MatchExact:
			d, ok := findExact(live, r.Pattern)
			if !ok {
				return nil, &ResolutionError{
					Kind:       ErrExactNameNotFound,
					Pattern:    r.Pattern,
					Suggestion: closestName(live, r.Pattern),
				}
			}
			out = append(out, ResolvedDevice{Name: d.Name, ID: d.ID, FailOk: r.FailOk})
		case MatchSubstring:
			n := len(out)
			for _, d := range live {
				if strings.Contains(d.Name, r.Pattern) {
					out = append(out, ResolvedDevice{Name: d.Name, ID: d.ID, FailOk: r.FailOk})
				}
			}
			if len(out) == n {
				return nil, &ResolutionError{Kind: ErrSubstringNoMatch, Pattern: r.Pattern}
			}
		default:
			return nil, fmt.Errorf("rule %q: unsupported match mode %s", r.Pattern, r.Mode)
		}
	}
	return out, nil
}

// first match wins; exact names are assumed unique
func findExact(live []LiveInputDevice, name string) (LiveInputDevice, bool) {
	for _, d := range live {
		if d.Name == name {
			return d, true
		}
	}
	return LiveInputDevice{}, false
}

// closestName returns the live device name nearest to name, or "" when nothing
// is close enough to be a plausible typo.
func closestName(live []LiveInputDevice, name string) string {
	best, bestDist := "", len(name)/3+1
	for _, d := range live {
		if dist := levenshtein.ComputeDistance(name, d.Name); dist <= bestDist {
			if dist == bestDist && best != "" {
				continue
			}
			best, bestDist = d.Name, dist
		}
	}
	return best
}
