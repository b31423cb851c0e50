package api

import "strings"

// Placement tells the tooltip engine on which side of its anchor a step
// should appear. A base side may carry a -start or -end alignment suffix.
type Placement string

const (
	PlacementAuto   Placement = "auto"
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
	PlacementLeft   Placement = "left"
	PlacementRight  Placement = "right"
)

// DefaultPlacement is used for attached steps whose descriptor carries no
// placement.
const DefaultPlacement = PlacementRight

// ParsePlacement validates a placement token, accepting the base sides and
// their -start / -end variants.
func ParsePlacement(s string) (Placement, bool) {
	base := s
	if i := strings.IndexByte(s, '-'); i >= 0 {
		suffix := s[i+1:]
		if suffix != "start" && suffix != "end" {
			return "", false
		}
		base = s[:i]
	}
	switch Placement(base) {
	case PlacementAuto, PlacementTop, PlacementBottom, PlacementLeft, PlacementRight:
		return Placement(s), true
	}
	return "", false
}
