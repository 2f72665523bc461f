package speech

import (
	"fmt"

	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/proximity"
)

// BuildMessage composes the announcement text for one depth sweep.
//
// Priority order:
//  1. Blocked center (under the forward threshold): obstacle phrase for
//     the center depth plus the lateral advice. A forward direction here
//     cannot normally happen; the phrase is emitted alone as a fallback.
//  2. A side holding the strict minimum, nearer than center and under 3m:
//     call out the side obstacle.
//  3. Center under 3m: plain distance ahead. Otherwise: "Clear".
func BuildMessage(s depth.Sample, dir proximity.Direction) string {
	if s.Center < proximity.ForwardThreshold {
		phrase := obstaclePhrase(s.Center)
		switch dir {
		case proximity.DirectionLeft:
			return phrase + ", move left"
		case proximity.DirectionRight:
			return phrase + ", move right"
		default:
			return phrase
		}
	}

	if min := s.Min(); min < proximity.MediumBelow {
		switch {
		case s.Left < s.Center && s.Left < s.Right:
			return "Object on the left at " + distancePhrase(min)
		case s.Right < s.Center && s.Right < s.Left:
			return "Object on the right at " + distancePhrase(min)
		}
	}

	if s.Center < proximity.MediumBelow {
		return distancePhrase(s.Center) + " ahead"
	}
	return "Clear"
}

// distancePhrase renders a depth for speech: whole centimeters under one
// meter (truncated, not rounded), otherwise meters to one decimal.
func distancePhrase(d float64) string {
	if d < 1.0 {
		return fmt.Sprintf("%d centimeters", int(d*100))
	}
	return fmt.Sprintf("%.1f meters", d)
}

// obstaclePhrase renders a blocked-center depth. Inside the very-close
// band the generic prefix gives way to an explicit warning.
func obstaclePhrase(d float64) string {
	if d < proximity.VeryCloseBelow {
		return "Warning, " + distancePhrase(d)
	}
	return "Obstacle at " + distancePhrase(d)
}
