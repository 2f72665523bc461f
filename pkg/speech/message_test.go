package speech

import (
	"testing"

	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/proximity"
)

func TestBuildMessage(t *testing.T) {
	cases := []struct {
		name string
		s    depth.Sample
		dir  proximity.Direction
		want string
	}{
		{
			name: "very close blocked center warns in centimeters",
			s:    depth.Sample{Left: 2.0, Center: 0.3, Right: 1.0},
			dir:  proximity.DirectionLeft,
			want: "Warning, 30 centimeters, move left",
		},
		{
			name: "blocked center outside warning band",
			s:    depth.Sample{Left: 0.5, Center: 0.8, Right: 2.0},
			dir:  proximity.DirectionRight,
			want: "Obstacle at 80 centimeters, move right",
		},
		{
			name: "blocked center with forward direction falls back to phrase alone",
			s:    depth.Sample{Left: 2.0, Center: 0.8, Right: 2.0},
			dir:  proximity.DirectionForward,
			want: "Obstacle at 80 centimeters",
		},
		{
			name: "side obstacle on the left",
			s:    depth.Sample{Left: 0.2, Center: 2.5, Right: 4.0},
			dir:  proximity.DirectionForward,
			want: "Object on the left at 20 centimeters",
		},
		{
			name: "side obstacle on the right",
			s:    depth.Sample{Left: 4.0, Center: 2.5, Right: 1.2},
			dir:  proximity.DirectionForward,
			want: "Object on the right at 1.2 meters",
		},
		{
			name: "equal sides fall through to distance ahead",
			s:    depth.Sample{Left: 1.0, Center: 2.0, Right: 1.0},
			dir:  proximity.DirectionForward,
			want: "2.0 meters ahead",
		},
		{
			name: "open space",
			s:    depth.Sample{Left: 5.0, Center: 6.0, Right: 5.0},
			dir:  proximity.DirectionForward,
			want: "Clear",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildMessage(tc.s, tc.dir); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDistancePhrase_TruncatesCentimeters(t *testing.T) {
	// Centimeters are truncated, not rounded.
	if got := distancePhrase(0.999); got != "99 centimeters" {
		t.Errorf("got %q, want %q", got, "99 centimeters")
	}
	if got := distancePhrase(1.0); got != "1.0 meters" {
		t.Errorf("got %q, want %q", got, "1.0 meters")
	}
	if got := distancePhrase(2.57); got != "2.6 meters" {
		t.Errorf("got %q, want %q", got, "2.6 meters")
	}
}
