package engine

// Orientation is one of the four display rotation states.
type Orientation string

const (
	Normal   Orientation = "normal"
	Right    Orientation = "right"
	Inverted Orientation = "inverted"
	Left     Orientation = "left"
)

// clockwise order
var cycle = [...]Orientation{Normal, Right, Inverted, Left}

// ParseOrientation validates a token reported by the display subsystem.
func ParseOrientation(token string) (Orientation, error) {
	for _, o := range cycle {
		if string(o) == token {
			return o, nil
		}
	}
	return "", &OrientationError{Token: token}
}

// Next returns the orientation one clockwise step after o.
func Next(o Orientation) (Orientation, error) {
	for i, c := range cycle {
		if c == o {
			return cycle[(i+1)%len(cycle)], nil
		}
	}
	return "", &OrientationError{Token: string(o)}
}

func (o Orientation) String() string { return string(o) }
