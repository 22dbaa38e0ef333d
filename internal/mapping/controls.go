package mapping

// Control is one of the digital controls of an XInput-style pad. The values
// are the bit flags the pad reports in its button word.
type Control uint16

const (
	ControlUp    Control = 0x0001
	ControlDown  Control = 0x0002
	ControlLeft  Control = 0x0004
	ControlRight Control = 0x0008
	ControlStart Control = 0x0010
	ControlBack  Control = 0x0020
	ControlLSB   Control = 0x0040 // left stick click
	ControlRSB   Control = 0x0080 // right stick click
	ControlLB    Control = 0x0100
	ControlRB    Control = 0x0200
	ControlA     Control = 0x1000
	ControlB     Control = 0x2000
	ControlX     Control = 0x4000
	ControlY     Control = 0x8000
)

// Controls lists every digital control, in the order the pad reports them.
var Controls = []Control{
	ControlUp, ControlDown, ControlLeft, ControlRight,
	ControlStart, ControlBack, ControlLSB, ControlRSB,
	ControlLB, ControlRB, ControlA, ControlB, ControlX, ControlY,
}

var controlNames = map[Control]string{
	ControlUp:    "UP",
	ControlDown:  "DOWN",
	ControlLeft:  "LEFT",
	ControlRight: "RIGHT",
	ControlStart: "START",
	ControlBack:  "BACK",
	ControlLSB:   "LSB",
	ControlRSB:   "RSB",
	ControlLB:    "LB",
	ControlRB:    "RB",
	ControlA:     "A",
	ControlB:     "B",
	ControlX:     "X",
	ControlY:     "Y",
}

var controlsByName = func() map[string]Control {
	m := make(map[string]Control, len(controlNames))
	for c, name := range controlNames {
		m[name] = c
	}
	return m
}()

// String returns the configuration token for c.
func (c Control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ControlByName looks up a digital control by its configuration token.
func ControlByName(name string) (Control, bool) {
	c, ok := controlsByName[name]
	return c, ok
}

// Buttons is the set of pressed digital controls in one sample.
type Buttons uint16

// Has reports whether c is pressed.
func (b Buttons) Has(c Control) bool {
	return uint16(b)&uint16(c) != 0
}

// With returns b with the given controls added.
func (b Buttons) With(cs ...Control) Buttons {
	for _, c := range cs {
		b |= Buttons(c)
	}
	return b
}

// Side identifies one of the two analog triggers.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "LT"
	case Right:
		return "RT"
	}
	return "UNKNOWN"
}

// SideByName looks up a trigger by its configuration token.
func SideByName(name string) (Side, bool) {
	switch name {
	case "LT":
		return Left, true
	case "RT":
		return Right, true
	}
	return 0, false
}
