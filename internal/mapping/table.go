package mapping

// ButtonBinding ties one digital control to a target key code.
type ButtonBinding struct {
	Control Control
	Key     int
}

// TriggerBinding ties one analog trigger to a target key code.
type TriggerBinding struct {
	Side Side
	Key  int
}

// Pair is one "<TOKEN> <KEY>" entry of a configuration file.
type Pair struct {
	Name string
	Key  int
}

// Table is the mapping from physical controls to key codes. It is not
// modified after Build returns.
//
// The same control may appear more than once in Buttons; every entry is
// tracked and fires on its own, in registration order.
type Table struct {
	Buttons  []ButtonBinding
	Triggers [2]TriggerBinding
}

// Build turns configuration pairs into a Table. Unknown tokens are skipped
// without error. A later LT or RT entry replaces an earlier one; both
// triggers are always present and default to key 0.
func Build(pairs []Pair) *Table {
	t := &Table{
		Triggers: [2]TriggerBinding{
			{Side: Left},
			{Side: Right},
		},
	}
	for _, p := range pairs {
		if c, ok := ControlByName(p.Name); ok {
			t.Buttons = append(t.Buttons, ButtonBinding{Control: c, Key: p.Key})
			continue
		}
		if s, ok := SideByName(p.Name); ok {
			t.Triggers[s] = TriggerBinding{Side: s, Key: p.Key}
		}
	}
	return t
}

// Trigger returns the binding for the given trigger.
func (t *Table) Trigger(s Side) TriggerBinding {
	return t.Triggers[s]
}
