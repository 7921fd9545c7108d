package ui

// presetCycle walks a fixed list of preset names.
type presetCycle struct {
	names []string
	index int
}

func newPresetCycle(names []string, current string) presetCycle {
	c := presetCycle{names: names}
	for i, n := range names {
		if n == current {
			c.index = i
		}
	}
	return c
}

// Next advances to the following preset and returns its name.
func (c *presetCycle) Next() string {
	if len(c.names) == 0 {
		return ""
	}
	c.index = (c.index + 1) % len(c.names)
	return c.names[c.index]
}

// Current returns the selected preset name.
func (c presetCycle) Current() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[c.index]
}
