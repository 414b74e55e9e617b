package muncher

import "github.com/vovakirdan/muncher/internal/core"

// ResolveDevices assigns attached devices to slots by the player index they
// report and re-links every player to its slot's device. It is called on
// startup and on every attach or detach; calling it twice with the same
// devices has no further effect.
//
// Buttons already held on a newly assigned device do not count as presses.
func (s *Session) ResolveDevices(src core.DeviceSource) {
	var slots [Slots]core.Device
	if src != nil {
		for _, d := range src.Devices() {
			if d == nil || !d.Attached() {
				continue
			}
			idx := d.PlayerIndex()
			if idx < 0 || idx >= Slots || slots[idx] != nil {
				continue
			}
			slots[idx] = d
		}
	}

	for i, d := range slots {
		if d == s.slots[i] {
			continue
		}
		s.held[i] = [core.ButtonCount]bool{}
		if d != nil {
			for b := core.Button(0); b < core.ButtonCount; b++ {
				s.held[i][b] = d.Button(b)
			}
		}
		s.logger.Debug("device slot changed", "slot", i, "attached", d != nil)
	}
	s.slots = slots

	if s.world != nil {
		s.world.Relink(slots)
	}
}

// Slot returns the device assigned to slot i, or nil.
func (s *Session) Slot(i int) core.Device {
	if i < 0 || i >= Slots {
		return nil
	}
	return s.slots[i]
}
