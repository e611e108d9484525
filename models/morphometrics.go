package models

// Missing lists the JSON names of the measurements that were not supplied,
// in a fixed order.
func (m MorphometricsInput) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"scl_max", m.SCLMax},
		{"scl_min", m.SCLMin},
		{"scw", m.SCW},
		{"ccl_max", m.CCLMax},
		{"ccl_min", m.CCLMin},
		{"ccw", m.CCW},
		{"tail_extension", m.TailExtension},
		{"vent_to_tail_tip", m.VentToTailTip},
		{"total_tail_length", m.TotalTailLength},
	} {
		if f.v == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Values dereferences every measurement. Call only after Missing returns none.
func (m MorphometricsInput) Values() Morphometrics {
	return Morphometrics{
		SCLMax:          *m.SCLMax,
		SCLMin:          *m.SCLMin,
		SCW:             *m.SCW,
		CCLMax:          *m.CCLMax,
		CCLMin:          *m.CCLMin,
		CCW:             *m.CCW,
		TailExtension:   *m.TailExtension,
		VentToTailTip:   *m.VentToTailTip,
		TotalTailLength: *m.TotalTailLength,
	}
}
