package drmcore

// NewAtomicState opens a fresh transaction against the device's current
// committed state.
func (d *Device) NewAtomicState() *AtomicState {
	return newAtomicState(d)
}

// Commit runs the full prepare-validate-commit pipeline: collect (the
// caller already built assignments), validate+apply, then submit to cfg.
// testOnly transactions are validated and offered to cfg.Capture but never
// installed or eventing.
func (d *Device) Commit(assignments []Assignment, cfg Configuration, testOnly bool, flips []FlipRequest) (*AtomicState, error) {
	state := d.NewAtomicState()
	state.testOnly = testOnly
	if err := d.Apply(state, assignments); err != nil {
		return nil, err
	}
	if err := d.Submit(state, cfg, testOnly, flips); err != nil {
		return nil, err
	}
	return state, nil
}
