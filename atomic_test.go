package drmcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicStateTouchIsIdempotent(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	state := dev.NewAtomicState()

	first := state.Crtc(crtc.ID)
	second := state.Crtc(crtc.ID)
	assert.Same(t, first, second, "touching the same CRTC twice should return the identical pointer")
}

func TestAtomicStateRejectionLeavesLiveStateUnchanged(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	activeProp, _ := dev.FindProperty("ACTIVE")

	before, _ := dev.CrtcState(crtc.ID)
	wasActive := before.Active

	assignments := []Assignment{{Target: crtc, Property: activeProp, Value: Value{Int: 2}}}
	cfg := NewMockConfiguration()
	state := dev.NewAtomicState()
	require.Error(t, dev.Apply(state, assignments), "invalid ACTIVE value should fail Apply")

	after, _ := dev.CrtcState(crtc.ID)
	assert.Equal(t, wasActive, after.Active, "live state should be unchanged after a validation failure")
	assert.Zero(t, cfg.CommitCalls(), "Commit should never be called when Apply fails")
}

func TestAtomicStateCaptureRejectionLeavesLiveStateUnchanged(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	activeProp, _ := dev.FindProperty("ACTIVE")

	assignments := []Assignment{{Target: crtc, Property: activeProp, Value: Value{Int: 1}}}
	cfg := NewMockConfiguration()
	cfg.RejectNext()

	_, err := dev.Commit(assignments, cfg, false, nil)
	require.Error(t, err, "a rejected Capture should surface as an error")

	after, _ := dev.CrtcState(crtc.ID)
	assert.False(t, after.Active, "live state should remain inactive after Capture rejects")
}

func TestTouchedCrtcsReflectsOnlyForkedState(t *testing.T) {
	dev := NewDevice()
	crtcA := dev.RegisterCrtc()
	dev.RegisterCrtc() // crtcB, untouched

	state := dev.NewAtomicState()
	state.Crtc(crtcA.ID)

	touched := state.TouchedCrtcs()
	assert.Equal(t, []uint32{crtcA.ID}, touched)
}

func TestSubmitAcceptedInstallsStateAndPostsFlips(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	activeProp, _ := dev.FindProperty("ACTIVE")

	file, err := NewFile(dev, true)
	require.NoError(t, err)

	assignments := []Assignment{{Target: crtc, Property: activeProp, Value: Value{Int: 1}}}
	cfg := NewMockConfiguration()
	flips := []FlipRequest{{CrtcID: crtc.ID, File: file, Cookie: 42}}

	_, err = dev.Commit(assignments, cfg, false, flips)
	require.NoError(t, err)

	after, _ := dev.CrtcState(crtc.ID)
	assert.True(t, after.Active, "live CRTC state should be installed as active")

	seq, readable := file.pollStatus()
	assert.NotZero(t, seq)
	assert.True(t, readable)
}

func TestSubmitTestOnlyNeverInstalls(t *testing.T) {
	dev := NewDevice()
	crtc := dev.RegisterCrtc()
	activeProp, _ := dev.FindProperty("ACTIVE")

	assignments := []Assignment{{Target: crtc, Property: activeProp, Value: Value{Int: 1}}}
	cfg := NewMockConfiguration()

	_, err := dev.Commit(assignments, cfg, true, nil)
	require.NoError(t, err)

	assert.Zero(t, cfg.CommitCalls(), "testOnly should skip Commit entirely")
	after, _ := dev.CrtcState(crtc.ID)
	assert.False(t, after.Active, "testOnly should never install state")
}
