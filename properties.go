package drmcore

import "github.com/vellum-os/drmcore/internal/uapi"

// PropertyType classifies the kind of value a Property carries.
type PropertyType int

const (
	PropertyInt PropertyType = iota
	PropertyEnum
	PropertyBlob
	PropertyObject
)

// Value holds an Assignment's payload. Exactly one field is meaningful,
// selected by the bound Property's Type: Int for PropertyInt/PropertyEnum,
// ObjectID for PropertyObject (0 = null), BlobID for PropertyBlob (0 =
// null).
type Value struct {
	Int      int64
	ObjectID uint32
	BlobID   uint32
}

// EnumValue names one legal value of an Enum-typed Property.
type EnumValue struct {
	Value int64
	Name  string
}

// Property is a named, typed, stable-ID behavior bound to the device: a
// validate/writeToState/readFromState triple, per spec.md §4.1. The three
// behaviors are plain functions rather than an interface's virtual
// methods — idiomatic for the handful of property kinds the canonical
// catalog needs, and just as easy for drivers to extend with their own.
type Property struct {
	ID         uint32
	Name       string
	Type       PropertyType
	EnumValues []EnumValue

	validate      func(dev *Device, target *ModeObject, val Value) bool
	writeToState  func(dev *Device, target *ModeObject, val Value, state *AtomicState)
	readFromState func(dev *Device, target *ModeObject, state *AtomicState) (Value, bool)
}

// Assignment binds (object, property, value) — one line of a client's
// proposed transaction.
type Assignment struct {
	Target   *ModeObject
	Property *Property
	Value    Value
}

// FindProperty looks up a canonical (or driver-registered) property by
// name.
func (d *Device) FindProperty(name string) (*Property, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.properties[name]
	return p, ok
}

// FindPropertyByID looks up a property by its stable ID.
func (d *Device) FindPropertyByID(id uint32) (*Property, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.propsByID[id]
	return p, ok
}

// RegisterProperty adds a driver-defined property to the catalog, beyond
// the canonical set Device init installs.
func (d *Device) RegisterProperty(p *Property) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p.ID = d.propertyIDs.Alloc()
	d.properties[p.Name] = p
	d.propsByID[p.ID] = p
}

func alwaysValid(*Device, *ModeObject, Value) bool { return true }

// registerCanonicalProperties installs SRC_{X,Y,W,H}, CRTC_{X,Y,W,H},
// CRTC_ID, FB_ID, MODE_ID, ACTIVE, DPMS, and PlaneType, per spec.md §4.1.
func (d *Device) registerCanonicalProperties() {
	planeInt := func(name string, get func(*PlaneState) int32, set func(*PlaneState, int32)) *Property {
		return &Property{
			Name: name,
			Type: PropertyInt,
			validate: alwaysValid,
			writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
				set(state.Plane(target.ID), int32(val.Int))
			},
			readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
				return Value{Int: int64(get(state.Plane(target.ID)))}, true
			},
		}
	}

	d.RegisterProperty(planeInt("SRC_X",
		func(s *PlaneState) int32 { return s.SrcX },
		func(s *PlaneState, v int32) { s.SrcX = v }))
	d.RegisterProperty(planeInt("SRC_Y",
		func(s *PlaneState) int32 { return s.SrcY },
		func(s *PlaneState, v int32) { s.SrcY = v }))
	d.RegisterProperty(&Property{
		Name: "SRC_W",
		Type: PropertyInt,
		validate: alwaysValid,
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Plane(target.ID).SrcW = int32(val.Int >> 16)
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{Int: int64(state.Plane(target.ID).SrcW)}, true
		},
	})
	d.RegisterProperty(&Property{
		Name: "SRC_H",
		Type: PropertyInt,
		validate: alwaysValid,
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Plane(target.ID).SrcH = int32(val.Int >> 16)
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{Int: int64(state.Plane(target.ID).SrcH)}, true
		},
	})

	d.RegisterProperty(planeInt("CRTC_X",
		func(s *PlaneState) int32 { return s.CrtcX },
		func(s *PlaneState, v int32) { s.CrtcX = v }))
	d.RegisterProperty(planeInt("CRTC_Y",
		func(s *PlaneState) int32 { return s.CrtcY },
		func(s *PlaneState, v int32) { s.CrtcY = v }))
	d.RegisterProperty(planeInt("CRTC_W",
		func(s *PlaneState) int32 { return s.CrtcW },
		func(s *PlaneState, v int32) { s.CrtcW = v }))
	d.RegisterProperty(planeInt("CRTC_H",
		func(s *PlaneState) int32 { return s.CrtcH },
		func(s *PlaneState, v int32) { s.CrtcH = v }))

	d.RegisterProperty(&Property{
		Name: "CRTC_ID",
		Type: PropertyObject,
		validate: func(dev *Device, target *ModeObject, val Value) bool {
			if val.ObjectID == 0 {
				return true
			}
			obj, ok := dev.FindObject(val.ObjectID)
			if !ok || obj.Type != ObjectCrtc {
				return false
			}
			plane, ok := target.AsPlane()
			if !ok {
				return false
			}
			return plane.PossibleCrtcs[val.ObjectID]
		},
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Plane(target.ID).Crtc = val.ObjectID
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{ObjectID: state.Plane(target.ID).Crtc}, true
		},
	})

	d.RegisterProperty(&Property{
		Name: "FB_ID",
		Type: PropertyObject,
		validate: func(dev *Device, _ *ModeObject, val Value) bool {
			if val.ObjectID == 0 {
				return true
			}
			obj, ok := dev.FindObject(val.ObjectID)
			return ok && obj.Type == ObjectFrameBuffer
		},
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Plane(target.ID).FrameBuffer = val.ObjectID
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{ObjectID: state.Plane(target.ID).FrameBuffer}, true
		},
	})

	d.RegisterProperty(&Property{
		Name: "MODE_ID",
		Type: PropertyBlob,
		validate: func(dev *Device, _ *ModeObject, val Value) bool {
			if val.BlobID == 0 {
				return true
			}
			data, ok := dev.FindBlob(val.BlobID)
			if !ok {
				return false
			}
			if len(data) != uapi.ModeInfoSize {
				return false
			}
			var mode uapi.ModeInfo
			if err := uapi.Unmarshal(data, &mode); err != nil {
				return false
			}
			if !(mode.HDisplay <= mode.HSyncStart && mode.HSyncStart <= mode.HSyncEnd && mode.HSyncEnd <= mode.HTotal) {
				return false
			}
			if !(mode.VDisplay <= mode.VSyncStart && mode.VSyncStart <= mode.VSyncEnd && mode.VSyncEnd <= mode.VTotal) {
				return false
			}
			return true
		},
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			st := state.Crtc(target.ID)
			st.Mode = val.BlobID
			st.ModeChanged = true
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{BlobID: state.Crtc(target.ID).Mode}, true
		},
	})

	d.RegisterProperty(&Property{
		Name: "ACTIVE",
		Type: PropertyInt,
		validate: func(_ *Device, _ *ModeObject, val Value) bool {
			return val.Int == 0 || val.Int == 1
		},
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Crtc(target.ID).Active = val.Int != 0
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			v := int64(0)
			if state.Crtc(target.ID).Active {
				v = 1
			}
			return Value{Int: v}, true
		},
	})

	d.RegisterProperty(&Property{
		Name: "DPMS",
		Type: PropertyEnum,
		EnumValues: []EnumValue{
			{Value: int64(DpmsOn), Name: "On"},
			{Value: int64(DpmsStandby), Name: "Standby"},
			{Value: int64(DpmsSuspend), Name: "Suspend"},
			{Value: int64(DpmsOff), Name: "Off"},
		},
		validate: func(_ *Device, _ *ModeObject, val Value) bool {
			return val.Int >= 0 && val.Int < 4
		},
		writeToState: func(_ *Device, target *ModeObject, val Value, state *AtomicState) {
			state.Connector(target.ID).Dpms = DpmsState(val.Int)
		},
		readFromState: func(_ *Device, target *ModeObject, state *AtomicState) (Value, bool) {
			return Value{Int: int64(state.Connector(target.ID).Dpms)}, true
		},
	})

	d.RegisterProperty(&Property{
		Name: "type",
		Type: PropertyEnum,
		EnumValues: []EnumValue{
			{Value: int64(PlaneTypeOverlay), Name: "Overlay"},
			{Value: int64(PlaneTypePrimary), Name: "Primary"},
			{Value: int64(PlaneTypeCursor), Name: "Cursor"},
		},
		validate: func(_ *Device, target *ModeObject, val Value) bool {
			plane, ok := target.AsPlane()
			return ok && val.Int == int64(plane.Type)
		},
		writeToState: func(*Device, *ModeObject, Value, *AtomicState) {
			// read-only reflective: validate already rejected any value
			// other than the plane's own fixed type, so writing it is a
			// no-op.
		},
		readFromState: func(_ *Device, target *ModeObject, _ *AtomicState) (Value, bool) {
			plane, ok := target.AsPlane()
			if !ok {
				return Value{}, false
			}
			return Value{Int: int64(plane.Type)}, true
		},
	})
}
