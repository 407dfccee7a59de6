package bo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTableCreateResolveLookup(t *testing.T) {
	table := NewHandleTable()
	obj := &Object{Size: 4096}

	h := table.Create(obj)
	got, ok := table.Resolve(h)
	require.True(t, ok)
	assert.Same(t, obj, got)

	reverse, ok := table.Lookup(obj)
	require.True(t, ok)
	assert.Equal(t, h, reverse)
}

func TestHandleTableHandlesNeverReused(t *testing.T) {
	table := NewHandleTable()
	a := table.Create(&Object{Size: 1})
	b := table.Create(&Object{Size: 2})
	assert.NotEqual(t, a, b, "expected distinct handles")
}

func TestRegistryExportImport(t *testing.T) {
	reg := NewRegistry()
	creds := uuid.New()
	obj := &Object{Size: 8192, Mapping: 3 << 32}

	reg.Register(creds, obj)

	got, ok := reg.Find(creds)
	require.True(t, ok)
	assert.Same(t, obj, got)

	_, ok = reg.Find(uuid.New())
	assert.False(t, ok, "Find with unregistered creds should miss")
}
