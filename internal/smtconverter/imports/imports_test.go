package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	r := Default()

	imp, ok := r.Import("iri:https://admin-shell.io/zvei/nameplate/1/0/ContactInformations/ContactInformation")
	require.True(t, ok)
	assert.Equal(t, ContactInformationsProject, imp.ProjectName)
	assert.Equal(t, "1.0", imp.Version)

	typ, ok := r.SpecificType("irdi:0173-1#02-AAQ837#007")
	require.True(t, ok)
	assert.Equal(t, "ContactInformations", typ)

	_, ok = r.Import("")
	assert.False(t, ok)
	_, ok = r.SpecificType("iri:https://example.com/unknown")
	assert.False(t, ok)

	assert.True(t, r.IsKnownType("Phone"))
	assert.False(t, r.IsKnownType("Nameplate"))
	assert.False(t, r.IsKnownType(""))
	assert.False(t, r.IsKnownTypeExcluding("Phone", []*Import{imp}))
	assert.Contains(t, imp.KnownTypes(), "IPCommunication")
}

func TestSortAndNames(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Define("Zeta", "")
	r.Define("Alpha", "2.0", "A")
	all := r.Imports()
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].ProjectName)
	assert.Equal(t, "Alpha, Zeta", r.ProjectNames())
}
