package validation

import (
	"testing"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newType(idShort string, kind model.SmeKind, semanticID string, fields ...*model.Field) *model.Type {
	t := model.NewType(idShort, false, false)
	t.Kind = kind
	t.SemanticID = semanticID
	for _, f := range fields {
		t.AddField(f)
	}
	return t
}

func newField(idShort string, kind model.SmeKind, valueType, semanticID string) *model.Field {
	f := model.NewField()
	f.IDShort = idShort
	f.Kind = kind
	f.ValueType = valueType
	f.SemanticID = semanticID
	return f
}

func summary(types ...*model.Type) *model.SpecSummary {
	s := model.NewSpecSummary()
	s.Types = types
	return s
}

func typeNames(s *model.SpecSummary) []string {
	var names []string
	for _, t := range s.Types {
		names = append(names, t.IDShort)
	}
	return names
}

func cloneTypes(types []*model.Type) []*model.Type {
	result := make([]*model.Type, 0, len(types))
	for _, t := range types {
		result = append(result, t.Clone())
	}
	return result
}

func codes(r Report) []string {
	var result []string
	for _, d := range r.Diagnostics {
		result = append(result, d.Code)
	}
	return result
}

func TestRenameAmbiguousTypes(t *testing.T) {
	t.Parallel()
	ref := newField("Ref", model.SmeKindSmeCollection, "Foo", "iri:b")
	keep := newField("Keep", model.SmeKindSmeCollection, "Foo", "iri:a")
	s := summary(
		newType("Foo", model.SmeKindSmeCollection, "iri:a"),
		newType("Foo", model.SmeKindSmeCollection, "iri:b"),
		newType("Foo_2", model.SmeKindSmeCollection, "iri:c"),
		newType("Foo", model.SmeKindSmeCollection, "iri:d"),
		newType("Container", model.SmeKindSubmodel, "", ref, keep),
	)

	report := New(nil, nil).Validate(s)

	assert.True(t, report.Changed)
	assert.Equal(t, []string{"Foo", "Foo_3", "Foo_2", "Foo_4", "Container"}, typeNames(s))
	assert.Equal(t, "Foo_3", ref.ValueType)
	assert.Equal(t, "Foo", keep.ValueType)
	assert.Contains(t, codes(report), CodeTypeRenamed)
	assert.Contains(t, codes(report), CodeValueTypeChanged)
	assert.Equal(t, report.Diagnostics, s.Diagnostics)
}

func TestDropDuplicateTypes(t *testing.T) {
	t.Parallel()
	s := summary(
		newType("Foo", model.SmeKindSmeCollection, "iri:a"),
		newType("Bar", model.SmeKindSmeCollection, "iri:a"),
		newType("Foo", model.SmeKindSmeCollection, "iri:a"),
		newType("Baz", model.SmeKindSmeCollection, ""),
		newType("Baz", model.SmeKindSmeCollection, ""),
	)

	report := New(nil, nil).Validate(s)

	assert.Equal(t, []string{"Foo", "Bar", "Baz", "Baz_2"}, typeNames(s))
	assert.Contains(t, codes(report), CodeTypeDuplicate)
}

func TestMergeAspects(t *testing.T) {
	t.Parallel()
	base := newType("Marking", model.SmeKindSmeCollection, "", newField("Name", model.SmeKindProperty, "xs:string", ""))
	aspect := newType("Marking", model.SmeKindSmeCollection, "iri:fallback",
		newField("X", model.SmeKindProperty, "xs:string", ""),
		newField("Y", model.SmeKindProperty, "xs:int", ""),
		newField("Run", model.SmeKindOperation, "", ""))
	aspect.IsAspect = true
	aspect.AspectName = "Aspect"
	aspect.Description = "Marking aspect"
	aspect.AddMappedSemanticIDs([]model.MappedSemanticID{{Condition: "Marking", SemanticID: "iri:mapped"}})
	orphan := newType("Other", model.SmeKindSmeCollection, "", newField("Z", model.SmeKindProperty, "xs:string", ""))
	orphan.IsAspect = true
	s := summary(base, aspect, orphan)

	report := New(nil, nil).Validate(s)

	require.Len(t, s.Types, 1)
	merged := s.Types[0]
	assert.Same(t, base, merged)
	require.Len(t, merged.Fields, 3)
	assert.Equal(t, "", merged.Fields[0].Aspect)
	assert.Equal(t, "X", merged.Fields[1].IDShort)
	assert.Equal(t, "Aspect", merged.Fields[1].Aspect)
	assert.Equal(t, "Aspect", merged.Fields[2].Aspect)
	assert.NotSame(t, aspect.Fields[0], merged.Fields[1])
	require.Len(t, merged.Operations, 1)
	assert.Equal(t, "Aspect", merged.Operations[0].Aspect)
	assert.Equal(t, "iri:mapped", merged.SemanticID)
	assert.Equal(t, "Marking aspect", merged.Description)
	assert.Contains(t, codes(report), CodeAspectMerged)
	assert.Contains(t, codes(report), CodeAspectUnresolved)
}

func TestMergeAspectKeepsBaseAttributes(t *testing.T) {
	t.Parallel()
	base := newType("Marking", model.SmeKindSmeCollection, "iri:base")
	base.Description = "Base"
	aspect := newType("Marking", model.SmeKindSmeCollection, "iri:aspect")
	aspect.IsAspect = true
	aspect.Description = "Aspect"
	s := summary(base, aspect)

	New(nil, nil).Validate(s)

	require.Len(t, s.Types, 1)
	assert.Equal(t, "iri:base", s.Types[0].SemanticID)
	assert.Equal(t, "Base", s.Types[0].Description)
}

func TestMergeExtensionTables(t *testing.T) {
	t.Parallel()
	base := newType("Marking", model.SmeKindSmeCollection, "")
	ext := newType("-", model.SmeKindNone, "", newField("Region", model.SmeKindProperty, "xs:string", ""))
	ext.Description = "Lists the elements of the SMC Marking in the nameplate with region-specific elements."
	unknown := newType("-", model.SmeKindNone, "")
	unknown.Description = "Something else"
	s := summary(base, ext, unknown)

	report := New(nil, nil).Validate(s)

	require.Len(t, s.Types, 1)
	require.Len(t, base.Fields, 1)
	assert.Equal(t, "region", base.Fields[0].Aspect)
	assert.True(t, report.HasErrors())
	assert.NotContains(t, codes(report), CodeMissingKind)
}

func TestMaterializeDeferred(t *testing.T) {
	t.Parallel()
	number := newField("Number", model.SmeKindProperty, "xs:string", "")
	phone := newType("Phone", model.SmeKindSmeCollection, "iri:phone", number)
	contact := newType("Contact", model.SmeKindSubmodel, "",
		newField("Phone", model.SmeKindSmeCollection, "Phone", "iri:phone"),
		newField("Fax", model.SmeKindSmeCollection, "Fax", "iri:phone"))
	last := newType("Last", model.SmeKindSmeCollection, "")
	s := summary(contact, phone, last)
	s.Deferred = []model.DeferredType{{ID: "Fax", Prototype: "Phone"}, {ID: "Pager", Prototype: "Missing"},
		{ID: "Contact", Prototype: "Phone"}}

	report := New(nil, nil).Validate(s)

	assert.Nil(t, s.Deferred)
	require.Equal(t, []string{"Contact", "Phone", "Fax", "Last"}, typeNames(s))
	fax := s.Types[2]
	assert.Equal(t, "iri:phone", fax.SemanticID)
	require.Len(t, fax.Fields, 1)
	assert.NotSame(t, number, fax.Fields[0])
	assert.Equal(t, "Fax", contact.Fields[1].ValueType)
	assert.Contains(t, codes(report), CodeDeferredUnresolved)
	assert.True(t, report.HasErrors())
}

func TestUnbraceTypesAndFields(t *testing.T) {
	t.Parallel()
	typed := newField("{Doc}", model.SmeKindSmeCollection, "{Doc}", "iri:http://example.com/Doc")
	versioned := newField("{Thing}", model.SmeKindProperty, "xs:string", "iri:https://admin-shell.io/ex/Thing/1/0")
	described := newField("{Local}Name", model.SmeKindProperty, "xs:string", "")
	s := summary(
		newType("{Doc}", model.SmeKindSmeCollection, "iri:http://example.com/Doc"),
		newType("Holder", model.SmeKindSubmodel, "", typed, versioned, described),
	)

	New(nil, nil).Validate(s)

	doc := s.Types[0]
	assert.Equal(t, "Doc", doc.IDShort)
	assert.Equal(t, "{Doc}", doc.DisplayName)
	assert.Equal(t, "Doc", typed.IDShort)
	assert.Equal(t, "{Doc}", typed.DisplayName)
	assert.Equal(t, "Doc", typed.ValueType)
	assert.Equal(t, "Thing", versioned.IDShort)
	assert.Equal(t, "Local", described.IDShort)
	assert.Equal(t, "{Local}Name", described.DisplayName)
}

func TestNameLiterals(t *testing.T) {
	t.Parallel()
	e := model.NewEnum("Region")
	e.AddLiteral(model.NewEnumLiteral("", "", "", ""))
	e.AddLiteral(model.NewEnumLiteral("", "", "", "DE_BY"))
	e.AddLiteral(model.NewEnumLiteral("", "irdi:0173-1#07-AAA111#001", "", ""))
	named := model.NewEnumLiteral("", "", "", "")
	named.DisplayName = "Some name"
	e.AddLiteral(named)
	e.AddLiteral(model.NewEnumLiteral("Red", "", "", ""))
	s := summary()
	s.Enums = []*model.Enum{e}

	New(nil, nil).Validate(s)

	var names []string
	for _, l := range e.Literals {
		names = append(names, l.IDShort)
	}
	assert.Equal(t, []string{"VALUE_1", "DE_BY", "irdi_0173_1_07_AAA111_001", "Some_name", "Red"}, names)
}

func TestMissingKind(t *testing.T) {
	t.Parallel()
	s := summary(newType("Nameplate", model.SmeKindSubmodel, ""), newType("Loose", model.SmeKindNone, ""))

	report := New(nil, nil).Validate(s)

	assert.True(t, report.HasErrors())
	assert.False(t, report.Changed)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, model.Diagnostic{
		Level:   model.DiagnosticError,
		Code:    CodeMissingKind,
		Element: "Loose",
		Message: "type Loose has no SME type assigned, cannot emit it",
	}, report.Diagnostics[0])
}

func TestResolveValueTypes(t *testing.T) {
	t.Parallel()
	const contactID = "iri:https://admin-shell.io/zvei/nameplate/1/0/ContactInformations/ContactInformation"
	imported := newField("Contact", model.SmeKindSmeCollection, "Contact", contactID)
	enumTyped := newField("Color", model.SmeKindProperty, "Color", "")
	basic := newField("Serial", model.SmeKindProperty, "xs:string", "")
	undefined := newField("Odd", model.SmeKindProperty, "xs:foo", "")
	bySemanticID := newField("Part", model.SmeKindSmeCollection, "Component", "iri:part")
	generic := newField("Any", model.SmeKindSmeCollection, "Nowhere", "")
	s := summary(
		newType("Nameplate", model.SmeKindSubmodel, "", imported, enumTyped, basic, undefined, bySemanticID, generic),
		newType("PartType", model.SmeKindSmeCollection, "iri:part"),
	)
	s.Enums = []*model.Enum{model.NewEnum("Color")}

	report := New(nil, nil).Validate(s)

	assert.Equal(t, "ContactInformation", imported.ValueType)
	assert.Equal(t, "Color", enumTyped.ValueType)
	assert.Equal(t, "xs:string", basic.ValueType)
	assert.Empty(t, undefined.ValueType)
	assert.Equal(t, "PartType", bySemanticID.ValueType)
	assert.Empty(t, generic.ValueType)
	assert.Contains(t, codes(report), CodeValueTypeUndefined)
	assert.False(t, report.HasErrors())
}

func TestCardinalitySwap(t *testing.T) {
	t.Parallel()
	swapped := newField("Swapped", model.SmeKindProperty, "xs:string", "")
	swapped.SetCardinality(3, 1)
	open := newField("Open", model.SmeKindProperty, "xs:string", "")
	open.SetCardinality(2, model.CardinalityUnbounded)
	unset := newField("Unset", model.SmeKindProperty, "xs:string", "")
	s := summary(newType("Nameplate", model.SmeKindSubmodel, "", swapped, open, unset))

	report := New(nil, nil).Validate(s)

	assert.Equal(t, 1, swapped.Lower)
	assert.Equal(t, 3, swapped.Upper)
	assert.Equal(t, 2, open.Lower)
	assert.Equal(t, model.CardinalityUnbounded, open.Upper)
	assert.Equal(t, model.CardinalityUnset, unset.Lower)
	assert.Equal(t, []string{CodeCardinalitySwapped}, codes(report))
}

func TestValidationIsIdempotent(t *testing.T) {
	t.Parallel()
	aspect := newType("Marking", model.SmeKindSmeCollection, "iri:m", newField("X", model.SmeKindProperty, "xs:string", ""))
	aspect.IsAspect = true
	swapped := newField("Swapped", model.SmeKindProperty, "xs:int", "")
	swapped.SetCardinality(5, 0)
	e := model.NewEnum("Color")
	e.AddLiteral(model.NewEnumLiteral("", "", "", ""))
	s := summary(
		newType("Nameplate", model.SmeKindSubmodel, "",
			newField("{Thing}", model.SmeKindSmeCollection, "Foo", "iri:b"),
			newField("Odd", model.SmeKindProperty, "xs:foo", ""),
			swapped),
		newType("Foo", model.SmeKindSmeCollection, "iri:a"),
		newType("Foo", model.SmeKindSmeCollection, "iri:b"),
		newType("{Generic}", model.SmeKindSmeCollection, ""),
		newType("Marking", model.SmeKindSmeCollection, ""),
		aspect,
		newType("Loose", model.SmeKindNone, ""),
	)
	s.Enums = []*model.Enum{e}
	s.Deferred = []model.DeferredType{{ID: "Copy", Prototype: "Marking"}}
	v := New(nil, nil)

	first := v.Validate(s)
	require.True(t, first.Changed)
	snapshot := cloneTypes(s.Types)

	second := v.Validate(s)

	assert.False(t, second.Changed)
	assert.Equal(t, snapshot, cloneTypes(s.Types))
	assert.Equal(t, []string{CodeMissingKind}, codes(second))
	assert.Equal(t, []string{"Nameplate", "Foo", "Foo_2", "Generic", "Marking", "Copy", "Loose"}, typeNames(s))
}
