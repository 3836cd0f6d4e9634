package extraction

import (
	"context"
	"testing"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/rows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor() *Processor {
	return NewProcessor(DefaultOptions(), nil, nil)
}

func process(p *Processor, cells ...string) {
	p.ProcessRow(rows.Text(cells...)...)
}

// fieldHeaders emits the two header rows of a field table.
func fieldHeaders(p *Processor) {
	process(p, "[SME type]", "semanticId = [idType]value", "[valueType]", "card.")
	process(p, "idShort", "Description@en", "example", "")
}

func findType(t *testing.T, s *model.SpecSummary, idShort string) *model.Type {
	t.Helper()
	typ, ok := s.FindType(idShort)
	require.True(t, ok, "type %s not found", idShort)
	return typ
}

func fieldNames(t *model.Type) []string {
	var names []string
	for _, f := range t.Fields {
		names = append(names, f.IDShort)
	}
	return names
}

func TestTitle(t *testing.T) {
	p := newProcessor()
	process(p, "IDTA 02006-2-0 Submodel for Digital Nameplate for Industrial Equipment October 2022")

	s := p.Complete()

	assert.Equal(t, "IDTA 02006-2-0", s.VersionIdentifier)
	assert.Equal(t, "02006", s.SpecNumber)
	assert.Equal(t, "2.0", s.Version)
	assert.Equal(t, "IDTA_Digital_Nameplate_for_Industrial_Equipment", s.Name)
	assert.Equal(t, "IDTA 02006-2-0 Submodel for Digital Nameplate for Industrial Equipment October 2022", s.Title)
	assert.Empty(t, s.ProjectName)
}

func TestTitleOnlyFirst(t *testing.T) {
	p := newProcessor()
	process(p, "IDTA 02002-1-0 Contact\nInformation")
	process(p, "IDTA 02006-2-0 Digital Nameplate")

	s := p.Complete()

	assert.Equal(t, "02002", s.SpecNumber)
	assert.Equal(t, "IDTA_Contact_Information", s.Name)
	assert.Equal(t, "IDTA 02002-1-0 Contact Information", s.Title)
}

func TestTitleWithoutIdentifier(t *testing.T) {
	p := newProcessor()
	process(p, "IDTA Submodel Templates")

	s := p.Complete()

	assert.Equal(t, model.DefaultSpecNumber, s.SpecNumber)
	assert.Empty(t, s.Version)
	assert.Equal(t, "IDTA Submodel Templates", s.Title)
}

func TestStripTitleDate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Digital Nameplate", stripTitleDate("Digital Nameplate October 2022"))
	assert.Equal(t, "Handover Documentation", stripTitleDate("Handover Documentation 12"))
	assert.Equal(t, "Digital Nameplate", stripTitleDate("Digital Nameplate"))
	assert.Equal(t, "Single", stripTitleDate("Single"))
}

func TestFieldTable(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	process(p, "Class", "Submodel")
	process(p, "semanticId", "[IRI] https://admin-shell.io/zvei/nameplate/2/0/Nameplate")
	process(p, "Parent", "Asset Administration Shell")
	process(p, "Explanation", "Contains the nameplate information")
	fieldHeaders(p)
	process(p, "[MLP]\nManufacturerName",
		"[IRDI] 0173-1#02-AAO677#002\nLegally valid designation of the natural or judicial person",
		"[langString]\nMuster AG@en", "1")
	process(p, "[SMC]\nContactInformation",
		"[IRI] https://admin-shell.io/zvei/nameplate/1/0/ContactInformations/ContactInformation\nContact information of the manufacturer",
		"n/a", "0..*")
	process(p, "[Prop] SerialNumber", "[IRDI] 0173-1#02-AAM556#002 Serial number of the product",
		"[xs:string] 12345678", "0..1")

	s := p.Complete()

	require.Len(t, s.Types, 1)
	np := s.Types[0]
	assert.Equal(t, "Nameplate", np.IDShort)
	assert.Equal(t, model.SmeKindSubmodel, np.Kind)
	assert.Equal(t, "iri:https://admin-shell.io/zvei/nameplate/2/0/Nameplate", np.SemanticID)
	assert.Equal(t, model.ParentAAS, np.Parent)
	assert.Equal(t, "Contains the nameplate information", np.Description)
	require.Equal(t, []string{"ManufacturerName", "ContactInformation", "SerialNumber"}, fieldNames(np))

	mn := np.Fields[0]
	assert.Equal(t, model.SmeKindMultiLanguageProperty, mn.Kind)
	assert.Equal(t, "irdi:0173-1#02-AAO677#002", mn.SemanticID)
	assert.Equal(t, "Legally valid designation of the natural or judicial person", mn.Description)
	assert.Equal(t, "langString", mn.ValueType)
	assert.Equal(t, []string{"Muster AG@en"}, mn.ExampleValues)
	assert.Equal(t, 1, mn.Lower)
	assert.Equal(t, 1, mn.Upper)

	ci := np.Fields[1]
	assert.Equal(t, model.SmeKindSmeCollection, ci.Kind)
	assert.Equal(t, "ContactInformation", ci.ValueType)
	assert.Equal(t, "iri:https://admin-shell.io/zvei/nameplate/1/0/ContactInformations/ContactInformation", ci.SemanticID)
	assert.Nil(t, ci.ExampleValues)
	assert.Equal(t, 0, ci.Lower)
	assert.Equal(t, model.CardinalityUnbounded, ci.Upper)

	sn := np.Fields[2]
	assert.Equal(t, model.SmeKindProperty, sn.Kind)
	assert.Equal(t, "irdi:0173-1#02-AAM556#002", sn.SemanticID)
	assert.Equal(t, "Serial number of the product", sn.Description)
	assert.Equal(t, "xs:string", sn.ValueType)
	assert.Equal(t, []string{"12345678"}, sn.ExampleValues)
	assert.Equal(t, 0, sn.Lower)
	assert.Equal(t, 1, sn.Upper)
}

func TestFieldRowsRequireHeaders(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	process(p, "[Prop] SerialNumber", "[IRDI] 0173-1#02-AAM556#002 Serial number", "[xs:string]", "1")

	s := p.Complete()

	require.Len(t, s.Types, 1)
	assert.Empty(t, s.Types[0].Fields)
}

func TestSectionEndResetsHeaders(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	fieldHeaders(p)
	process(p, "Table 3 Some other table")
	process(p, "[Prop] SerialNumber", "[IRDI] 0173-1#02-AAM556#002 Serial number", "[xs:string]", "1")

	s := p.Complete()

	assert.Empty(t, findType(t, s, "Nameplate").Fields)
}

func TestTwoColumnAttributes(t *testing.T) {
	p := newProcessor()
	process(p, "idShort:", "Markings\nNote: the above idShort shall always be as stated.")
	process(p, "Class:", "SMC")
	process(p, "isCaseOf:", "[IRI] https://admin-shell.io/ex/Markings/1/0")
	process(p, "Allow Duplicates", "true")
	process(p, "Ordered", "TRUE")
	process(p, "Parent", `SMC "Nameplate"`)
	process(p, "Explanation", "Collection of product markings")
	process(p, "Gadget", "ignored")

	s := p.Complete()

	typ := findType(t, s, "Markings")
	assert.True(t, typ.FixedIDShort)
	assert.Equal(t, model.SmeKindSmeCollection, typ.Kind)
	assert.Equal(t, "iri:https://admin-shell.io/ex/Markings/1/0", typ.IsCaseOf)
	assert.True(t, typ.AllowDuplicates)
	assert.True(t, typ.Ordered)
	assert.Equal(t, "Nameplate", typ.Parent)
	assert.Equal(t, "Collection of product markings", typ.Description)
}

func TestMultiValuedAndEntityTypes(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Document{00}")
	process(p, "idShort", "{Node#00}")
	process(p, "Class", "Entity")
	process(p, "Explanation", "A SelfManagedEntity node")

	s := p.Complete()

	doc := findType(t, s, "Document")
	assert.True(t, doc.MultiValued)
	node := findType(t, s, "Node")
	assert.True(t, node.MultiValued)
	assert.Equal(t, model.SmeKindEntity, node.Kind)
	assert.Equal(t, model.EntityTypeSelfManaged, node.EntityType)
}

func TestNonTypeKindsAreDropped(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Temperature")
	process(p, "Class", "Property")
	process(p, "idShort", "Markings")
	process(p, "Class", "SMC")

	s := p.Complete()

	require.Len(t, s.Types, 1)
	assert.Equal(t, "Markings", s.Types[0].IDShort)
}

func TestAlternativeTypes(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Phone or Fax")
	process(p, "Class", "SMC")
	process(p, "semanticId", "[IRI] https://admin-shell.io/ex/Phone/1/0 or [IRI] https://admin-shell.io/ex/Fax/1/0")
	process(p, "Explanation", "[IRI] and [IRI] given")
	process(p, "idShort", "Address (Street/ City)")

	s := p.Complete()

	phone := findType(t, s, "Phone")
	fax := findType(t, s, "Fax")
	assert.Equal(t, "iri:https://admin-shell.io/ex/Phone/1/0", phone.SemanticID)
	assert.Equal(t, "iri:https://admin-shell.io/ex/Fax/1/0", fax.SemanticID)
	assert.Equal(t, model.SmeKindSmeCollection, fax.Kind)
	assert.False(t, phone.MultiSemanticIDs)
	findType(t, s, "Address")
	findType(t, s, "Street")
	findType(t, s, "City")
}

func TestAlternativesDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.OrAlternatives = false
	p := NewProcessor(opts, nil, nil)
	process(p, "idShort", "Phone or Fax")

	s := p.Complete()

	require.Len(t, s.Types, 1)
	assert.Equal(t, "Phone or Fax", s.Types[0].IDShort)
}

func TestAspectTypes(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Marking")
	process(p, "Class", "SMC")
	process(p, "idShort", "{Aspect = Marking | Other}")
	process(p, "semanticId", "[IRI] https://admin-shell.io/ex/CE/1/0 (only for CE) [IRI] https://admin-shell.io/ex/UK/1/0 (only for UKCA)")

	s := p.Complete()

	require.Len(t, s.Types, 3)
	assert.False(t, s.Types[0].IsAspect)
	aspect := s.Types[1]
	assert.Equal(t, "Marking", aspect.IDShort)
	assert.True(t, aspect.IsAspect)
	assert.Equal(t, "Aspect", aspect.AspectName)
	assert.Equal(t, "Other", s.Types[2].IDShort)
	assert.Equal(t, "iri:https://admin-shell.io/ex/CE/1/0", aspect.SemanticID)
	assert.Equal(t, []model.MappedSemanticID{
		{Condition: "CE", SemanticID: "iri:https://admin-shell.io/ex/CE/1/0"},
		{Condition: "UKCA", SemanticID: "iri:https://admin-shell.io/ex/UK/1/0"},
	}, aspect.MappedSemanticIDs)
}

func TestGenericTypesAndFields(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Documents")
	fieldHeaders(p)
	process(p, "[SMC]\n{arbitrary}", "[IRI] https://admin-shell.io/ex/Doc/1/0\nA document", "", "0..*")
	process(p, "idShort", "{arbitrary}")
	process(p, "Class", "SMC")

	s := p.Complete()

	docs := findType(t, s, "Documents")
	require.Len(t, docs.Fields, 1)
	f := docs.Fields[0]
	assert.Equal(t, "{arbitrary}", f.IDShort)
	assert.True(t, f.IsGeneric)
	assert.Equal(t, "Generic__arbitrary__1", f.ValueType)

	generic := findType(t, s, "Generic__arbitrary__1")
	assert.True(t, generic.IsGeneric)
	assert.Equal(t, "arbitrary_1", generic.DisplayName)
}

func TestFieldAlternativesAreDeferred(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Contact")
	fieldHeaders(p)
	process(p, "[SMC]\nPhone\nor Fax", "[IRI] https://admin-shell.io/ex/Phone/1/0\nPhone or fax", "", "0..1")

	s := p.Complete()

	contact := findType(t, s, "Contact")
	require.Equal(t, []string{"Phone", "Fax"}, fieldNames(contact))
	assert.Equal(t, "Phone", contact.Fields[0].ValueType)
	assert.Equal(t, "Fax", contact.Fields[1].ValueType)
	assert.Equal(t, []model.DeferredType{{ID: "Fax", Prototype: "Phone"}}, s.Deferred)
}

func TestFieldEnumInference(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Markings")
	fieldHeaders(p)
	process(p, "[Prop]\nColor", "[IRDI] 0173-1#02-AAA000#001\nColor of it [enumeration: 1. \"Red\" and 2. \"Blue\"]",
		"[xs:string]", "1")

	s := p.Complete()

	f := findType(t, s, "Markings").Fields[0]
	assert.Equal(t, "Color", f.ValueType)
	assert.Equal(t, "Color of it", f.Description)
	require.Len(t, s.Enums, 1)
	e := s.Enums[0]
	assert.Equal(t, "Color", e.IDShort)
	assert.Equal(t, "irdi:0173-1#02-AAA000#001", e.SemanticID)
	require.Len(t, e.Literals, 2)
	assert.Equal(t, "Red", e.Literals[0].IDShort)
	assert.Equal(t, "Blue", e.Literals[1].IDShort)
}

func TestValueListLiteralRows(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Markings")
	fieldHeaders(p)
	process(p, "[Prop]\nRegion", "[IRI] https://admin-shell.io/ex/Region/1/0\nRegion of the marking. Value List:",
		"[xs:string]", "1")
	process(p, "CE", "0173-1#07-AAA111#001")
	process(p, "DE-BY - Bavaria", "https://example.com/ids/BY")
	process(p, "Table 4 Next")
	process(p, "idShort", "Other")

	s := p.Complete()

	require.Len(t, s.Enums, 1)
	e := s.Enums[0]
	assert.Equal(t, model.ParsingKindValueList, e.ParsingKind)
	assert.Equal(t, "Region of the marking.", e.Description)
	require.Len(t, e.Literals, 2)
	assert.Equal(t, "CE", e.Literals[0].IDShort)
	assert.Equal(t, "irdi:0173-1#07-AAA111#001", e.Literals[0].ValueID)
	assert.Empty(t, e.Literals[0].Identifier)
	assert.Equal(t, "DE-BY - Bavaria", e.Literals[1].IDShort)
	assert.Equal(t, "DE_BY", e.Literals[1].Identifier)
	assert.Equal(t, "iri:https://example.com/ids/BY", e.Literals[1].ValueID)
	findType(t, s, "Other")
}

func TestValueListTable(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Colors")
	process(p, "Class", "SMC")
	process(p, "Table 3 Colors ValueList entries")
	process(p, "-", "-", "semanticId = [IRDI] 0173-1#02-AAA000#001")
	process(p, "Preferred Name", "Description", "Dictionary")
	process(p, "Red", "The red color", "[IRDI] 0173-1#07-AAA111#001")
	process(p, "Blue", "The blue color", "n/a")

	s := p.Complete()

	assert.Empty(t, s.Types)
	require.Len(t, s.Enums, 1)
	e := s.Enums[0]
	assert.Equal(t, "ColorsValueList", e.IDShort)
	require.Len(t, e.Literals, 2)
	red := e.Literals[0]
	assert.Equal(t, "Red", red.IDShort)
	assert.Equal(t, "Red", red.Value)
	assert.Equal(t, "The red color", red.Description)
	assert.Equal(t, "irdi:0173-1#07-AAA111#001", red.ValueID)
	assert.Empty(t, e.Literals[1].ValueID)
}

func TestSplitContinuationRows(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	fieldHeaders(p)
	process(p, "[Prop] SerialNumber", "[IRDI] 0173-1#02-AAM556#002 Serial number", "", "1")
	process(p, "", "Second")
	process(p, "", "Third", "42")
	process(p, "", "Fourth")

	s := p.Complete()

	f := findType(t, s, "Nameplate").Fields[0]
	assert.Equal(t, "irdi:0173-1#02-AAM556#002", f.SemanticID)
	assert.Equal(t, "Third", f.Description)
	assert.Equal(t, []string{"42"}, f.ExampleValues)
}

func TestMultiLineExamples(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	fieldHeaders(p)
	process(p, "[Prop]\nName", "[IRI] https://admin-shell.io/ex/Name/1/0\nThe name", "[xs:string]\nfirst\nor: second", "1")
	process(p, "[MLP]\nTitle", "[IRI] https://admin-shell.io/ex/Title/1/0\nThe title", "[langString]\nHello@en\nHallo@de", "1")

	s := p.Complete()

	fields := findType(t, s, "Nameplate").Fields
	require.Len(t, fields, 2)
	assert.Equal(t, []string{"first", "second"}, fields[0].ExampleValues)
	assert.Equal(t, []string{"Hello@en", "Hallo@de"}, fields[1].ExampleValues)
	assert.Empty(t, fields[1].ExampleExplanation)
}

func TestExcessCellsAreIgnored(t *testing.T) {
	p := newProcessor()
	process(p, "idShort", "Nameplate")
	fieldHeaders(p)
	process(p, "[Prop] SerialNumber", "[IRDI] 0173-1#02-AAM556#002 Serial number", "[xs:string]", "1", "extra")

	s := p.Complete()

	require.Len(t, findType(t, s, "Nameplate").Fields, 1)
}

func TestRun(t *testing.T) {
	doc := &rows.Document{Name: "doc", Sheets: []rows.Sheet{
		{Rows: []rows.Row{rows.Text("IDTA 02006-2-0 Digital Nameplate"), rows.Text("idShort", "Nameplate")}},
		{Rows: []rows.Row{rows.Text("Class", "Submodel")}},
	}}

	s, err := newProcessor().Run(context.Background(), doc.Source())
	require.NoError(t, err)
	assert.Equal(t, "02006", s.SpecNumber)
	assert.Equal(t, model.SmeKindSubmodel, findType(t, s, "Nameplate").Kind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newProcessor().Run(ctx, doc.Source())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumLiteralIdentifier(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "DE_BY", enumLiteralIdentifier("DE-BY - Bavaria"))
	assert.Equal(t, "A_B_C", enumLiteralIdentifier("A-B-C"))
	assert.Empty(t, enumLiteralIdentifier("-A"))
	assert.Empty(t, enumLiteralIdentifier("Plain"))
}
