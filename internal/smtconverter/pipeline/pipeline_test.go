package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nameplateCSV = `IDTA 02006-2-0 Digital Nameplate
idShort,Nameplate
Class,Submodel
semanticId,[IRI] https://admin-shell.io/zvei/nameplate/2/0/Nameplate
Explanation,Contains the nameplate information
[SME type],semanticId = [idType]value,[valueType],card.
idShort,Description@en,example,
"[MLP]
ManufacturerName","[IRDI] 0173-1#02-AAO677#002
Legally valid designation","[langString]
Muster AG@en",1
[Prop] SerialNumber,[IRDI] 0173-1#02-AAM556#002 Serial number,[xs:string] 12345678,0..1
`

const nameplateRows = `{"name":"nameplate","sheets":[{"name":"Table 1","rows":[
  ["IDTA 02006-2-0 Digital Nameplate"],
  ["idShort","Nameplate"],
  ["Class","Submodel"]
]}]}`

const nameplateAAS = `{"submodels":[{"modelType":"Submodel","id":"https://example.com/sm","idShort":"Nameplate",
  "submodelElements":[{"modelType":"Property","idShort":"SerialNumber","valueType":"xs:string"}]}]}`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{"csv extension", "nameplate.CSV", nameplateRows, FormatCSV},
		{"plain text", "nameplate.txt", nameplateCSV, FormatCSV},
		{"empty", "x", "  ", FormatCSV},
		{"row document", "x.json", nameplateRows, FormatJSON},
		{"aas environment", "x.json", nameplateAAS, FormatAAS},
		{"unknown object", "x.json", `{"a":1}`, FormatJSON},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormat(tc.file, []byte(tc.data)))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	f, err = ParseFormat(" AAS ")
	require.NoError(t, err)
	assert.Equal(t, FormatAAS, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, smterrors.ErrUnsupportedFormat)
}

func TestConvertCSV(t *testing.T) {
	c := NewConverter(DefaultOptions())

	r, err := c.Convert(context.Background(), Input{Name: "nameplate.csv", Data: []byte(nameplateCSV)})
	require.NoError(t, err)

	assert.Equal(t, FormatCSV, r.Format)
	assert.Equal(t, "IDTA_02006_Nameplate", r.Project)
	assert.Equal(t, "02006", r.Summary.SpecNumber)
	np, ok := r.Summary.FindType("Nameplate")
	require.True(t, ok)
	require.Len(t, np.Fields, 2)
	assert.Equal(t, "xs:string", np.Fields[1].ValueType)
	assert.Equal(t, model.TypeString, np.Fields[1].IvmlValueType(model.NewBasicTypes(), false))

	out := string(r.IVML)
	assert.True(t, strings.HasPrefix(out, "project IDTA_02006_Nameplate {"))
	assert.Contains(t, out, "AasSubmodelType Nameplate = {")
	assert.Contains(t, out, `name = "SerialNumber"`)
	assert.Contains(t, string(r.Index), "IDTA_02006_Nameplate::Nameplate")
	assert.False(t, r.Report.HasErrors())
}

func TestConvertRowDocument(t *testing.T) {
	c := NewConverter(DefaultOptions())

	r, err := c.Convert(context.Background(), Input{Name: "upload", Format: FormatJSON, Data: []byte(nameplateRows)})
	require.NoError(t, err)
	assert.Equal(t, "IDTA_02006_Nameplate", r.Project)
	assert.Equal(t, "2.0", r.Summary.Version)
}

func TestConvertAAS(t *testing.T) {
	c := NewConverter(DefaultOptions())

	r, err := c.Convert(context.Background(), Input{Name: "env.json", Data: []byte(nameplateAAS), SpecNumber: "2006"})
	require.NoError(t, err)
	assert.Equal(t, FormatAAS, r.Format)
	assert.Equal(t, "IDTA_02006_Nameplate", r.Project)
	assert.Contains(t, string(r.IVML), `name = "SerialNumber"`)
}

func TestConvertEmptyDocument(t *testing.T) {
	c := NewConverter(DefaultOptions())

	_, err := c.Convert(context.Background(), Input{Name: "empty.csv", Data: []byte("just,some\nrandom,text\n")})
	assert.ErrorIs(t, err, smterrors.ErrEmptyDocument)
}

func TestConvertInvalidInput(t *testing.T) {
	c := NewConverter(DefaultOptions())

	_, err := c.Convert(context.Background(), Input{Name: "x", Format: FormatJSON, Data: []byte(`{"rows":1}`)})
	assert.ErrorIs(t, err, smterrors.ErrInvalidRowDocument)

	_, err = c.Convert(context.Background(), Input{Name: "x", Format: FormatAAS, Data: []byte(`[`)})
	assert.ErrorIs(t, err, smterrors.ErrInvalidEnvironment)

	_, err = c.Convert(context.Background(), Input{Name: "x", Format: "xlsx", Data: []byte(`a`)})
	assert.ErrorIs(t, err, smterrors.ErrUnsupportedFormat)
}

func TestConvertCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConverter(DefaultOptions()).Convert(ctx, Input{Name: "nameplate.csv", Data: []byte(nameplateCSV)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNamePrefix(t *testing.T) {
	opts := DefaultOptions()
	opts.IVML.NamePrefix = "IDTA_"

	r, err := NewConverter(opts).Convert(context.Background(), Input{Name: "nameplate.csv", Data: []byte(nameplateCSV)})
	require.NoError(t, err)
	assert.Contains(t, string(r.IVML), "AasSubmodelType IDTA_Nameplate = {")
}

type recorder struct {
	mu      sync.Mutex
	formats []Format
	failed  int
}

func (r *recorder) ObserveConversion(format Format, _ *Result, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats = append(r.formats, format)
	if err != nil {
		r.failed++
	}
}

func TestConvertAll(t *testing.T) {
	rec := &recorder{}
	c := NewConverter(DefaultOptions()).WithObserver(rec)
	inputs := []Input{
		{Name: "a.csv", Data: []byte(nameplateCSV)},
		{Name: "b.json", Data: []byte(nameplateRows)},
		{Name: "c.json", Data: []byte(nameplateAAS)},
	}

	results, err := c.ConvertAll(context.Background(), inputs, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, inputs[i].Name, r.Name)
	}
	assert.Equal(t, FormatAAS, results[2].Format)
	assert.ElementsMatch(t, []Format{FormatCSV, FormatJSON, FormatAAS}, rec.formats)
	assert.Zero(t, rec.failed)
}

func TestConvertAllStopsOnError(t *testing.T) {
	c := NewConverter(DefaultOptions())
	inputs := []Input{
		{Name: "a.csv", Data: []byte(nameplateCSV)},
		{Name: "broken.json", Format: FormatAAS, Data: []byte(`[`)},
	}

	results, err := c.ConvertAll(context.Background(), inputs, 0)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, smterrors.ErrInvalidEnvironment)
	assert.Contains(t, err.Error(), "broken.json")
}
