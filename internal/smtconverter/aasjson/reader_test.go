package aasjson

import (
	"testing"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nameplateEnvironment = `{
  "submodels": [
    {
      "modelType": "Submodel",
      "id": "https://example.com/ids/sm/1",
      "idShort": "Nameplate",
      "kind": "Template",
      "semanticId": {"type": "ExternalReference", "keys": [{"type": "GlobalReference", "value": "https://admin-shell.io/idta/nameplate/3/0/Nameplate"}]},
      "administration": {"version": "3", "revision": "0"},
      "description": [{"language": "de", "text": "Typenschild"}, {"language": "en", "text": "Digital nameplate"}],
      "submodelElements": [
        {
          "modelType": "MultiLanguageProperty",
          "idShort": "ManufacturerName",
          "semanticId": {"type": "ExternalReference", "keys": [{"type": "GlobalReference", "value": "0173-1#02-AAO677#002"}]},
          "qualifiers": [{"type": "SMT/Cardinality", "valueType": "xs:string", "value": "One"}]
        },
        {
          "modelType": "Property",
          "idShort": "SerialNumber",
          "valueType": "xs:string",
          "value": "12345 | ABC",
          "qualifiers": [{"type": "SMT/Cardinality", "valueType": "xs:string", "value": "ZeroToOne"}]
        },
        {
          "modelType": "SubmodelElementCollection",
          "idShort": "Markings",
          "qualifiers": [{"type": "Multiplicity", "valueType": "xs:string", "value": "ZeroToMany"}],
          "value": [
            {"modelType": "Property", "idShort": "YearOfConstruction", "valueType": "xs:int",
             "qualifiers": [{"type": "SMT/ExampleValue", "valueType": "xs:string", "value": "2024"}]}
          ]
        },
        {"modelType": "Operation", "idShort": "Reset"}
      ]
    }
  ],
  "conceptDescriptions": [
    {
      "modelType": "ConceptDescription",
      "id": "0173-1#02-AAO677#002",
      "isCaseOf": [{"type": "ExternalReference", "keys": [{"type": "GlobalReference", "value": "0173-1#02-AAO677#002"}]}],
      "embeddedDataSpecifications": [
        {
          "dataSpecification": {"type": "ExternalReference", "keys": [{"type": "GlobalReference", "value": "https://admin-shell.io/DataSpecificationTemplates/DataSpecificationIEC61360/3/0"}]},
          "dataSpecificationContent": {
            "modelType": "DataSpecificationIec61360",
            "preferredName": [{"language": "en", "text": "Manufacturer name"}],
            "definition": [{"language": "en", "text": "legally valid designation of the natural or judicial person"}]
          }
        }
      ]
    }
  ]
}`

func TestReadEnvironment(t *testing.T) {
	s, err := NewReader(Options{SpecNumber: "2006"}, nil, nil).Read([]byte(nameplateEnvironment))
	require.NoError(t, err)

	assert.Equal(t, "2006", s.SpecNumber)
	assert.Equal(t, "3.0", s.Version)
	assert.Equal(t, "Nameplate", s.Name)
	require.Len(t, s.Types, 2)

	sm := s.Types[0]
	assert.Equal(t, "Nameplate", sm.IDShort)
	assert.Equal(t, model.SmeKindSubmodel, sm.Kind)
	assert.Equal(t, "iri:https://admin-shell.io/idta/nameplate/3/0/Nameplate", sm.SemanticID)
	assert.Equal(t, "Digital nameplate", sm.Description)
	require.Len(t, sm.Fields, 3)
	require.Len(t, sm.Operations, 1)
	assert.Equal(t, "Reset", sm.Operations[0].IDShort)

	name := sm.Fields[0]
	assert.Equal(t, "ManufacturerName", name.IDShort)
	assert.Equal(t, model.SmeKindMultiLanguageProperty, name.Kind)
	assert.Equal(t, "irdi:0173-1#02-AAO677#002", name.SemanticID)
	assert.Equal(t, 1, name.Lower)
	assert.Equal(t, 1, name.Upper)
	assert.Equal(t, "legally valid designation of the natural or judicial person", name.Description)
	assert.Equal(t, "irdi:0173-1#02-AAO677#002", name.IsCaseOf)

	serial := sm.Fields[1]
	assert.Equal(t, model.TypeString, serial.ValueType)
	assert.Equal(t, []string{"12345", "ABC"}, serial.ExampleValues)
	assert.Equal(t, 0, serial.Lower)
	assert.Equal(t, 1, serial.Upper)

	markings := sm.Fields[2]
	assert.Equal(t, model.SmeKindSmeCollection, markings.Kind)
	assert.Equal(t, "Markings", markings.ValueType)
	assert.Equal(t, textutil.CardinalityUnbounded, markings.Upper)

	collection := s.Types[1]
	assert.Equal(t, "Markings", collection.IDShort)
	assert.Equal(t, model.SmeKindSmeCollection, collection.Kind)
	require.Len(t, collection.Fields, 1)
	year := collection.Fields[0]
	assert.Equal(t, model.TypeInteger, year.ValueType)
	assert.Equal(t, []string{"2024"}, year.ExampleValues)
	assert.Equal(t, textutil.CardinalityUnset, year.Lower)
}

func TestReadDefaultSpecNumber(t *testing.T) {
	s, err := NewReader(Options{}, nil, nil).Read([]byte(nameplateEnvironment))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSpecNumber, s.SpecNumber)
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := NewReader(Options{}, nil, nil).Read([]byte(`{"submodels": [`))
	require.ErrorIs(t, err, smterrors.ErrInvalidEnvironment)
}

func TestReadInvalidEnvironment(t *testing.T) {
	_, err := NewReader(Options{}, nil, nil).Read([]byte(`{"submodels": [{"modelType": "Submodel"}]}`))
	require.ErrorIs(t, err, smterrors.ErrInvalidEnvironment)
}

func TestReadVerifiesEnvironment(t *testing.T) {
	env := `{"submodels": [{"modelType": "Submodel", "id": "https://example.com/sm", "idShort": "1 not valid"}]}`

	_, err := NewReader(Options{Verify: true}, nil, nil).Read([]byte(env))
	require.ErrorIs(t, err, smterrors.ErrEnvironmentVerificationFailed)

	s, err := NewReader(Options{}, nil, nil).Read([]byte(env))
	require.NoError(t, err)
	assert.Equal(t, "1 not valid", s.Types[0].IDShort)
}

func TestParseCardinality(t *testing.T) {
	cases := []struct {
		value string
		lower int
		upper int
		ok    bool
	}{
		{"One", 1, 1, true},
		{"ZeroToOne", 0, 1, true},
		{"ZeroToMany", 0, textutil.CardinalityUnbounded, true},
		{" OneToMany ", 1, textutil.CardinalityUnbounded, true},
		{"Many", textutil.CardinalityUnset, textutil.CardinalityUnset, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			lower, upper, ok := parseCardinality(tc.value)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.lower, lower)
			assert.Equal(t, tc.upper, upper)
		})
	}
}

func TestPreferredText(t *testing.T) {
	assert.Equal(t, "", preferredText[langString](nil))
	assert.Equal(t, "Hallo", preferredText([]langString{text{"de", "Hallo"}}))
	assert.Equal(t, "Hello world", preferredText([]langString{text{"de", "Hallo"}, text{"en-US", "Hello\nworld"}}))
}

type text struct {
	language string
	text     string
}

func (t text) Language() string { return t.language }
func (t text) Text() string     { return t.text }
