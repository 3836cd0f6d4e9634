package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIdentifier(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "IDTA_02006_Digital_Nameplate", ToIdentifier(" IDTA 02006 Digital Nameplate "))
	assert.Equal(t, "a_b_c", ToIdentifier("a-b.c"))
	assert.Equal(t, "Größe", ToIdentifier("Größe"))
}

func TestToLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, ToLines("a\r\nb\nc\n"))
	assert.Equal(t, []string{""}, ToLines(""))
	assert.Empty(t, ToLines("\n"))
	assert.Equal(t, []string{"a", "", "b"}, ToLines("a\n\nb"))
}

func TestBracketsAndTypeNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, removed, fixed string
	}{
		{"[Property]", "Property", "Property"},
		{"[Submodel Element Collection]", "SubmodelElementCollection", "SubmodelElementCollection"},
		{"[0..1] 3", "0..1", "0..1"},
		{"xs:string", "xs:string", "xs:string"},
		{"xs:string [opt]", "xs:string [opt]", "xs:string"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.removed, RemoveBrackets(tt.in))
			assert.Equal(t, tt.fixed, FixTypeName(tt.in))
		})
	}
}

func TestWhitespaceHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", RemoveWhitespace(" a\nb\rc "))
	assert.Equal(t, "a b c", RemoveLinebreaks("a\r\nb\nc"))
	assert.Equal(t, 4, ConsumeWhitespaces("a   b", 1))
	assert.Equal(t, 1, ConsumeNonWhitespaces("a   bcd", 0))
	assert.Equal(t, 7, ConsumeNonWhitespaces("a   bcd", 5))
	assert.True(t, IsBlank(" \n"))
}

func TestFixedIDShortNote(t *testing.T) {
	t.Parallel()
	fixed, known := FixedIDShortNote("Note: the above idShort shall always be as stated.")
	assert.True(t, fixed)
	assert.True(t, known)
	fixed, known = FixedIDShortNote("Note: the idShort can be chosen freely.")
	assert.False(t, fixed)
	assert.True(t, known)
	fixed, known = FixedIDShortNote("Note: a different idShort might be used, e.g. for domains")
	assert.False(t, fixed)
	assert.True(t, known)
	_, known = FixedIDShortNote("Note: something else")
	assert.False(t, known)
}

func TestRemoveQuotes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "value", RemoveQuotes("“value”"))
	assert.Equal(t, "“a” or “b”", RemoveQuotes("“a” or “b”"))
	assert.Equal(t, "item", RemoveQuotes(string(Bullet)+" item"))
	assert.Equal(t, "", RemoveQuotes(""))
}

func TestIsGenericIDShort(t *testing.T) {
	t.Parallel()
	for _, id := range []string{"{arbitrary}", "{Variable}", "{LocalId", "{Marking}", "<no idShort>", "<NoIdShort>"} {
		assert.True(t, IsGenericIDShort(id), id)
	}
	for _, id := range []string{"", "Marking", "Marking{00}"} {
		assert.False(t, IsGenericIDShort(id), id)
	}
}

func TestFilterLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name, in, want string
	}{
		{"plain", "Manufacturer name", "Manufacturer name"},
		{"english preferred", "@de Hersteller @en Manufacturer", "Manufacturer"},
		{"other language", "@de Hersteller", "Hersteller"},
		{"colon after language", "@en: Manufacturer", "Manufacturer"},
		{"definition form", "preferredName @en Name definition @en The name of the thing", "The name of the thing"},
		{"mail address ignored", "write to info@example.com", "write to info@example.com"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FilterLanguage(tt.in))
		})
	}
}

func TestSemanticIDMarkers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, CountSemanticIDMarkers("[IRI] a or [IRDI] b"))
	assert.Equal(t, 2, CountSemanticIDMarkers("[IRDI] a or [IRDI] b"))
	assert.Equal(t, 1, CountSemanticIDMarkers("[IRDI PATH] a"))
	assert.Equal(t, 0, CountSemanticIDMarkers("none"))
	assert.True(t, HasSemanticIDMarker("[IRI]https://x"))
	assert.False(t, HasSemanticIDMarker(" [IRI]https://x"))

	assert.Equal(t, "[IRDI]0173-1#02-AAO677#002", NormalizeSemanticIDSpec("[[IRDI]0173-1#02-AAO677#002"))
	assert.Equal(t, "[IRDI]0173-1#02-AAO677#002", NormalizeSemanticIDSpec("[IRDI PATH]0173-1#01-AHF578#001/0173-1#02-AAO677#002"))
	assert.True(t, IsSemanticIDSpec("[IRI] https://x", true))
	assert.False(t, IsSemanticIDSpec("[IRI]https://x", true))
	assert.True(t, IsSemanticIDSpec("[IRI]https://x", false))
}

func TestParseCardinality(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in           string
		lower, upper int
	}{
		{"0..*", 0, CardinalityUnbounded},
		{"[0..1]", 0, 1},
		{"1", 1, 1},
		{"*", 0, CardinalityUnbounded},
		{"1…n", 1, CardinalityUnbounded},
		{"1 or 2..3", 2, 3},
		{"n/a", CardinalityUnset, CardinalityUnset},
		{"many", CardinalityUnset, CardinalityUnset},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			lower, upper := ParseCardinality(tt.in)
			assert.Equal(t, tt.lower, lower)
			assert.Equal(t, tt.upper, upper)
		})
	}
	assert.False(t, IsBounded(CardinalityUnset))
	assert.False(t, IsBounded(CardinalityUnbounded))
	assert.True(t, IsBounded(0))
}

func TestSplitExamples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		data      string
		valueType string
		mlp       bool
		more      []string
		want      []string
	}{
		{"single", "Muster AG", "xs:string", false, nil, []string{"Muster AG"}},
		{"or separated", "red or: green or: blue", "xs:string", false, nil, []string{"red", "green", "blue"}},
		{"repeated type", "1 [xs:int]2 [xs:int]3", "xs:int", false, nil, []string{"1", "2", "3"}},
		{"quoted list", `"a", "b"`, "xs:string", false, nil, []string{`"a"`, `"b"`}},
		{"typographic quotes", "“a”", "xs:string", false, nil, []string{"a"}},
		{"multi language", "Hallo@de Hello@en", "", true, nil, []string{"Hallo@de", "Hello@en"}},
		{"lines", "a\nb", "xs:string", false, nil, []string{"a", "b"}},
		{"more lines", "a", "xs:string", false, []string{"b"}, []string{"a", "b"}},
		{"see section", "See section 2.3", "xs:string", false, nil, nil},
		{"blank", " ", "xs:string", false, nil, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitExamples(tt.data, tt.valueType, tt.mlp, tt.more))
		})
	}
}

func TestMisc(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "StringType", StripRefBy("refBy(StringType)"))
	assert.Equal(t, "StringType", StripRefBy("StringType"))
	assert.Equal(t, "text ", RemoveNote("text Note: ignored"))
	assert.Equal(t, "Note: only", RemoveNote("Note: only"))
	assert.Equal(t, "Note: b", LastNoteComment("Note: a Note: b"))
	assert.True(t, IsIgnoredExample("See below"))
	assert.Equal(t, []string{"a", "b"}, SplitDropTrailing("a@b@@", "@"))
}
