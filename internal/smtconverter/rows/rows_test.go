package rows

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	data := `{"name":"IDTA-02006","sheets":[{"name":"Table 1","rows":[["idShort","Nameplate"],["Class",null,"  "]]},{"rows":[]}]}`

	doc, err := ParseJSON([]byte(data), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "IDTA-02006", doc.Name)
	require.Len(t, doc.Sheets, 2)
	assert.Equal(t, 2, doc.RowCount())

	row := doc.Sheets[0].Rows[1]
	require.Len(t, row, 3)
	require.NotNil(t, row[0])
	assert.Equal(t, "Class", *row[0])
	assert.Nil(t, row[1])
	assert.Nil(t, row[2])
}

func TestParseJSONFallbackName(t *testing.T) {
	doc, err := ParseJSON([]byte(`{"sheets":[]}`), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", doc.Name)
}

func TestParseJSONRejectsSchemaViolations(t *testing.T) {
	tests := map[string]string{
		"missing sheets": `{"name":"x"}`,
		"numeric cell":   `{"sheets":[{"rows":[[1]]}]}`,
		"unknown field":  `{"sheets":[],"extra":true}`,
		"not an object":  `[1,2]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSON([]byte(data), "x")
			require.Error(t, err)
			assert.True(t, errors.Is(err, smterrors.ErrInvalidRowDocument))
		})
	}
}

func TestReadCSV(t *testing.T) {
	data := "idShort,Nameplate\n\"[SMC]\nAddress\",\"[IRI] https://admin-shell.io/x\",,1\n,only second\n"

	doc, err := ReadCSV(strings.NewReader(data), "sheet.csv")
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	rows := doc.Sheets[0].Rows
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 2)
	assert.Equal(t, "[SMC]\nAddress", *rows[1][0])
	assert.Nil(t, rows[1][2])
	assert.Equal(t, "1", *rows[1][3])
	assert.Nil(t, rows[2][0])
}

func TestDocumentSource(t *testing.T) {
	doc := &Document{Name: "d", Sheets: []Sheet{
		{Rows: []Row{Text("a"), Text("b")}},
		{},
		{Rows: []Row{Text("c")}},
	}}
	src := doc.Source()
	assert.Equal(t, "d", src.Name())

	var got []string
	for {
		r, err := src.NextRow(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, *r[0])
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := doc.Source().NextRow(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	doc := &Document{Name: "d", Sheets: []Sheet{{Name: "s", Rows: []Row{Text("a", "", "c")}}}}
	data, err := MarshalJSON(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `["a",null,"c"]`)
	back, err := ParseJSON(data, "")
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}
