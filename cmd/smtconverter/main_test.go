package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
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

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "nameplate.csv")
	require.NoError(t, os.WriteFile(file, []byte(nameplateCSV), 0o644))
	return file
}

func TestConvert(t *testing.T) {
	in := writeInput(t)
	out := t.TempDir()

	stdout, err := run(t, "convert", in, "--out", out, "--prefix", "IDTA_", "--workers", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "nameplate.csv -> IDTA_02006_Nameplate")
	ivml, err := os.ReadFile(filepath.Join(out, "IDTA_02006_Nameplate.ivml"))
	require.NoError(t, err)
	assert.Contains(t, string(ivml), "AasSubmodelType IDTA_Nameplate = {")
	_, err = os.Stat(filepath.Join(out, "IDTA_02006_Nameplate.text"))
	assert.NoError(t, err)
}

func TestConvertFailures(t *testing.T) {
	_, err := run(t, "convert")
	assert.Error(t, err)

	_, err = run(t, "convert", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = run(t, "convert", writeInput(t), "--format", "xlsx")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	stdout, err := run(t, "inspect", writeInput(t))
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, "02006", summary["specNumber"])

	stdout, err = run(t, "inspect", writeInput(t), "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"idShort": "Nameplate"`)

	_, err = run(t, "inspect", writeInput(t), "--output", "xml")
	assert.Error(t, err)
}
