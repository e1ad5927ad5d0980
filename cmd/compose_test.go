package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/agreement-cli/internal/model"
)

const sampleAgreement = `{
	"branch_code": "nspahomecare",
	"clt_first_name": "Jane",
	"clt_last_name": "Doe",
	"care_first_name": "Robert",
	"care_last_name": "Doe",
	"hourly_rate": 38,
	"is_live_in": "TRUE"
}`

func TestReadAgreementFile_Stdin(t *testing.T) {
	a, err := readAgreementFile(strings.NewReader(sampleAgreement), "-")
	require.NoError(t, err)
	assert.Equal(t, model.Text("nspahomecare"), a.BranchCode)
	assert.Equal(t, "38", a.HourlyRate.String())
	assert.True(t, bool(a.IsLiveIn))
}

func TestReadAgreementFile_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agreement.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleAgreement), 0644))

	a, err := readAgreementFile(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", a.ClientFirstName.String())
}

func TestReadAgreementFile_Errors(t *testing.T) {
	_, err := readAgreementFile(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = readAgreementFile(strings.NewReader("{not json"), "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode agreement")
}

func TestReadAgreements(t *testing.T) {
	list, err := readAgreements([]byte("[" + sampleAgreement + "," + sampleAgreement + "]"))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	single, err := readAgreements([]byte("\n  " + sampleAgreement))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Robert", single[0].CareFirstName.String())

	_, err = readAgreements([]byte(`"nope"`))
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, "-", []byte("<html>")))
	assert.Equal(t, "<html>", buf.String())

	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, writeOutput(nil, path, []byte("<html>")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
}

func TestComposeCommand_Execute(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "agreement.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleAgreement), 0644))
	t.Setenv("AGREEMENT_LOG_LEVEL", "error")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"compose", "--input", in, "--out", "-", "--document"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		composeInput, composeOutput, composeDocument = "-", "-", false
	})

	require.NoError(t, rootCmd.Execute())

	var doc model.Document
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "nspahomecare", doc.BranchCode)
	assert.True(t, doc.Has("consumer_notice"))
	assert.True(t, doc.Has("live_in"))
}
