package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-workers/internal/legal/timeline"
	"legal-workers/pkg/registry"
)

func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	log = zap.NewNop()
	plain = true
	lang = "en"
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunTypes(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runTypes(cmd, nil))
	assert.Contains(t, buf.String(), "complaint")
	assert.Contains(t, buf.String(), "Employment Contract")

	buf.Reset()
	lang = "fr"
	require.NoError(t, runTypes(cmd, nil))
	assert.Contains(t, buf.String(), "Contrat de Travail")
}

func TestRunFields(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runFields(cmd, []string{"Complaint"}))
	out := buf.String()
	assert.Contains(t, out, "* fullName")
	assert.Contains(t, out, "courtRegion")
	assert.Contains(t, out, "northwest")

	assert.Error(t, runFields(cmd, []string{"lawsuit"}))
}

func TestRunReferences(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runReferences(cmd, []string{"a", "dispute", "with", "my", "landlord"}))
	assert.Contains(t, buf.String(), "Land Ordinance 1974")

	buf.Reset()
	require.NoError(t, runReferences(cmd, []string{"nothing", "relevant"}))
	assert.Equal(t, "no references matched\n", buf.String())

	buf.Reset()
	require.NoError(t, runReferences(cmd, nil))
	assert.Contains(t, buf.String(), "Per Land Ordinance 1974, Section 8(1)(d)")
}

func TestRunRender(t *testing.T) {
	cmd, buf := setup(t)
	dir := t.TempDir()
	renderFlags = documentFlags{
		docType: "contract",
		set: []string{
			"fullName=Jean Paul",
			"employerName=Acme SARL",
			"employeeRole=Accountant",
			"startDate=2024-01-15",
			"salary=150000",
		},
		date: "2024-01-10",
	}
	renderFormats = []string{"html", "pdf"}
	renderOutDir = dir

	require.NoError(t, runRender(cmd, nil))

	htmlPath := filepath.Join(dir, "contract_Jean_Paul.html")
	pdfPath := filepath.Join(dir, "contract_Jean_Paul.pdf")
	assert.Equal(t, htmlPath+"\n"+pdfPath+"\n", buf.String())

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Acme SARL")

	pdf, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRunRender_FieldsFile(t *testing.T) {
	cmd, _ := setup(t)
	dir := t.TempDir()
	fieldsFile := filepath.Join(dir, "fields.json")
	require.NoError(t, os.WriteFile(fieldsFile, []byte(`{"fullName":"Marie Ngo","executorName":"Paul Ngo"}`), 0o644))

	renderFlags = documentFlags{docType: "will", fieldsFile: fieldsFile}
	renderFormats = []string{"md"}
	renderOutDir = dir

	require.NoError(t, runRender(cmd, nil))
	md, err := os.ReadFile(filepath.Join(dir, "will_Marie_Ngo.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "Paul Ngo")
}

func TestRunRender_NumericFieldsFile(t *testing.T) {
	cmd, _ := setup(t)
	dir := t.TempDir()
	fieldsFile := filepath.Join(dir, "fields.json")
	require.NoError(t, os.WriteFile(fieldsFile, []byte(`{"fullName":"Jean Paul","salary":150000,"bonus":null}`), 0o644))

	renderFlags = documentFlags{docType: "contract", fieldsFile: fieldsFile}
	renderFormats = []string{"md"}
	renderOutDir = dir

	require.NoError(t, runRender(cmd, nil))
	md, err := os.ReadFile(filepath.Join(dir, "contract_Jean_Paul.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "Salary: 150000 FCFA per month")

	require.NoError(t, os.WriteFile(fieldsFile, []byte(`{"fullName":{"first":"Jean"}}`), 0o644))
	assert.Error(t, runRender(cmd, nil))
}

func TestRunRender_StaysInOutputDirectory(t *testing.T) {
	cmd, buf := setup(t)
	root := t.TempDir()
	out := filepath.Join(root, "a", "b")

	renderFlags = documentFlags{docType: "contract", set: []string{"fullName=x/../../escaped"}}
	renderFormats = []string{"html", "md"}
	renderOutDir = out

	require.NoError(t, runRender(cmd, nil))
	for _, path := range strings.Fields(buf.String()) {
		assert.Equal(t, out, filepath.Dir(path))
	}
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"contract_x_escaped.html", "contract_x_escaped.md"}, names)

	_, err = os.Stat(filepath.Join(root, "escaped.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "a", "escaped.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRender_Errors(t *testing.T) {
	cmd, _ := setup(t)
	renderOutDir = t.TempDir()
	renderFormats = []string{"html"}

	tests := []struct {
		name  string
		flags documentFlags
	}{
		{name: "bad set", flags: documentFlags{docType: "complaint", set: []string{"fullName"}}},
		{name: "unknown type", flags: documentFlags{docType: "lawsuit"}},
		{name: "bad date", flags: documentFlags{docType: "complaint", date: "someday"}},
		{name: "missing signature", flags: documentFlags{docType: "complaint", signature: "/nonexistent.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderFlags = tt.flags
			assert.Error(t, runRender(cmd, nil))
		})
	}

	renderFlags = documentFlags{docType: "complaint"}
	renderFormats = []string{"docx"}
	assert.Error(t, runRender(cmd, nil))
}

func TestRunPreview(t *testing.T) {
	cmd, buf := setup(t)
	previewFlags = documentFlags{
		docType: "complaint",
		set:     []string{"fullName=Jean Paul", "description=a dispute with my landlord"},
		date:    "2024-01-10",
	}
	require.NoError(t, runPreview(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "COMPLAINT")
	assert.Contains(t, out, "Jean Paul")
	assert.Contains(t, out, "Land Ordinance 1974")
}

func TestParseDeadline(t *testing.T) {
	d, err := parseDeadline("File Response=30")
	require.NoError(t, err)
	assert.Equal(t, timeline.Deadline{Name: "File Response", Days: 30}, d)

	d, err = parseDeadline(" Hearing ")
	require.NoError(t, err)
	assert.Equal(t, timeline.Deadline{Name: "Hearing", Days: timeline.NewDeadlineDays}, d)

	_, err = parseDeadline("Hearing=soon")
	assert.Error(t, err)
}

func TestRunTimeline(t *testing.T) {
	cmd, buf := setup(t)
	caseType = "civil"
	startDate = "2024-01-15"
	deadlines = nil

	require.NoError(t, runTimeline(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "Civil Case")
	assert.Contains(t, out, "January 15, 2024")
	assert.Contains(t, out, "February 14, 2024")

	buf.Reset()
	deadlines = []string{"Hearing=60"}
	require.NoError(t, runTimeline(cmd, nil))
	assert.Contains(t, buf.String(), "March 15, 2024")
	assert.NotContains(t, buf.String(), "File Response")

	startDate = "2024-13-45"
	assert.Error(t, runTimeline(cmd, nil))
	deadlines = nil
}

func TestRunAsk(t *testing.T) {
	cmd, buf := setup(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "can my landlord evict me", req["question"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"Only with a court order.","source":"Judiciary"}`))
	}))
	defer srv.Close()

	askBaseURL = srv.URL
	askTimeout = 2 * time.Second
	askRetries = 0

	require.NoError(t, runAsk(cmd, []string{"can", "my", "landlord", "evict", "me"}))
	assert.Contains(t, buf.String(), "Only with a court order.")
	assert.Contains(t, buf.String(), "*Source: Judiciary*")
}

func TestRunAsk_Fallback(t *testing.T) {
	cmd, buf := setup(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	askBaseURL = srv.URL
	askTimeout = 2 * time.Second
	askRetries = 0

	assert.Error(t, runAsk(cmd, []string{"hello"}))
	assert.NotEmpty(t, buf.String())

	askBaseURL = ""
	assert.Error(t, runAsk(cmd, []string{"hello"}))
}

func TestActivities(t *testing.T) {
	cmd, buf := setup(t)
	registryPath = filepath.Join(t.TempDir(), "configs", "activity-registry.json")

	require.NoError(t, runActivitiesSync(cmd, nil))
	assert.Contains(t, buf.String(), "holds 6 activities")

	reg, err := registry.LoadRegistry(registryPath)
	require.NoError(t, err)
	require.Len(t, reg.Activities, 6)
	a, ok := reg.Find("generate-document")
	require.True(t, ok)
	assert.Equal(t, "legal.generate-document", a.TaskType)
	assert.Contains(t, a.ErrorCodes, "ARTIFACT_SAVE_FAILED")

	// a second sync replaces instead of duplicating
	require.NoError(t, runActivitiesSync(cmd, nil))

	buf.Reset()
	require.NoError(t, runActivitiesUpdate(cmd, []string{"ask-question", "status", "verified"}))
	assert.Contains(t, buf.String(), "Updated activity ask-question")

	buf.Reset()
	require.NoError(t, runActivitiesList(cmd, nil))
	assert.Contains(t, buf.String(), "legal.ask-question")
	assert.Contains(t, buf.String(), "verified")

	buf.Reset()
	require.NoError(t, runActivitiesValidate(cmd, nil))
	assert.Contains(t, buf.String(), "Found 6 activities")

	assert.Error(t, runActivitiesUpdate(cmd, []string{"missing", "status", "verified"}))
}
