package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	t.Parallel()
	cases := []struct {
		jobTitle string
		company  string
		want     string
	}{
		{"Backend Engineer", "Acme Corp", "backend_engineer_acme_corp.txt"},
		{"Sr. Engineer (L5)", "Big-Co!", "sr_engineer_l5_bigco.txt"},
		{"", "", "resume.txt"},
		{"   ", "  ", "resume.txt"},
		{"データ", "会社", "resume.txt"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExportFilename(tc.jobTitle, tc.company, ".txt"), "%q/%q", tc.jobTitle, tc.company)
	}
}

func TestExportText(t *testing.T) {
	t.Parallel()
	svc := &ResumeService{}

	file, err := svc.ExportText(ExportRequest{
		Content:  "John Doe\nBackend Engineer",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "backend_engineer_acme.txt", file.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)
	assert.Equal(t, "John Doe\nBackend Engineer", string(file.Body))
}

func TestExportText_RequiresContent(t *testing.T) {
	t.Parallel()
	svc := &ResumeService{}

	_, err := svc.ExportText(ExportRequest{Content: "  \n "})
	assert.ErrorIs(t, err, ErrValidation)
}
