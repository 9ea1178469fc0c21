package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"zoning/internal/domain/intake"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenParse_RoundTrip(t *testing.T) {
	header := []string{"Name", "Sex", "Area (sqm)"}
	rows := [][]string{
		{"Juan Dela Cruz", "Male", "250"},
		{"Maria Clara", "Female", "1200"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Applicants", header, rows))

	parsed, err := Parse(&buf)

	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, intake.RawRow{"Name": "Juan Dela Cruz", "Sex": "Male", "Area (sqm)": "250"}, parsed[0])
	assert.Equal(t, intake.RawRow{"Name": "Maria Clara", "Sex": "Female", "Area (sqm)": "1200"}, parsed[1])
}

func TestParse_ShortRowsLeaveColumnsAbsent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Applicants", []string{"Name", "Address"}, [][]string{{"Juan Dela Cruz"}}))

	parsed, err := Parse(&buf)

	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Juan Dela Cruz", parsed[0]["Name"])
	_, present := parsed[0]["Address"]
	assert.False(t, present)
}

func TestParse_SkipsBlankRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Applicants", []string{"Name", "Address"}, [][]string{
		{"Juan Dela Cruz", "Purok 4"},
		{"", ""},
		{"  ", ""},
		{"Maria Clara", "Quezon Street"},
	}))

	parsed, err := Parse(&buf)

	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Juan Dela Cruz", parsed[0]["Name"])
	assert.Equal(t, "Maria Clara", parsed[1]["Name"])
}

func TestParse_GarbageBytesAreMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not a workbook"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedWorkbook))
}

func TestWrite_HeaderOnlyWorkbookParsesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Applicants", []string{"Name"}, nil))

	parsed, err := Parse(&buf)

	require.NoError(t, err)
	assert.Empty(t, parsed)
}
