package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doctext/internal/core/domain"
)

func TestIdentifyCmd_RequiresArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := run("identify")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestIdentifyCmd_Plain(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.extraction.idents = map[string]domain.Identification{
		"/data/a.txt": {MIMEType: "text/plain", Encoding: "utf-8", DocumentType: domain.DocumentTypeText},
		"/data/b.pdf": {MIMEType: domain.MIMETypePDF, DocumentType: domain.DocumentTypePDF},
	}

	out, err := run("identify", "/data/a.txt", "/data/b.pdf")

	require.NoError(t, err)
	assert.Contains(t, out, "/data/a.txt")
	assert.Contains(t, out, "text/plain")
	assert.Contains(t, out, "utf-8")
	assert.Contains(t, out, "/data/b.pdf")
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "(unknown)")
}

func TestIdentifyCmd_JSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.extraction.idents = map[string]domain.Identification{
		"/data/book.xlsx": {MIMEType: domain.MIMETypeSpreadsheet, DocumentType: domain.DocumentTypeSpreadsheet},
	}

	out, err := run("identify", "--json", "/data/book.xlsx", "/data/unknown.bin")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second domain.Identification
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, domain.DocumentTypeSpreadsheet, first.DocumentType)
	assert.Equal(t, "/data/unknown.bin", second.Path)
	assert.Equal(t, domain.DocumentTypeUnsupported, second.DocumentType)
	assert.Empty(t, second.MIMEType)
}

func TestStylesFor_NonTerminalIsPlain(t *testing.T) {
	st := stylesFor(new(strings.Builder))
	assert.Equal(t, "value", st.Value.Render("value"))
	assert.Equal(t, "key", st.Label.Render("key"))
}
