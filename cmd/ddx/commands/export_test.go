package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/errors"
)

func setExportFlags(t *testing.T, format, out string) {
	t.Helper()

	origFormat := exportFormat
	origOut := exportOut
	t.Cleanup(func() {
		exportFormat = origFormat
		exportOut = origOut
	})
	exportFormat = format
	exportOut = out
}

func TestRunExport_JSONToStdout(t *testing.T) {
	saveConfigState(t)

	dir := writeParseProject(t, map[string]string{
		"ddx_project.yml":  parseProjectYML,
		"docs/overview.md": "{% docs orders %}\nOrders, one row per order.\n{% enddocs %}\n",
	})
	flags.SetProjectDir(dir)
	setExportFlags(t, "json", "")

	cmd, buf := newCaptureCmd("export")
	require.NoError(t, runExport(cmd, nil))

	var registry map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &registry))
	require.Contains(t, registry, "analytics.orders")

	block := registry["analytics.orders"]
	assert.Equal(t, "orders", block["name"])
	assert.Equal(t, "analytics", block["package_name"])
	assert.Equal(t, "Orders, one row per order.",
		strings.TrimSpace(block["block_contents"].(string)))
}

func TestRunExport_YAMLToFile(t *testing.T) {
	saveConfigState(t)

	dir := writeParseProject(t, map[string]string{
		"ddx_project.yml":  parseProjectYML,
		"docs/overview.md": "{% docs orders %}\nOrders.\n{% enddocs %}\n",
	})
	flags.SetProjectDir(dir)

	outPath := filepath.Join(t.TempDir(), "registry.yml")
	setExportFlags(t, "yaml", outPath)

	cmd, buf := newCaptureCmd("export")
	require.NoError(t, runExport(cmd, nil))
	assert.Empty(t, buf.String(), "file export should not write to stdout")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var registry map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &registry))
	require.Contains(t, registry, "analytics.orders")
	assert.Equal(t, "orders", registry["analytics.orders"]["name"])
}

func TestRunExport_InvalidFormat(t *testing.T) {
	saveConfigState(t)
	setExportFlags(t, "xml", "")

	cmd, _ := newCaptureCmd("export")
	err := runExport(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFormat)

	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Suggestion, "valid formats")
}

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", exportCmd.Use)
	assert.NotEmpty(t, exportCmd.Short)
	assert.NotNil(t, exportCmd.Flags().Lookup("format"))
	assert.NotNil(t, exportCmd.Flags().Lookup("out"))
}
