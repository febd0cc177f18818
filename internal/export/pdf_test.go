package export

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/render"
)

func TestStageHTML_WritesStandalonePage(t *testing.T) {
	doc := model.New("test")
	doc = doc.UpdateSection(model.SectionProfile, "fullName", "Ada Lovelace")
	doc = doc.UpdateSection(model.SectionProfile, "designation", "Engineer")

	// Export renders at natural size: no available width.
	tree, err := render.Render(doc, model.DefaultTheme(), model.Template1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, tree.Scale)

	path, cleanup, err := stageHTML(tree)
	require.NoError(t, err)
	defer cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Ada Lovelace")

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPDF_NilTreeRejected(t *testing.T) {
	_, err := PDF(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Empty(t, opts.ChromePath)
}
