package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panelarea"
)

const consoleLayout = `
area "console" {
  direction   = "horizontal"
  gutter_size = 6
  gap         = 4
  policy      = "split"

  region "nav" {
    title    = "Navigation"
    size     = 25
    max_size = 40

    area "nav_split" {
      direction = "vertical"
      region "tree"  { size = 70 }
      region "props" { size = 30 }
    }
  }

  region "toolbar" {
    size        = null
    auto_length = 48
  }

  region "main" {
    size      = "75"
    collapsed = true
  }
}

area "secondary" {
  region "a" {}
  region "b" {}
}
`

func TestParse_DecodesAreasAndRegions(t *testing.T) {
	f, err := Parse([]byte(consoleLayout), "console.hcl")
	require.NoError(t, err)
	require.Len(t, f.Areas, 2)

	root := f.Root()
	require.NotNil(t, root)
	assert.Equal(t, "console", root.Name)
	require.Len(t, root.Regions, 3)

	nav := root.Regions[0]
	assert.Equal(t, "Navigation", nav.Title)
	assert.True(t, nav.sized)
	assert.InDelta(t, 25.0, nav.size, 1e-9)
	require.NotNil(t, nav.Area)
	assert.Equal(t, "nav_split", nav.Area.Name)

	toolbar := root.Regions[1]
	assert.False(t, toolbar.sized, "null size means auto")

	main := root.Regions[2]
	assert.True(t, main.sized, "string sizes convert to numbers")
	assert.InDelta(t, 75.0, main.size, 1e-9)

	assert.NotNil(t, f.Area("secondary"))
	assert.Nil(t, f.Area("missing"))
}

func TestBuild_CreatesConfiguredArea(t *testing.T) {
	f, err := Parse([]byte(consoleLayout), "console.hcl")
	require.NoError(t, err)

	area := f.Root().Build()
	assert.Equal(t, "console", area.ID())
	assert.Equal(t, panelarea.Horizontal, area.Direction())
	assert.Equal(t, panelarea.ResizeSplit, area.Policy())
	assert.Equal(t, float32(6), area.GutterSize())
	assert.Equal(t, float32(4), area.Gap())

	nav := area.Region("nav")
	require.NotNil(t, nav)
	size, sized := nav.Size()
	assert.True(t, sized)
	assert.InDelta(t, 25.0, size, 1e-9)
	assert.InDelta(t, 40.0, nav.MaxSize(), 1e-9)

	toolbar := area.Region("toolbar")
	require.NotNil(t, toolbar)
	_, sized = toolbar.Size()
	assert.False(t, sized)
	assert.Equal(t, float32(48), toolbar.IntrinsicLength())
	assert.Equal(t, "toolbar", toolbar.Title(), "title defaults to the block label")

	main := area.Region("main")
	require.NotNil(t, main)
	assert.True(t, main.Collapsed())

	// Two sized regions, one gutter; the auto region sits outside the pool.
	assert.Len(t, area.Gutters(), 1)

	nested := nav.Content()
	require.NotNil(t, nested)
	assert.Equal(t, panelarea.Vertical, nested.Direction())
	assert.Len(t, nested.Regions(), 2)
	assert.Same(t, nav, nested.Parent())
}

func TestBuild_NormalizesUnsizedRegions(t *testing.T) {
	f, err := Parse([]byte(consoleLayout), "console.hcl")
	require.NoError(t, err)

	area := f.Area("secondary").Build()
	for _, r := range area.Regions() {
		size, sized := r.Size()
		assert.True(t, sized)
		assert.InDelta(t, 50.0, size, 1e-9)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		summary string
	}{
		{
			name:    "unknown direction",
			src:     `area "a" { direction = "diagonal" }`,
			summary: "Invalid direction",
		},
		{
			name:    "unknown policy",
			src:     `area "a" { policy = "elastic" }`,
			summary: "Invalid policy",
		},
		{
			name:    "negative gutter",
			src:     `area "a" { gutter_size = -1 }`,
			summary: "Invalid gutter size",
		},
		{
			name:    "size out of range",
			src:     "area \"a\" {\n  region \"r\" { size = 150 }\n}",
			summary: "Invalid size",
		},
		{
			name:    "size not a number",
			src:     "area \"a\" {\n  region \"r\" { size = \"wide\" }\n}",
			summary: "Invalid size",
		},
		{
			name:    "min size out of range",
			src:     "area \"a\" {\n  region \"r\" { min_size = 120 }\n}",
			summary: "Invalid min_size",
		},
		{
			name:    "duplicate region",
			src:     "area \"a\" {\n  region \"r\" {}\n  region \"r\" {}\n}",
			summary: "Duplicate region",
		},
		{
			name:    "duplicate area",
			src:     "area \"a\" {}\narea \"a\" {}",
			summary: "Duplicate area",
		},
		{
			name:    "invalid nested area",
			src:     "area \"a\" {\n  region \"r\" {\n    area \"n\" { direction = \"sideways\" }\n  }\n}",
			summary: "Invalid direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)

			var diags hcl.Diagnostics
			require.True(t, errors.As(err, &diags), "error should wrap hcl.Diagnostics")
			require.True(t, diags.HasErrors())
			assert.Equal(t, tt.summary, diags[0].Summary)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte(`area "a" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.hcl")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.hcl")
	require.NoError(t, os.WriteFile(path, []byte(consoleLayout), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Areas, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
