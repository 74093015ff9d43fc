// Package config loads panelarea layouts declared in HCL.
//
// A layout file holds one or more area blocks. Each area lists its regions in
// order; a region may nest another area:
//
//	area "console" {
//	  direction = "horizontal"
//	  policy    = "hard_stop"
//
//	  region "nav" {
//	    title    = "Navigation"
//	    size     = 25
//	    max_size = 40
//
//	    area "nav_split" {
//	      direction = "vertical"
//	      region "tree"  { size = 70 }
//	      region "props" { size = 30 }
//	    }
//	  }
//	  region "main" { size = 75 }
//	}
//
// A region whose size is omitted or null is auto-sized and takes
// auto_length pixels.
package config

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/go-theft-auto/panelarea"
)

// File is a decoded layout file.
type File struct {
	Areas []*AreaBlock `hcl:"area,block"`
}

// AreaBlock declares one Area.
type AreaBlock struct {
	Name       string         `hcl:"name,label"`
	Direction  string         `hcl:"direction,optional"`
	GutterSize *float64       `hcl:"gutter_size,optional"`
	Gap        *float64       `hcl:"gap,optional"`
	Policy     string         `hcl:"policy,optional"`
	Regions    []*RegionBlock `hcl:"region,block"`

	direction panelarea.Direction
	policy    panelarea.ResizePolicy
}

// RegionBlock declares one Region.
type RegionBlock struct {
	Name       string         `hcl:"name,label"`
	Title      string         `hcl:"title,optional"`
	Size       hcl.Expression `hcl:"size,optional"`
	MinSize    *float64       `hcl:"min_size,optional"`
	MaxSize    *float64       `hcl:"max_size,optional"`
	AutoLength *float64       `hcl:"auto_length,optional"`
	Hidden     bool           `hcl:"hidden,optional"`
	Collapsed  bool           `hcl:"collapsed,optional"`
	Fullscreen bool           `hcl:"fullscreen,optional"`
	Area       *AreaBlock     `hcl:"area,block"`

	size  float64
	sized bool
}

// Load parses and validates the layout file at path.
func Load(path string) (*File, error) {
	slog.Debug("Decoding layout file.", "path", path)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse parses and validates layout source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*File, error) {
	var f File
	diags := gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode layout %s: %w", filename, diags)
	}

	seen := make(map[string]bool, len(f.Areas))
	for _, a := range f.Areas {
		if seen[a.Name] {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate area",
				Detail:   fmt.Sprintf("Area %q is declared more than once.", a.Name),
			})
		}
		seen[a.Name] = true
		diags = diags.Extend(a.validate())
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid layout %s: %w", filename, diags)
	}

	slog.Debug("Successfully decoded layout.", "file", filename, "areas_found", len(f.Areas))
	return &f, nil
}

// Area returns the area block with the given name, or nil.
func (f *File) Area(name string) *AreaBlock {
	for _, a := range f.Areas {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Root returns the first area block, or nil for an empty file.
func (f *File) Root() *AreaBlock {
	if len(f.Areas) == 0 {
		return nil
	}
	return f.Areas[0]
}

// validate checks enums and bounds and evaluates region sizes.
func (a *AreaBlock) validate() hcl.Diagnostics {
	var diags hcl.Diagnostics
	errorf := func(summary, format string, args ...any) {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   fmt.Sprintf(format, args...),
		})
	}

	d, ok := panelarea.ParseDirection(a.Direction)
	if !ok {
		errorf("Invalid direction", "Area %q: direction must be \"horizontal\" or \"vertical\", got %q.", a.Name, a.Direction)
	}
	a.direction = d

	p, ok := panelarea.ParseResizePolicy(a.Policy)
	if !ok {
		errorf("Invalid policy", "Area %q: policy must be \"hard_stop\" or \"split\", got %q.", a.Name, a.Policy)
	}
	a.policy = p

	if a.GutterSize != nil && *a.GutterSize < 0 {
		errorf("Invalid gutter size", "Area %q: gutter_size must not be negative.", a.Name)
	}
	if a.Gap != nil && *a.Gap < 0 {
		errorf("Invalid gap", "Area %q: gap must not be negative.", a.Name)
	}

	names := make(map[string]bool, len(a.Regions))
	for _, r := range a.Regions {
		if names[r.Name] {
			errorf("Duplicate region", "Area %q: region %q is declared more than once.", a.Name, r.Name)
		}
		names[r.Name] = true
		diags = diags.Extend(r.validate(a.Name))
	}
	return diags
}

func (r *RegionBlock) validate(area string) hcl.Diagnostics {
	var diags hcl.Diagnostics
	errorf := func(subject *hcl.Range, summary, format string, args ...any) {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   fmt.Sprintf(format, args...),
			Subject:  subject,
		})
	}

	size, sized, sizeDiags := evalSize(r.Size)
	diags = diags.Extend(sizeDiags)
	r.size, r.sized = size, sized

	minSize := float64(panelarea.DefaultMinSize)
	if r.MinSize != nil {
		minSize = *r.MinSize
	}
	if minSize < 0 || minSize > 100 {
		errorf(nil, "Invalid min_size", "Region %q in area %q: min_size must be within 0-100, got %g.", r.Name, area, minSize)
	}
	if r.MaxSize != nil && (*r.MaxSize < 0 || *r.MaxSize > 100) {
		errorf(nil, "Invalid max_size", "Region %q in area %q: max_size must be within 0-100, got %g.", r.Name, area, *r.MaxSize)
	}
	if sized && (size < 0 || size > 100) {
		rng := r.Size.Range()
		errorf(&rng, "Invalid size", "Region %q in area %q: size must be within 0-100, got %g.", r.Name, area, size)
	}
	if r.AutoLength != nil && *r.AutoLength < 0 {
		errorf(nil, "Invalid auto_length", "Region %q in area %q: auto_length must not be negative.", r.Name, area)
	}

	if r.Area != nil {
		diags = diags.Extend(r.Area.validate())
	}
	return diags
}

// evalSize evaluates a size expression. A missing or null size means the
// region is auto-sized.
func evalSize(expr hcl.Expression) (float64, bool, hcl.Diagnostics) {
	if expr == nil {
		return 0, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, false, diags
	}
	if val.IsNull() {
		return 0, false, nil
	}

	rng := expr.Range()
	num, err := convert.Convert(val, cty.Number)
	if err != nil || !num.IsKnown() {
		return 0, false, diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid size",
			Detail:   fmt.Sprintf("size must be a number or null, got %s.", val.Type().FriendlyName()),
			Subject:  &rng,
		})
	}

	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid size",
			Detail:   "size must be a finite number.",
			Subject:  &rng,
		})
	}
	return f, true, diags
}

// Build creates the Area, its regions and nested areas. The block must come
// from Load or Parse, which validate it.
func (a *AreaBlock) Build() *panelarea.Area {
	opts := []panelarea.AreaOption{
		panelarea.WithDirection(a.direction),
		panelarea.WithResizePolicy(a.policy),
	}
	if a.GutterSize != nil {
		opts = append(opts, panelarea.WithGutterSize(float32(*a.GutterSize)))
	}
	if a.Gap != nil {
		opts = append(opts, panelarea.WithGap(float32(*a.Gap)))
	}
	area := panelarea.NewArea(a.Name, opts...)

	regions := make([]*panelarea.Region, 0, len(a.Regions))
	for _, r := range a.Regions {
		regions = append(regions, r.build())
	}
	area.Add(regions...)
	return area
}

func (r *RegionBlock) build() *panelarea.Region {
	opts := []panelarea.RegionOption{
		panelarea.WithID(r.Name),
		panelarea.WithTitle(r.Title),
		panelarea.WithHidden(r.Hidden),
		panelarea.WithCollapsed(r.Collapsed),
		panelarea.WithFullscreen(r.Fullscreen),
	}
	if r.Title == "" {
		opts[1] = panelarea.WithTitle(r.Name)
	}
	if r.sized {
		opts = append(opts, panelarea.WithSize(r.size))
	} else {
		var length float64
		if r.AutoLength != nil {
			length = *r.AutoLength
		}
		opts = append(opts, panelarea.WithAutoSize(float32(length)))
	}
	if r.MinSize != nil {
		opts = append(opts, panelarea.WithMinSize(*r.MinSize))
	}
	if r.MaxSize != nil {
		opts = append(opts, panelarea.WithMaxSize(*r.MaxSize))
	}
	if r.Area != nil {
		opts = append(opts, panelarea.WithContent(r.Area.Build()))
	}
	return panelarea.NewRegion(opts...)
}
