package universe

import "sort"

// Template represent the seeding template which can used to settle the field with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var templates = map[string]Template{}

func init() {
	for _, t := range []Template{
		{"block", "2x2 still life", [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"blinker", "period 2 oscillator", [][]int{{1, 0}, {1, 1}, {1, 2}}},
		{"glider", "moves one cell diagonally every 4 generations", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{"sample", "the test sample with 3 stable patterns", [][]int{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		}},
	} {
		AddTemplate(t)
	}
}

// AddTemplate adds the seeding template to the registry
// the field can be populated with this template by call SettleTemplate
func AddTemplate(tmpl Template) {
	templates[tmpl.Name] = tmpl
}

// TemplateNames returns the registered template names in sorted order
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the width and height of the template's bounding box, anchored at 0,0
func (t Template) Bounds() (w int, h int) {
	for _, c := range t.Coordinates {
		if len(c) < 2 {
			continue
		}
		if c[0]+1 > w {
			w = c[0] + 1
		}
		if c[1]+1 > h {
			h = c[1] + 1
		}
	}
	return
}
