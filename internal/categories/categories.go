// Package categories defines the closed set of department tags a fact can
// belong to. The list is static configuration shared by the client and the
// server; it is never persisted.
package categories

// Category is one department tag with its display color.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// All is the special filter value that disables category filtering.
const All = "all"

// List is the fixed set of departments, in display order.
var List = []Category{
	{Name: "computer science", Color: "#3b82f6"},
	{Name: "information technology", Color: "#16a34a"},
	{Name: "electronics and communication", Color: "#ef4444"},
	{Name: "electrical", Color: "#eab308"},
	{Name: "mechanical", Color: "#db2777"},
	{Name: "civil", Color: "#14b8a6"},
	{Name: "mechatronics", Color: "#f97316"},
	{Name: "industrial production", Color: "#8b5cf6"},
	{Name: "Admin", Color: "#A3ADB8"},
	{Name: "Clubs", Color: "#BDD09F"},
}

// IsValid reports whether name is one of the fixed department tags.
// The special value "all" is not a category and returns false.
func IsValid(name string) bool {
	for _, c := range List {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Color returns the display color for the given category name, or a neutral
// fallback when the name is unknown.
func Color(name string) string {
	for _, c := range List {
		if c.Name == name {
			return c.Color
		}
	}
	return "#ccc"
}
