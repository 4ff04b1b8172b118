package ui

import (
	"html/template"
	"strings"
)

type LinkProps struct {
	Href string
	// Class is appended to the base "link" class.
	Class  string
	Title  string
	Target string
}

// Link renders a styled anchor. Children are trusted markup.
func Link(props LinkProps, children ...template.HTML) template.HTML {
	var b strings.Builder

	b.WriteString(`<a class="`)
	b.WriteString(template.HTMLEscapeString(classes("link", props.Class)))
	b.WriteString(`" href="`)
	b.WriteString(template.HTMLEscapeString(props.Href))
	b.WriteString(`"`)
	if props.Target != "" {
		b.WriteString(` target="`)
		b.WriteString(template.HTMLEscapeString(props.Target))
		b.WriteString(`"`)
	}
	if props.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(template.HTMLEscapeString(props.Title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	for _, child := range children {
		b.WriteString(string(child))
	}
	b.WriteString("</a>")

	return template.HTML(b.String())
}

func classes(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}
