package render

import (
	"bytes"
	"html/template"

	"resume-builder/resume/model"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 18mm; }
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #{{.BodyColor}}; max-width: 820px; margin: 0 auto; padding: 32px 24px; line-height: 1.5; }
header { border-bottom: 3px solid #{{.AccentColor}}; margin-bottom: 24px; }
h1 { color: #{{.TitleColor}}; font-size: 2em; margin: 0 0 8px; }
.category { color: #{{.AccentColor}}; font-style: italic; margin: 0 0 12px; }
section { margin-bottom: 20px; }
h2 { color: #{{.HeadingColor}}; font-size: 1.15em; text-transform: uppercase; letter-spacing: 0.05em; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; }
p { margin: 4px 0; }
ul { margin: 4px 0 8px 20px; padding: 0; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{- if .Category}}
<p class="category">{{.Category}}</p>
{{- end}}
</header>
<main>
{{- range .Sections}}
<section>
<h2>{{.Heading}}</h2>
{{- range .Blocks}}
{{- if .IsList}}
<ul>
{{- range .Lines}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- else}}
{{- range .Lines}}
<p>{{.}}</p>
{{- end}}
{{- end}}
{{- end}}
</section>
{{- end}}
</main>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

type htmlSection struct {
	Heading string
	Blocks  []block
}

type htmlPage struct {
	Title        string
	Category     string
	Sections     []htmlSection
	TitleColor   string
	HeadingColor string
	BodyColor    string
	AccentColor  string
}

// renderHTML produces a self-contained page: one h1 title and one h2 per section.
func renderHTML(doc model.GeneratedDocument) ([]byte, error) {
	data := htmlPage{
		Title:        doc.Title,
		Category:     doc.Category.Label.String(),
		TitleColor:   StyleMap["title"].Color,
		HeadingColor: StyleMap["sectionHeading"].Color,
		BodyColor:    StyleMap["body"].Color,
		AccentColor:  AccentColor,
	}
	for _, s := range doc.Sections {
		data.Sections = append(data.Sections, htmlSection{Heading: s.Heading, Blocks: sectionBlocks(s)})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
