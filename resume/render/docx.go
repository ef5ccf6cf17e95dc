package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"resume-builder/resume/model"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:multiLevelType w:val="singleLevel"/>
<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

// docxParts lists the package members in write order.
var docxParts = []string{
	"[Content_Types].xml",
	"_rels/.rels",
	"docProps/core.xml",
	"word/_rels/document.xml.rels",
	"word/document.xml",
	"word/styles.xml",
	"word/numbering.xml",
}

// renderDOCX builds a minimal Office Open XML package with Title, Heading1
// and ListBullet styles.
func renderDOCX(doc model.GeneratedDocument, modified time.Time) ([]byte, error) {
	documentXML := buildDocumentXML(doc)
	if err := validateDocumentXMLStructure(documentXML); err != nil {
		return nil, err
	}

	contents := map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  packageRelsXML,
		"docProps/core.xml":            buildCoreXML(doc.Title, modified),
		"word/_rels/document.xml.rels": documentRelsXML,
		"word/document.xml":            documentXML,
		"word/styles.xml":              buildStylesXML(),
		"word/numbering.xml":           numberingXML,
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	for _, name := range docxParts {
		if err := writeZipFile(writer, name, []byte(contents[name]), modified); err != nil {
			writer.Close()
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func writeZipFile(writer *zip.Writer, name string, content []byte, modified time.Time) error {
	header := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified}
	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}

func buildDocumentXML(doc model.GeneratedDocument) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `"><w:body>`)

	writeParagraph(&b, "Title", "", doc.Title)
	if label := doc.Category.Label.String(); label != "" {
		writeParagraph(&b, "Subtitle", "", label)
	}
	for _, s := range doc.Sections {
		writeParagraph(&b, "Heading1", "", s.Heading)
		for _, blk := range sectionBlocks(s) {
			for _, line := range blk.Lines {
				if blk.Kind == blockList {
					writeParagraph(&b, "ListBullet", `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`, line)
					continue
				}
				writeParagraph(&b, "", "", line)
			}
		}
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>`)
	b.WriteString(`<w:pgMar w:top="1021" w:right="1021" w:bottom="1021" w:left="1021" w:header="708" w:footer="708" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, style, extraPPr, text string) {
	b.WriteString("<w:p>")
	if style != "" || extraPPr != "" {
		b.WriteString("<w:pPr>")
		if style != "" {
			b.WriteString(`<w:pStyle w:val="` + style + `"/>`)
		}
		b.WriteString(extraPPr)
		b.WriteString("</w:pPr>")
	}
	b.WriteString(`<w:r><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString("</w:t></w:r></w:p>")
}

func buildStylesXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>`)
	b.WriteString(runProps(StyleMap["body"]))
	b.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="80" w:line="264" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	writeStyle(&b, "Title", "Title", `<w:spacing w:after="120"/>`, StyleMap["title"])
	writeStyle(&b, "Subtitle", "Subtitle", `<w:spacing w:after="240"/>`, RunStyle{Italic: true, Size: BodySize, Color: AccentColor})
	writeStyle(&b, "Heading1", "heading 1",
		`<w:keepNext/><w:spacing w:before="240" w:after="80"/><w:pBdr><w:bottom w:val="single" w:sz="4" w:space="1" w:color="`+HeadingColor+`"/></w:pBdr><w:outlineLvl w:val="0"/>`,
		StyleMap["sectionHeading"])
	writeStyle(&b, "ListBullet", "List Bullet", `<w:ind w:left="720" w:hanging="360"/>`, StyleMap["body"])
	b.WriteString(`</w:styles>`)
	return b.String()
}

func writeStyle(b *strings.Builder, id, name, pPr string, rs RunStyle) {
	b.WriteString(`<w:style w:type="paragraph" w:styleId="` + id + `">`)
	b.WriteString(`<w:name w:val="` + name + `"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`)
	b.WriteString(`<w:pPr>` + pPr + `</w:pPr>`)
	b.WriteString(`<w:rPr>` + runProps(rs) + `</w:rPr>`)
	b.WriteString(`</w:style>`)
}

// runProps emits rPr children in schema order.
func runProps(rs RunStyle) string {
	var b strings.Builder
	if rs.Bold {
		b.WriteString(`<w:b/>`)
	}
	if rs.Italic {
		b.WriteString(`<w:i/>`)
	}
	if rs.Color != "" {
		b.WriteString(`<w:color w:val="` + rs.Color + `"/>`)
	}
	if rs.Size > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(rs.Size) + `"/>`)
	}
	return b.String()
}

func buildCoreXML(title string, modified time.Time) string {
	stamp := modified.UTC().Format(time.RFC3339)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escapeXML(title) + `</dc:title>` +
		`<dc:creator>resume-builder</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// validateDocumentXMLStructure rejects malformed XML, nested paragraphs and
// run properties placed after run text.
func validateDocumentXMLStructure(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	var stack []xml.Name
	type runState struct {
		seenText bool
	}
	var runs []runState

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			if isWmlElement(t.Name, "p") {
				for i := len(stack) - 2; i >= 0; i-- {
					if isWmlElement(stack[i], "p") {
						return fmt.Errorf("document.xml has nested <w:p>")
					}
				}
			}
			if isWmlElement(t.Name, "r") {
				runs = append(runs, runState{})
			}
			if isWmlElement(t.Name, "t") && len(runs) > 0 {
				runs[len(runs)-1].seenText = true
			}
			if isWmlElement(t.Name, "rPr") && len(runs) > 0 && runs[len(runs)-1].seenText {
				return fmt.Errorf("document.xml has <w:rPr> after <w:t> in a run")
			}
		case xml.EndElement:
			if isWmlElement(t.Name, "r") && len(runs) > 0 {
				runs = runs[:len(runs)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func isWmlElement(name xml.Name, local string) bool {
	return name.Local == local && name.Space == wmlNamespace
}
