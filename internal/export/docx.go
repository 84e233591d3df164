// Package export serializes the generated petition text into the two
// downloadable formats. Both generators are pure: same title and text,
// same bytes.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// DOCXBytes builds a minimal WordprocessingML package: one heading
// paragraph with the title, then one paragraph per input line, blank
// lines preserved as empty paragraphs.
func DOCXBytes(titulo, texto string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", documentXML(titulo, texto)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentXML(titulo, texto string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Heading: bold, double the body half-point size.
	b.WriteString(`<w:p><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr>`)
	writeRunText(&b, titulo)
	b.WriteString(`</w:r></w:p>`)

	for _, linha := range strings.Split(texto, "\n") {
		if strings.TrimSpace(linha) == "" {
			b.WriteString(`<w:p/>`)
			continue
		}
		b.WriteString(`<w:p><w:r>`)
		writeRunText(&b, linha)
		b.WriteString(`</w:r></w:p>`)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeRunText(b *strings.Builder, texto string) {
	b.WriteString(`<w:t xml:space="preserve">`)
	xml.EscapeText(b, []byte(texto))
	b.WriteString(`</w:t>`)
}
