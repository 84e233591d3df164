package export

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	pdfLineWidth    = 95
	pdfLinesPerPage = 52
)

// PDFBytes hand-builds a PDF 1.4 document: A4 pages, embedded
// Helvetica, the title at 16pt on the first page only, the body at 12pt
// wrapped to a fixed column and paginated at a fixed line count.
func PDFBytes(titulo, texto string) []byte {
	if strings.TrimSpace(titulo) == "" {
		titulo = "PETICAO INICIAL"
	}
	titulo = toLatin1Runes(titulo)
	paginas := splitPages(wrapLines(texto))

	// Object 0 is the free head of the xref table.
	objetos := [][]byte{
		nil,
		[]byte(`<< /Type /Catalog /Pages 2 0 R >>`),
		nil, // pages object, filled in once the kids are known
		[]byte(`<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>`),
	}

	var kids []string
	base := 4
	for i, linhas := range paginas {
		pageObj := base + i*2
		contentObj := pageObj + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageObj))

		stream := pageContent(linhas, i == 0, titulo)
		var body bytes.Buffer
		fmt.Fprintf(&body, "<< /Length %d >>\nstream\n", len(stream))
		body.Write(stream)
		body.WriteString("\nendstream")

		objetos = append(objetos, []byte(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentObj)))
		objetos = append(objetos, body.Bytes())
	}

	objetos[2] = []byte(fmt.Sprintf("<< /Type /Pages /Count %d /Kids [%s] >>",
		len(paginas), strings.Join(kids, " ")))

	var pdf bytes.Buffer
	pdf.WriteString("%PDF-1.4\n")
	pdf.Write([]byte{'%', 0xe2, 0xe3, 0xcf, 0xd3, '\n'})

	offsets := make([]int, len(objetos))
	for num := 1; num < len(objetos); num++ {
		offsets[num] = pdf.Len()
		fmt.Fprintf(&pdf, "%d 0 obj\n", num)
		pdf.Write(objetos[num])
		pdf.WriteString("\nendobj\n")
	}

	xrefPos := pdf.Len()
	fmt.Fprintf(&pdf, "xref\n0 %d\n", len(objetos))
	pdf.WriteString("0000000000 65535 f \n")
	for num := 1; num < len(objetos); num++ {
		fmt.Fprintf(&pdf, "%010d 00000 n \n", offsets[num])
	}

	fmt.Fprintf(&pdf, "trailer\n<< /Size %d /Root 1 0 R >>\n", len(objetos))
	fmt.Fprintf(&pdf, "startxref\n%d\n%%%%EOF", xrefPos)
	return pdf.Bytes()
}

// pageContent emits the text-drawing commands of one page, already
// transcoded to Latin-1 bytes.
func pageContent(linhas []string, primeira bool, titulo string) []byte {
	comandos := []string{"BT"}
	const yInicial = 800

	if primeira {
		comandos = append(comandos,
			"/F1 16 Tf",
			fmt.Sprintf("1 0 0 1 40 %d Tm", yInicial),
			fmt.Sprintf("(%s) Tj", escapePDF(titulo)),
			"/F1 12 Tf",
			"0 -22 Td",
		)
	} else {
		comandos = append(comandos,
			"/F1 12 Tf",
			fmt.Sprintf("1 0 0 1 40 %d Tm", yInicial),
		)
	}

	if len(linhas) == 0 {
		comandos = append(comandos, "( ) Tj")
	} else {
		for i, linha := range linhas {
			if i > 0 {
				comandos = append(comandos, "0 -14 Td")
			}
			comandos = append(comandos, fmt.Sprintf("(%s) Tj", escapePDF(linha)))
		}
	}

	comandos = append(comandos, "ET")
	return encodeLatin1(strings.Join(comandos, "\n"))
}

// escapePDF prepares a line for a PDF string literal: Latin-1 repertoire
// only, backslashes and parentheses escaped, line breaks flattened.
func escapePDF(s string) string {
	s = toLatin1Runes(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// toLatin1Runes replaces every rune outside the Latin-1 repertoire with
// "?", keeping the string valid UTF-8 until the final byte encoding.
func toLatin1Runes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// encodeLatin1 produces the final single-byte encoding of a string
// already restricted to the Latin-1 repertoire.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if bb, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			out = append(out, bb)
		} else {
			out = append(out, '?')
		}
	}
	return out
}

// wrapLines word-wraps the body to the fixed column width, keeping
// blank lines as paragraph separators.
func wrapLines(texto string) []string {
	var out []string
	for _, linha := range strings.Split(texto, "\n") {
		linha = strings.TrimSpace(linha)
		if linha == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapLine(linha, pdfLineWidth)...)
	}
	return out
}

// wrapLine wraps by rune count, since the column width is measured in
// characters and a byte split could cut a rune in half.
func wrapLine(linha string, largura int) []string {
	palavras := strings.Fields(linha)
	var out []string
	var atual []rune
	for _, palavra := range palavras {
		rs := []rune(palavra)
		// Hard-split words longer than the column.
		for len(rs) > largura {
			if len(atual) > 0 {
				out = append(out, string(atual))
				atual = nil
			}
			out = append(out, string(rs[:largura]))
			rs = rs[largura:]
		}
		switch {
		case len(atual) == 0:
			atual = rs
		case len(atual)+1+len(rs) <= largura:
			atual = append(atual, ' ')
			atual = append(atual, rs...)
		default:
			out = append(out, string(atual))
			atual = rs
		}
	}
	if len(atual) > 0 {
		out = append(out, string(atual))
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// splitPages slices the wrapped lines into fixed-size pages; an empty
// document still yields one page.
func splitPages(linhas []string) [][]string {
	var paginas [][]string
	var atual []string

	for _, linha := range linhas {
		atual = append(atual, linha)
		if len(atual) >= pdfLinesPerPage {
			paginas = append(paginas, atual)
			atual = nil
		}
	}
	if len(atual) > 0 || len(paginas) == 0 {
		paginas = append(paginas, atual)
	}
	return paginas
}
