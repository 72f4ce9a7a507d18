// Package docx loads .docx archives into the flat paragraph/table tree
// consumed by the extraction pipeline. Only word/document.xml is read;
// styling, headers and footers are ignored.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wfzhang/report-extractor/internal/common"
)

// WordprocessingML structures, local-name matched (encoding/xml ignores
// the w: namespace prefix when the struct tag carries no namespace).
type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
	Tables     []xmlTable     `xml:"tbl"`
}

type xmlParagraph struct {
	Runs []xmlRun `xml:"r"`
}

// xmlRunChild captures a run's child elements in document order, so
// tabs and breaks keep their position between text nodes.
type xmlRun struct {
	Children []xmlRunChild `xml:",any"`
}

type xmlRunChild struct {
	XMLName xml.Name
	Content string `xml:",chardata"`
}

type xmlTable struct {
	Rows []xmlRow `xml:"tr"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"tc"`
}

type xmlCell struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

// Open reads a .docx file from disk and returns its document tree.
// Any archive or XML defect is reported as common.ErrUnreadable.
func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrUnreadable, path, err)
	}
	return Parse(b)
}

// Parse decodes a .docx archive held in memory.
func Parse(b []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("%w: open archive: %v", common.ErrUnreadable, err)
	}

	var payload []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("%w: open document.xml: %v", common.ErrUnreadable, err)
			}
			payload, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: read document.xml: %v", common.ErrUnreadable, err)
			}
			break
		}
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: word/document.xml missing", common.ErrUnreadable)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode document.xml: %v", common.ErrUnreadable, err)
	}

	out := &Document{}
	for _, p := range doc.Body.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, paragraphText(p))
	}
	for _, t := range doc.Body.Tables {
		table := Table{}
		for _, r := range t.Rows {
			row := make([]string, 0, len(r.Cells))
			for _, c := range r.Cells {
				row = append(row, cellText(c))
			}
			table.Rows = append(table.Rows, row)
		}
		out.Tables = append(out.Tables, table)
	}
	return out, nil
}

func paragraphText(p xmlParagraph) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for _, ch := range run.Children {
			switch ch.XMLName.Local {
			case "t":
				sb.WriteString(ch.Content)
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func cellText(c xmlCell) string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		if s := paragraphText(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
