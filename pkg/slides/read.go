package slides

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/yaklabco/dailyreport/pkg/fsutil"
)

// ErrNotPresentation is returned when a file is not a readable .pptx archive.
var ErrNotPresentation = errors.New("not a presentation")

const presentationPart = "ppt/presentation.xml"

// maxLevel is the deepest outline level DrawingML allows (lvl is 0..8).
const maxLevel = 8

type xPresentation struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type xRelationships struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xCore struct {
	Creator string `xml:"creator"`
}

type xSlide struct {
	Shapes []xShape `xml:"cSld>spTree>sp"`
}

type xShape struct {
	Placeholder *struct {
		Type string `xml:"type,attr"`
		Idx  string `xml:"idx,attr"`
	} `xml:"nvSpPr>nvPr>ph"`
	Paragraphs []xParagraph `xml:"txBody>p"`
}

type xParagraph struct {
	Properties *struct {
		Level int `xml:"lvl,attr"`
	} `xml:"pPr"`
	Runs []struct {
		Properties *struct {
			Bold string `xml:"b,attr"`
			Size int    `xml:"sz,attr"`
		} `xml:"rPr"`
		Text string `xml:"t"`
	} `xml:"r"`
}

// Read loads the deck stored at path.
func Read(ctx context.Context, path string) (*Deck, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read slide deck: %w", err)
	}

	deck, err := Decode(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("read slide deck %s: %w", path, err)
	}
	return deck, nil
}

// Decode reads slide titles and body paragraphs from a .pptx archive, in
// presentation order. Shapes other than the title and body placeholders
// are ignored.
func Decode(r io.ReaderAt, size int64) (*Deck, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPresentation, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	if _, ok := files[presentationPart]; !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrNotPresentation, presentationPart)
	}

	var pres xPresentation
	if err := decodePart(files, presentationPart, &pres); err != nil {
		return nil, err
	}

	var rels xRelationships
	if err := decodePart(files, "ppt/_rels/presentation.xml.rels", &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		targets[rel.ID] = resolveTarget("ppt", rel.Target)
	}

	deck := &Deck{Slides: make([]Slide, 0, len(pres.SlideIDs))}

	if _, ok := files["docProps/core.xml"]; ok {
		var core xCore
		if err := decodePart(files, "docProps/core.xml", &core); err != nil {
			return nil, err
		}
		deck.Author = core.Creator
	}

	for _, id := range pres.SlideIDs {
		name, ok := targets[id.RelID]
		if !ok {
			return nil, fmt.Errorf("%w: no relationship %s", ErrNotPresentation, id.RelID)
		}

		var xs xSlide
		if err := decodePart(files, name, &xs); err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, xs.slide())
	}

	return deck, nil
}

func decodePart(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("%w: missing %s", ErrNotPresentation, name)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// resolveTarget turns a relationship target into an archive path.
// Absolute targets are rooted at the package root.
func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(base, target)
}

func (xs xSlide) slide() Slide {
	s := Slide{Layout: LayoutContent}

	for _, shape := range xs.Shapes {
		if shape.Placeholder == nil {
			continue
		}

		switch ph := shape.Placeholder; {
		case ph.Type == "title" || ph.Type == "ctrTitle":
			if ph.Type == "ctrTitle" {
				s.Layout = LayoutTitle
			}
			lines := make([]string, 0, len(shape.Paragraphs))
			for _, p := range shape.Paragraphs {
				lines = append(lines, p.text())
			}
			s.Title = strings.Join(lines, "\n")
		case ph.Idx == "1" || ph.Type == "body" || ph.Type == "subTitle":
			for _, p := range shape.Paragraphs {
				if len(p.Runs) == 0 {
					continue
				}
				s.Body = append(s.Body, p.paragraph())
			}
		}
	}

	return s
}

func (p xParagraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (p xParagraph) paragraph() Paragraph {
	para := Paragraph{Text: p.text()}
	if p.Properties != nil {
		para.Level = min(max(p.Properties.Level, 0), maxLevel)
	}
	if len(p.Runs) > 0 && p.Runs[0].Properties != nil {
		props := p.Runs[0].Properties
		para.SizePt = props.Size / 100
		para.Bold, _ = strconv.ParseBool(props.Bold)
	}
	return para
}
