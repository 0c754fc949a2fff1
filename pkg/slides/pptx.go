package slides

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

// Slide size in EMU (13.333in x 7.5in, 16:9).
const (
	SlideWidthEMU  = 12192000
	SlideHeightEMU = 6858000
)

// Application is recorded as the producing application in docProps/app.xml.
const Application = "dailyreport"

// zipEpoch is the modification time stamped on every archive entry so that
// encoding the same deck twice yields identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

var parts = template.Must(template.New("pptx").Funcs(template.FuncMap{
	"xml":        escapeXML,
	"hundredths": func(pt int) int { return pt * 100 },
}).Parse(pptxTemplates))

type deckData struct {
	Title       string
	Author      string
	Application string
	Width       int
	Height      int
	Slides      []slideData
}

type slideData struct {
	Slide

	Index        int
	ID           int
	RelID        string
	LayoutNumber int
	TitleType    string
	BodyType     string
	BodyName     string
}

// PartName returns the archive path of the slide.
func (s slideData) PartName() string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", s.Index)
}

func (s slideData) relsName() string {
	return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.Index)
}

func newDeckData(deck *Deck) deckData {
	data := deckData{
		Title:       DeckTitle,
		Author:      deck.Author,
		Application: Application,
		Width:       SlideWidthEMU,
		Height:      SlideHeightEMU,
		Slides:      make([]slideData, len(deck.Slides)),
	}
	if len(deck.Slides) > 0 {
		data.Title = deck.Slides[0].Title
	}

	for i, s := range deck.Slides {
		sd := slideData{
			Slide: s,
			Index: i + 1,
			// Slide ids start at 256; relationship ids rId1-rId5 are taken
			// by the master, theme and property parts.
			ID:           256 + i,
			RelID:        fmt.Sprintf("rId%d", 6+i),
			LayoutNumber: 2,
			TitleType:    "title",
			BodyName:     "Content Placeholder 2",
		}
		if s.Layout == LayoutTitle {
			sd.LayoutNumber = 1
			sd.TitleType = "ctrTitle"
			sd.BodyType = "subTitle"
			sd.BodyName = "Subtitle 2"
		}
		data.Slides[i] = sd
	}
	return data
}

// Encode writes deck to w as a .pptx archive. The output depends only on
// the deck.
func Encode(w io.Writer, deck *Deck) error {
	data := newDeckData(deck)

	type entry struct {
		name     string
		template string
		data     any
	}
	entries := []entry{
		{"[Content_Types].xml", "contentTypes", data},
		{"_rels/.rels", "packageRels", nil},
		{"docProps/core.xml", "core", data},
		{"docProps/app.xml", "app", data},
		{"ppt/presentation.xml", "presentation", data},
		{"ppt/_rels/presentation.xml.rels", "presentationRels", data},
		{"ppt/presProps.xml", "presProps", nil},
		{"ppt/viewProps.xml", "viewProps", nil},
		{"ppt/tableStyles.xml", "tableStyles", nil},
		{"ppt/slideMasters/slideMaster1.xml", "slideMaster", nil},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "slideMasterRels", nil},
		{"ppt/slideLayouts/slideLayout1.xml", "titleLayout", nil},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "layoutRels", nil},
		{"ppt/slideLayouts/slideLayout2.xml", "contentLayout", nil},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", "layoutRels", nil},
		{"ppt/theme/theme1.xml", "theme", nil},
	}
	for _, s := range data.Slides {
		entries = append(entries,
			entry{s.PartName(), "slide", s},
			entry{s.relsName(), "slideRels", s},
		)
	}

	zw := zip.NewWriter(w)
	for _, e := range entries {
		if err := writePart(zw, e.name, e.template, e.data); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish pptx archive: %w", err)
	}
	return nil
}

func writePart(zw *zip.Writer, name, tmpl string, data any) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	})
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if err := parts.ExecuteTemplate(w, tmpl, data); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

func escapeXML(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}
