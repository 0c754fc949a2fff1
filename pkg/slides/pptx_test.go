package slides_test

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/report/reporttest"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

func encode(t *testing.T, deck *slides.Deck) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, slides.Encode(&buf, deck))
	return buf.Bytes()
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	deck := slides.Build(reporttest.Full())
	content := encode(t, deck)

	got, err := slides.Decode(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	assert.Equal(t, deck, got)
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	deck := slides.Build(reporttest.Full())
	assert.Equal(t, encode(t, deck), encode(t, deck))
}

func TestEncode_Parts(t *testing.T) {
	t.Parallel()

	content := encode(t, slides.Build(reporttest.Full()))
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}

	assert.Equal(t, "[Content_Types].xml", names[0])
	for _, want := range []string{
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/slideLayout2.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide4.xml",
		"ppt/slides/_rels/slide4.xml.rels",
	} {
		assert.Contains(t, names, want)
	}
	assert.NotContains(t, names, "ppt/slides/slide5.xml")

	// Every part must be well-formed XML.
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)

		dec := xml.NewDecoder(rc)
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			require.NoError(t, err, f.Name)
		}
		require.NoError(t, rc.Close())
	}
}

func TestEncode_SlideSize(t *testing.T) {
	t.Parallel()

	content := encode(t, slides.Build(reporttest.Empty()))
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != "ppt/presentation.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `<p:sldSz cx="12192000" cy="6858000"/>`)
		return
	}
	t.Fatal("presentation part not found")
}

func TestEncode_EscapesText(t *testing.T) {
	t.Parallel()

	d := reporttest.Authored(report.AuthoredPR{
		Repo: "org/<repo>", Title: `Fix "a" & <b>`, Number: 1, Status: report.StatusMerged,
	})
	deck := slides.Build(d)
	content := encode(t, deck)

	got, err := slides.Decode(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	assert.Equal(t, "org/<repo>", got.Slides[1].Title)
	assert.Equal(t, `Fix "a" & <b> #1 -- Merged`, got.Slides[1].Body[1].Text)
}

func TestEncode_EmptyBody(t *testing.T) {
	t.Parallel()

	deck := &slides.Deck{Slides: []slides.Slide{{Layout: slides.LayoutContent, Title: "Blank"}}}
	content := encode(t, deck)

	got, err := slides.Decode(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	require.Len(t, got.Slides, 1)
	assert.Equal(t, "Blank", got.Slides[0].Title)
	assert.Empty(t, got.Slides[0].Body)
}

func TestDecode_ClampsOutlineLevel(t *testing.T) {
	t.Parallel()

	deck := &slides.Deck{Slides: []slides.Slide{{
		Layout: slides.LayoutContent,
		Title:  "levels",
		Body: []slides.Paragraph{
			{Text: "negative", Level: -3},
			{Text: "nested", Level: 2},
			{Text: "too deep", Level: 1 << 30},
		},
	}}}

	var buf bytes.Buffer
	require.NoError(t, slides.Encode(&buf, deck))

	got, err := slides.Decode(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, got.Slides, 1)

	levels := make([]int, 0, len(got.Slides[0].Body))
	for _, p := range got.Slides[0].Body {
		levels = append(levels, p.Level)
	}
	assert.Equal(t, []int{0, 2, 8}, levels)
}

func TestDecode_NotPresentation(t *testing.T) {
	t.Parallel()

	t.Run("not a zip", func(t *testing.T) {
		t.Parallel()

		content := []byte("# Daily Report")
		_, err := slides.Decode(bytes.NewReader(content), int64(len(content)))
		require.ErrorIs(t, err, slides.ErrNotPresentation)
	})

	t.Run("zip without presentation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<document/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = slides.Decode(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.ErrorIs(t, err, slides.ErrNotPresentation)
	})
}

func BenchmarkEncode(b *testing.B) {
	deck := slides.Build(reporttest.Full())
	for b.Loop() {
		if err := slides.Encode(io.Discard, deck); err != nil {
			b.Fatal(err)
		}
	}
}
