package publish

import (
	"os"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/chapter-flow/internal/chapters"
	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteChaptersDocx renders the chapter list as a Word document: the title
// as a heading, then one line per chapter with a bold timestamp.
func WriteChaptersDocx(path, title string, list chapters.List) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, m := range list {
		p := doc.AddParagraph("")
		addStyledRun(p, transcript.FormatTimestamp(m.Start), true, fontSize)
		addStyledRun(p, " - "+m.Title, false, fontSize)
	}

	return replace(path, func(tmp *os.File) error {
		// godocx writes by path, so the temp file is reopened by name.
		return doc.SaveTo(tmp.Name())
	})
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
