package output

import (
	"fmt"

	"github.com/gomutex/godocx"

	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteTranscriptDocx renders one video's transcript as a docx document,
// one paragraph per segment prefixed with the start time in minutes.
func WriteTranscriptDocx(title string, segments []transcribe.Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, s := range segments {
		line := fmt.Sprintf("[%.2f] %s", s.Start/60.0, s.Text)
		p := doc.AddParagraph("")
		p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
