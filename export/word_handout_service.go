package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"
)

// WordHandoutService exports the deck content as a Word outline handout
// using GoWord (pure Go)
type WordHandoutService struct{}

// NewWordHandoutService creates a new Word handout service
func NewWordHandoutService() *WordHandoutService {
	return &WordHandoutService{}
}

// ExportDeckToWord renders a slide-by-slide text outline of the deck.
func (s *WordHandoutService) ExportDeckToWord(deck DeckContent) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = deck.Title
	doc.Properties.Creator = deck.Author
	doc.Properties.Description = "Slide-by-slide handout"

	sec := doc.AddSection()

	sec.AddTitle(deck.Title, 1)
	sec.AddText("Presentation handout",
		&style.FontStyle{Size: 10, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	for i, slide := range deck.Slides {
		sec.AddText(fmt.Sprintf("Slide %d: %s", i+1, slide.Title),
			&style.FontStyle{Bold: true, Size: 14, Color: "1E40AF"},
			nil)
		if slide.Subtitle != "" {
			sec.AddText(slide.Subtitle,
				&style.FontStyle{Size: 11, Italic: true, Color: "64748B"},
				nil)
		}

		for _, card := range slide.Cards {
			sec.AddText(fmt.Sprintf("%s: %s", card.Heading, card.Value),
				&style.FontStyle{Size: 11, Bold: true, Color: "334155"},
				&style.ParagraphStyle{Indent: 360})
		}

		for _, box := range slide.Boxes {
			sec.AddText("▸ "+strings.Join(box.Lines, " "),
				&style.FontStyle{Size: 11, Color: "334155"},
				&style.ParagraphStyle{Indent: 360})
		}

		for _, block := range slide.Bullets {
			for _, item := range block.Items {
				sec.AddText("• "+item,
					&style.FontStyle{Size: 11, Color: "334155"},
					&style.ParagraphStyle{Indent: 360})
			}
		}

		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}

	return data, nil
}
