package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// PPTDeckService handles PowerPoint generation using GoPPT (pure Go, zero dependencies)
type PPTDeckService struct{}

// NewPPTDeckService creates a new PPT deck service
func NewPPTDeckService() *PPTDeckService {
	return &PPTDeckService{}
}

// PPT布局常量 - 16:9宽屏比例 (13.333 x 7.5 inch)
const (
	deckSlideWidth  = int64(12192000) // 13.333 in EMU
	deckSlideHeight = int64(6858000)  // 7.5 in EMU

	// 字体大小 (pt)
	deckFontTitle     = 34
	deckFontSubtitle  = 16
	deckFontFlowBox   = 16
	deckFontCardHead  = 12
	deckFontCardValue = 18
	deckFontFooter    = 10
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// helper: set paragraph alignment to right
func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

// ExportDeckToPPTX builds the deck and returns the pptx file bytes.
func (s *PPTDeckService) ExportDeckToPPTX(deck DeckContent, assets *AssetLibrary) ([]byte, error) {
	p, err := s.buildPresentation(deck, assets)
	if err != nil {
		return nil, err
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

// buildPresentation assembles the in-memory presentation, slide by slide
// in deck order.
func (s *PPTDeckService) buildPresentation(deck DeckContent, assets *AssetLibrary) (*ppt.Presentation, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = deck.Title
	p.GetDocumentProperties().Creator = deck.Author

	layout := p.GetLayout()
	layout.CX = deckSlideWidth
	layout.CY = deckSlideHeight

	for i, content := range deck.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if err := s.buildSlide(slide, content, assets); err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, content.Title, err)
		}
	}

	return p, nil
}

// buildSlide adds all shapes of one slide. The background goes in first so
// everything else stacks above it in z-order.
func (s *PPTDeckService) buildSlide(slide *ppt.Slide, c SlideContent, assets *AssetLibrary) error {
	s.paintBackground(slide)

	if c.Cover != "" {
		data, mime, err := assets.Image(c.Cover)
		if err != nil {
			return err
		}
		s.addImage(slide, data, mime, Rect{X: 0, Y: 0, W: deckSlideWidth, H: deckSlideHeight})
	}

	s.addTitle(slide, c.Title, c.Subtitle)

	for _, card := range c.Cards {
		s.addMetricCard(slide, card)
	}
	for _, box := range c.Boxes {
		s.addFlowBox(slide, box)
	}
	for _, arrow := range c.Arrows {
		from, to, err := c.ResolveArrow(arrow)
		if err != nil {
			return err
		}
		s.addConnector(slide, from, to, arrow.Color)
	}
	for _, block := range c.Bullets {
		s.addBullets(slide, block)
	}
	for _, img := range c.Images {
		data, mime, err := assets.Image(img.Asset)
		if err != nil {
			return err
		}
		s.addImage(slide, data, mime, img.Box)
	}

	if c.Footer != "" {
		s.addFooter(slide, c.Footer)
	}
	return nil
}

// paintBackground fills the whole slide with the theme background color.
func (s *PPTDeckService) paintBackground(slide *ppt.Slide) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(deckSlideWidth).SetHeight(deckSlideHeight)
	bg.SetFill(solidFill(colorBackground))
}

// addTitle adds the title panel with an optional subtitle line.
func (s *PPTDeckService) addTitle(slide *ppt.Slide, title string, subtitle string) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(inch(0.7)).SetOffsetY(inch(0.6))
	box.SetWidth(inch(12.0)).SetHeight(inch(1.4))
	box.SetFill(solidFill(colorPanel))
	box.SetBorder(&ppt.Border{Style: ppt.BorderSolid, Color: ppt.NewColor(colorHairline), Width: 1})

	tr := box.CreateTextRun(title)
	tr.GetFont().SetSize(deckFontTitle).SetBold(true).SetColor(ppt.NewColor(colorInk))

	if subtitle != "" {
		box.CreateParagraph()
		sub := box.CreateTextRun(subtitle)
		sub.GetFont().SetSize(deckFontSubtitle).SetColor(ppt.NewColor(colorMuted))
	}
}

// addFooter adds the right-aligned footer line at the bottom of the slide.
func (s *PPTDeckService) addFooter(slide *ppt.Slide, text string) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(inch(0.7)).SetOffsetY(inch(7.05))
	box.SetWidth(inch(12.0)).SetHeight(inch(0.3))

	tr := box.CreateTextRun(text)
	tr.GetFont().SetSize(deckFontFooter).SetColor(ppt.NewColor(colorMuted))
	alignRight(box.GetActiveParagraph())
}

// addBullets adds a plain text block, one paragraph per item.
func (s *PPTDeckService) addBullets(slide *ppt.Slide, b BulletBlock) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(b.Box.X).SetOffsetY(b.Box.Y)
	box.SetWidth(b.Box.W).SetHeight(b.Box.H)

	for i, item := range b.Items {
		if i > 0 {
			box.CreateParagraph()
		}
		tr := box.CreateTextRun(item)
		tr.GetFont().SetSize(b.FontSize).SetColor(ppt.NewColor(colorInk))
	}
}

// addMetricCard adds a card panel with a colored accent bar on its left
// edge and a heading/value text pair.
func (s *PPTDeckService) addMetricCard(slide *ppt.Slide, card MetricCard) {
	panel := slide.CreateRichTextShape()
	panel.SetOffsetX(card.Box.X).SetOffsetY(card.Box.Y)
	panel.SetWidth(card.Box.W).SetHeight(card.Box.H)
	panel.SetFill(solidFill(colorCardPanel))
	panel.SetBorder(&ppt.Border{Style: ppt.BorderSolid, Color: ppt.NewColor(colorCardLine), Width: 1})

	// Accent bar
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(card.Box.X).SetOffsetY(card.Box.Y)
	bar.SetWidth(inch(0.10)).SetHeight(card.Box.H)
	bar.SetFill(solidFill(card.Accent))

	head := panel.CreateTextRun(card.Heading)
	head.GetFont().SetSize(deckFontCardHead).SetColor(ppt.NewColor(colorMuted))

	panel.CreateParagraph()
	value := panel.CreateTextRun(card.Value)
	value.GetFont().SetSize(deckFontCardValue).SetBold(true).SetColor(ppt.NewColor(colorInk))
}

// addFlowBox adds a process-diagram step box with an accent outline and
// centered bold text lines.
func (s *PPTDeckService) addFlowBox(slide *ppt.Slide, f FlowBox) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(f.Box.X).SetOffsetY(f.Box.Y)
	box.SetWidth(f.Box.W).SetHeight(f.Box.H)
	box.SetFill(solidFill(colorCardPanel))
	box.SetBorder(&ppt.Border{Style: ppt.BorderSolid, Color: ppt.NewColor(f.Accent), Width: 2})

	for i, line := range f.Lines {
		if i > 0 {
			box.CreateParagraph()
		}
		tr := box.CreateTextRun(line)
		tr.GetFont().SetSize(deckFontFlowBox).SetBold(true).SetColor(ppt.NewColor(colorInk))
		alignCenter(box.GetActiveParagraph())
	}
}

// addConnector draws a straight line between two resolved points.
func (s *PPTDeckService) addConnector(slide *ppt.Slide, from Point, to Point, argb string) {
	if argb == "" {
		argb = colorMuted
	}
	line := slide.CreateLineShape()
	x, w := from.X, to.X-from.X
	if w < 0 {
		x, w = to.X, -w
		line.SetFlipHorizontal(true)
	}
	y, h := from.Y, to.Y-from.Y
	if h < 0 {
		y, h = to.Y, -h
		line.SetFlipVertical(true)
	}
	line.SetOffsetX(x).SetOffsetY(y)
	line.SetWidth(w).SetHeight(h)
	line.SetLineStyle(ppt.BorderSolid).SetLineColor(ppt.NewColor(argb)).SetLineWidth(2)
}

// addImage places an image using DrawingShape
func (s *PPTDeckService) addImage(slide *ppt.Slide, data []byte, mime string, r Rect) {
	img := slide.CreateDrawingShape()
	img.SetImageData(data, mime)
	img.SetOffsetX(r.X).SetOffsetY(r.Y)
	img.SetWidth(r.W).SetHeight(r.H)
}
