package export

import (
	"fmt"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
)

// PreviewService renders deck slides to PNG images using GoPPT's
// built-in slide renderer. Used for visual verification of the layout.
type PreviewService struct {
	deck *PPTDeckService
}

// NewPreviewService creates a new preview service
func NewPreviewService() *PreviewService {
	return &PreviewService{deck: NewPPTDeckService()}
}

// RenderSlideImages renders every slide to dir as slide_1.png, slide_2.png
// and so on. A width of 0 uses the renderer default.
func (s *PreviewService) RenderSlideImages(deck DeckContent, assets *AssetLibrary, dir string, width int) error {
	p, err := s.deck.buildPresentation(deck, assets)
	if err != nil {
		return fmt.Errorf("failed to build presentation: %w", err)
	}

	opts := ppt.DefaultRenderOptions()
	if width > 0 {
		opts.Width = width
	}

	pattern := filepath.Join(dir, "slide_%d.png")
	if err := p.SaveSlidesAsImages(pattern, opts); err != nil {
		return fmt.Errorf("failed to render slide images: %w", err)
	}
	return nil
}
