package export

// DeckExportService bundles the fixed framework deck content with the
// per-format export services.
type DeckExportService struct {
	ppt     *PPTDeckService
	word    *WordHandoutService
	preview *PreviewService
}

// NewDeckExportService creates a new deck export service
func NewDeckExportService() *DeckExportService {
	return &DeckExportService{
		ppt:     NewPPTDeckService(),
		word:    NewWordHandoutService(),
		preview: NewPreviewService(),
	}
}

// ExportFrameworkDeck builds the ten-slide framework deck as pptx bytes.
// It fails before producing any output when an asset is missing.
func (s *DeckExportService) ExportFrameworkDeck(assetsDir string) ([]byte, error) {
	assets, err := LoadAssetLibrary(assetsDir)
	if err != nil {
		return nil, err
	}
	return s.ppt.ExportDeckToPPTX(FrameworkDeck(), assets)
}

// ExportFrameworkHandout builds the Word outline handout of the deck.
func (s *DeckExportService) ExportFrameworkHandout() ([]byte, error) {
	return s.word.ExportDeckToWord(FrameworkDeck())
}

// RenderFrameworkPreviews renders one PNG per slide into outDir.
func (s *DeckExportService) RenderFrameworkPreviews(assetsDir string, outDir string, width int) error {
	assets, err := LoadAssetLibrary(assetsDir)
	if err != nil {
		return err
	}
	return s.preview.RenderSlideImages(FrameworkDeck(), assets, outDir, width)
}
