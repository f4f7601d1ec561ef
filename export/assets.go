package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// requiredAssets maps asset keys used by the deck content to the files
// expected inside the assets directory. All three must be present.
var requiredAssets = map[string]string{
	"cover":        "cover.png",
	"architecture": "architecture.png",
	"ai-healing":   "ai-healing.png",
}

type assetImage struct {
	data []byte
	mime string
}

// AssetLibrary holds the image assets referenced by deck content, loaded
// eagerly so that a missing file fails the run before any output exists.
type AssetLibrary struct {
	images map[string]assetImage
}

// LoadAssetLibrary reads every required asset from dir.
func LoadAssetLibrary(dir string) (*AssetLibrary, error) {
	images := make(map[string]assetImage, len(requiredAssets))
	for key, name := range requiredAssets {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load asset %s: %w", name, err)
		}
		images[key] = assetImage{data: data, mime: mimeForName(name)}
	}
	return &AssetLibrary{images: images}, nil
}

// Image returns the raw bytes and MIME type of a loaded asset.
func (a *AssetLibrary) Image(key string) ([]byte, string, error) {
	img, ok := a.images[key]
	if !ok {
		return nil, "", fmt.Errorf("unknown asset %q", key)
	}
	return img.data, img.mime, nil
}

func mimeForName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
