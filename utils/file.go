package utils

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/gosimple/slug"
)

// ImageExt picks a file extension for a downloaded image, preferring the
// source URL's extension and falling back to the content type.
func ImageExt(srcURL, contentType string) string {
	if u, err := url.Parse(srcURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "image/png":
			return ".png"
		case "image/jpeg":
			return ".jpg"
		case "image/webp":
			return ".webp"
		case "image/gif":
			return ".gif"
		}
	}
	return ".png"
}

// CardImageKey returns the object key for a card's artwork,
// e.g. "cards/0025-pikachu.png".
func CardImageKey(pokedexNumber int, name, ext string) string {
	return fmt.Sprintf("cards/%04d-%s%s", pokedexNumber, slug.Make(name), ext)
}
