package commands

import (
	"path/filepath"
	"strings"
)

// MediaKind is the classification of a local file by extension.
type MediaKind int

const (
	MediaUnsupported MediaKind = iota
	MediaPhoto
	MediaVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaPhoto:
		return "photo"
	case MediaVideo:
		return "video"
	default:
		return "unsupported"
	}
}

// Extension allow-lists of the remote store. Keys are upper case without
// the dot.
var photoExtensions = map[string]struct{}{
	"BMP": {}, "GIF": {}, "HEIC": {}, "ICO": {}, "JPG": {}, "PNG": {},
	"TIFF": {}, "WEBP": {},
}

var videoExtensions = map[string]struct{}{
	"3GP": {}, "3G2": {}, "ASF": {}, "AVI": {}, "DIVX": {}, "M2T": {},
	"M2TS": {}, "M4V": {}, "MKV": {}, "MMV": {}, "MOD": {}, "MOV": {},
	"MP4": {}, "MPG": {}, "MTS": {}, "TOD": {}, "WMV": {},
}

// ClassifyMedia classifies a filename by the substring after its last dot,
// case-insensitively. Filenames without an extension are unsupported.
func ClassifyMedia(filename string) MediaKind {
	ext := filepath.Ext(filename)
	if ext == "" {
		return MediaUnsupported
	}
	ext = strings.ToUpper(ext[1:])

	if _, ok := photoExtensions[ext]; ok {
		return MediaPhoto
	}
	if _, ok := videoExtensions[ext]; ok {
		return MediaVideo
	}
	return MediaUnsupported
}
