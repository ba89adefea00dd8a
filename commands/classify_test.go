package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     MediaKind
	}{
		{name: "jpg photo", filename: "IMG_0001.jpg", want: MediaPhoto},
		{name: "upper case photo", filename: "IMG_0001.JPG", want: MediaPhoto},
		{name: "mixed case photo", filename: "scan.Heic", want: MediaPhoto},
		{name: "webp photo", filename: "meme.webp", want: MediaPhoto},
		{name: "mov video", filename: "clip.mov", want: MediaVideo},
		{name: "m2ts video", filename: "tape.M2TS", want: MediaVideo},
		{name: "raw unsupported", filename: "IMG_0001.CR3", want: MediaUnsupported},
		{name: "text unsupported", filename: "notes.txt", want: MediaUnsupported},
		{name: "no extension", filename: "Makefile", want: MediaUnsupported},
		{name: "trailing dot", filename: "weird.", want: MediaUnsupported},
		{name: "only matches last extension", filename: "archive.jpg.zip", want: MediaUnsupported},
		{name: "dotfile with extension", filename: ".hidden.png", want: MediaPhoto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMedia(tt.filename))
		})
	}
}
