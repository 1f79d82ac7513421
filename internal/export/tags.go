package export

import (
	"fmt"

	"github.com/bogem/id3v2/v2"

	"github.com/example/go-bib-tts/internal/bib"
)

// writeTags stamps ID3v2 metadata onto an MP3 file in place. The album
// carries the bibliography source name so players group one library's
// records together.
func writeTags(path string, rec bib.Record, album, albumArtist string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetArtist(rec.Author)
	tag.SetTitle(rec.Title)
	if album != "" {
		tag.SetAlbum(album)
	}
	if albumArtist != "" {
		tag.AddTextFrame(tag.CommonID("Band/Orchestra/Accompaniment"), tag.DefaultEncoding(), albumArtist)
	}

	return tag.Save()
}
