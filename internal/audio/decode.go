package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cwbudde/wav"
)

// Params describes the PCM format of a WAV payload.
type Params struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func (p Params) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit", p.SampleRate, p.Channels, p.BitDepth)
}

// ErrFormatMismatch is returned when WAV payloads to be merged disagree on
// their PCM format.
var ErrFormatMismatch = errors.New("WAV format mismatch")

// DecodeWAV decodes WAV bytes into float32 PCM samples and the format they
// were encoded with.
func DecodeWAV(data []byte) ([]float32, Params, error) {
	if len(data) == 0 {
		return nil, Params{}, errors.New("empty WAV input")
	}

	r := bytes.NewReader(data)
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Params{}, errors.New("invalid WAV file")
	}

	params := Params{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Params{}, fmt.Errorf("reading PCM data: %w", err)
	}

	return buf.Data, params, nil
}
