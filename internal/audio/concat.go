package audio

import (
	"errors"
	"fmt"
)

// ConcatWAV merges WAV payloads into one file by decoding and appending
// their samples. All parts must share the same PCM format; the merged file
// keeps it.
func ConcatWAV(parts [][]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, errors.New("no WAV data to merge")
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	var merged []float32
	var params Params
	for i, data := range parts {
		samples, p, err := DecodeWAV(data)
		if err != nil {
			return nil, fmt.Errorf("decode part %d: %w", i+1, err)
		}
		if i == 0 {
			params = p
		} else if p != params {
			return nil, fmt.Errorf("%w: part %d is %s, want %s", ErrFormatMismatch, i+1, p, params)
		}
		merged = append(merged, samples...)
	}
	return EncodeWAV(merged, params)
}
