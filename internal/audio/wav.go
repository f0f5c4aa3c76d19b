package audio

import (
	"encoding/binary"
	"errors"
	"time"
)

var errNotWav = errors.New("not a wav payload")

// WavDuration decodes a RIFF/WAVE header and derives the audio duration from
// the data chunk size and the byte rate, rounded up to whole seconds.
func WavDuration(data []byte) (time.Duration, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0, errNotWav
	}

	var byteRate uint32
	var dataSize uint32

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := binary.LittleEndian.Uint32(data[pos+4 : pos+8])
		body := pos + 8

		switch id {
		case "fmt ":
			if body+16 > len(data) {
				return 0, errNotWav
			}
			byteRate = binary.LittleEndian.Uint32(data[body+8 : body+12])
		case "data":
			dataSize = size
		}

		pos = body + int(size)
		if size%2 == 1 {
			pos++ // chunks are word-aligned
		}
	}

	if byteRate == 0 || dataSize == 0 {
		return 0, errNotWav
	}

	secs := (uint64(dataSize) + uint64(byteRate) - 1) / uint64(byteRate)
	return time.Duration(secs) * time.Second, nil
}
