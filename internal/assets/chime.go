package assets

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate of the synthesized PCM.
const SampleRate = 44100

// Chime notes: a rising arpeggio, each note decaying exponentially.
var chimeNotes = []struct {
	freq  float64 // Hz
	start time.Duration
}{
	{1318.51, 0},                      // E6
	{1567.98, 90 * time.Millisecond},  // G6
	{2093.00, 180 * time.Millisecond}, // C7
}

const (
	chimeLength = 700 * time.Millisecond
	chimeDecay  = 6.0 // per second
	chimeGain   = 0.25
)

func synthChime() []byte {
	n := int(chimeLength.Seconds() * SampleRate)
	buf := make([]byte, n*4) // 2 channels * 2 bytes

	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		var v float64
		for _, note := range chimeNotes {
			dt := t - note.start.Seconds()
			if dt < 0 {
				continue
			}
			v += math.Sin(2*math.Pi*note.freq*dt) * math.Exp(-chimeDecay*dt)
		}
		v *= chimeGain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
