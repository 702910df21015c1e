// Command tonedump renders the sound cues to WAV files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/penny-rain/internal/config"
	"github.com/iburimskiy/penny-rain/internal/sound"
)

func main() {
	out := flag.String("out", ".", "output directory")
	rate := flag.Int("rate", config.SampleRate, "sample rate in Hz")
	only := flag.String("kind", "", "render a single cue (click, copy, success, whoosh, coin)")
	flag.Parse()

	log.SetPrefix("[tonedump] ")
	log.SetFlags(0)

	if *rate <= 0 {
		log.Fatalf("%v: %d", config.ErrSampleRate, *rate)
	}

	kinds := sound.Kinds()
	if *only != "" {
		k, err := sound.ParseKind(*only)
		if err != nil {
			log.Fatal(err)
		}
		kinds = []sound.Kind{k}
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	recipes := sound.Recipes()
	for _, k := range kinds {
		path := filepath.Join(*out, k.String()+".wav")
		if err := dump(path, recipes[k], beep.SampleRate(*rate)); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%v)", path, recipes[k].Duration())
	}
}

func dump(path string, r sound.Recipe, rate beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, sound.Render(r, rate), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
