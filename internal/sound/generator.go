package sound

import (
	"fmt"
	"log"
)

// Generator plays cues by kind. It keeps no per-cue state: every Play
// renders a fresh stream and hands it to the backend.
type Generator struct {
	backend Backend
	recipes map[Kind]Recipe
	enabled bool
}

func NewGenerator(b Backend, enabled bool) *Generator {
	return &Generator{
		backend: b,
		recipes: Recipes(),
		enabled: enabled,
	}
}

func (g *Generator) Enabled() bool { return g.enabled }

// Toggle flips the enabled flag and returns the new value.
func (g *Generator) Toggle() bool {
	g.enabled = !g.enabled
	return g.enabled
}

// Play triggers the cue for k. Failures are logged and dropped.
func (g *Generator) Play(k Kind) {
	if !g.enabled || g.backend == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sound %s: %v", k, r)
		}
	}()

	r, ok := g.recipes[k]
	if !ok {
		log.Printf("sound: %v", fmt.Errorf("%w: %d", ErrUnknownKind, int(k)))
		return
	}
	if err := g.backend.Play(r); err != nil {
		log.Printf("sound %s: %v", k, err)
	}
}

// Backend returns the backend cues are sent to.
func (g *Generator) Backend() Backend { return g.backend }
