// Package ph is a small layered 2D game engine for [Ebitengine].
//
// PH provides the per-frame scheduler, a particle ring buffer, an
// immediate-mode drawing surface, sound scheduling with crossfades, asset
// lookup and input routing that a small arcade or management game needs.
//
// # Quick start
//
// Build layers, hand them to a [LayerManager] and call [Run]:
//
//	m := ph.NewLayerManager()
//	m.SetMainLayers(menu)
//	m.SetTopLayers(cursor)
//	ph.Run(m, ph.RunConfig{Title: "My Game", Width: 320, Height: 240, Scale: 3})
//
// # Layers
//
// A [Layer] draws, updates and handles input. The manager keeps three bands,
// bottom, main and top, and concatenates them into one active sequence.
// Draw walks the sequence bottom to top. Update and input walk it top to
// bottom and stop at the first layer that returns false, so a modal layer
// placed above others can swallow ticks and events. Embed [BaseLayer] to get
// pass-through defaults for the methods a layer does not care about.
//
// Lifecycle hooks fire when band changes add or remove a layer:
//
//	m.SetMainLayers(a, b)
//	m.SetMainLayers(b, c) // a.HandleLayerRemoved(), then c.HandleLayerAdded()
//
// # Particles
//
// [ParticlePool] is a fixed-capacity ring buffer of ballistic particles.
// Bursts overwrite the oldest slots when the pool is full.
//
// # Sound
//
// [Mixer] implements [SoundPlayer] on ebiten/audio. Plays can be scheduled
// at a future time and voices can be crossfaded with gween tweens.
//
// [Ebitengine]: https://ebitengine.org
package ph
