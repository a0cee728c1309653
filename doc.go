// Package seasons renders an animated 2D landscape (sky, ground, sun and
// moon, weather, a house and a tree) that cycles through the seasons and
// times of day, using nothing but point plotting.
//
// # Rasterization
//
// A [Rasterizer] draws integer Bresenham lines and midpoint circles onto a
// [Surface], the minimal drawing target exposing SetColor, PlotPixel, Clear
// and Present. [Framebuffer] is the CPU implementation; its origin is the
// bottom-left corner with Y increasing upward.
//
// # Scene model
//
// [State] holds the [Season], the [SkyPhase] and a time-of-day clock that
// completes a day every ten seconds. Seasons and sky phases are closed
// enumerations advanced with CycleSeason and CycleSkyPhase.
//
// Each season except summer animates one [ParticleSystem]: rain in spring,
// falling leaves in fall and snow in winter. Particle pools persist across
// frames and respawn above the top edge once they reach the ground line.
//
// [Renderer] composes these into frames:
//
//	fb, _ := seasons.NewFramebuffer(800, 600)
//	state := seasons.NewState()
//	rd := seasons.NewRenderer(fb, 800, 600, state, seasons.NewRand(1))
//	state.AdvanceTime(1.0 / 60)
//	rd.RenderFrame()
//
// # Running
//
// [Scene] wraps the renderer in an [Ebitengine] game with key bindings, a
// fading HUD, an FPS overlay, screenshots and JSON-scripted input for
// automated checks:
//
//	cfg, err := seasons.LoadConfig()
//	// ...
//	scene, err := seasons.NewScene(cfg)
//	// ...
//	err = seasons.Run(scene, cfg.RunConfig())
//
// [Ebitengine]: https://ebitengine.org
package seasons
