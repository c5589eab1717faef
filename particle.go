package games

import "math"

type particle struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining milliseconds
	maxLife float64
	size    float64
	color   Color
	sprite  *Sprite
}

// EmitterConfig controls how particles spawn and move. Speeds are in
// pixels per second; lifetimes in milliseconds.
type EmitterConfig struct {
	// MaxParticles is the pool size. Spawns beyond it are dropped.
	MaxParticles int
	// EmitRate is particles per second while the emitter is started.
	EmitRate float64
	Lifetime Range
	Speed    Range
	// Angle is the emission direction in radians.
	Angle Range
	// Size is the side of the square drawn when Sprites is empty.
	Size Range
	// Gravity is acceleration in pixels per second squared.
	Gravity Vec2
	// Friction is the fraction of velocity lost per second, in [0, 1].
	Friction float64
	// Colors are picked per particle. Empty means the active color.
	Colors []Color
	// Sprites are picked per particle instead of squares.
	Sprites []*Sprite
	// FadeOut fades particles to transparent over their life.
	FadeOut bool
}

// Emitter simulates a pool of particles. Positions are relative to the
// emitter's X, Y.
type Emitter struct {
	X, Y      float64
	config    EmitterConfig
	rand      *Random
	particles []particle
	alive     int
	emitAccum float64
	active    bool
}

// NewEmitter creates an emitter drawing randomness from r.
func NewEmitter(cfg EmitterConfig, r *Random) *Emitter {
	n := cfg.MaxParticles
	if n <= 0 {
		n = 128
	}
	return &Emitter{
		config:    cfg,
		rand:      r,
		particles: make([]particle, n),
	}
}

// Start begins continuous emission at EmitRate.
func (e *Emitter) Start() { e.active = true }

// Stop ends emission; live particles run out their lifetime.
func (e *Emitter) Stop() { e.active = false }

// Reset stops emission and kills every particle.
func (e *Emitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// Alive returns the number of live particles.
func (e *Emitter) Alive() int { return e.alive }

// Config returns the config for live tuning.
func (e *Emitter) Config() *EmitterConfig { return &e.config }

// Burst spawns up to n particles at once.
func (e *Emitter) Burst(n int) {
	for range n {
		if e.alive >= len(e.particles) {
			return
		}
		e.spawn()
	}
}

// Update advances the simulation by dt milliseconds.
func (e *Emitter) Update(dt float64) {
	sec := dt / 1000
	gx, gy := e.config.Gravity.X*sec, e.config.Gravity.Y*sec
	damp := math.Max(0, 1-e.config.Friction*sec)

	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		p.vx = (p.vx + gx) * damp
		p.vy = (p.vy + gy) * damp
		p.x += p.vx * sec
		p.y += p.vy * sec
		i++
	}

	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * sec
		for e.emitAccum >= 1 {
			e.emitAccum--
			if e.alive < len(e.particles) {
				e.spawn()
			}
		}
	}
}

func (e *Emitter) spawn() {
	p := &e.particles[e.alive]
	angle := e.config.Angle.Sample(e.rand)
	speed := e.config.Speed.Sample(e.rand)
	*p = particle{
		vx:   math.Cos(angle) * speed,
		vy:   math.Sin(angle) * speed,
		life: e.config.Lifetime.Sample(e.rand),
		size: e.config.Size.Sample(e.rand),
	}
	if p.life <= 0 {
		p.life = 1000
	}
	p.maxLife = p.life
	if p.size <= 0 {
		p.size = 1
	}
	if len(e.config.Colors) > 0 {
		p.color = Element(e.rand, e.config.Colors)
	}
	if len(e.config.Sprites) > 0 {
		p.sprite = Element(e.rand, e.config.Sprites)
	}
	e.alive++
}

// Draw renders live particles in the context's current view.
func (e *Emitter) Draw(c *Context) {
	base := c.State().Color
	for i := range e.alive {
		p := &e.particles[i]
		x, y := e.X+p.x, e.Y+p.y
		if p.sprite != nil {
			c.DrawSprite(p.sprite, x, y)
			continue
		}
		col := base
		if len(e.config.Colors) > 0 {
			col = p.color
		}
		if e.config.FadeOut {
			col.A *= p.life / p.maxLife
		}
		c.surface.FillRect(Rect{X: x - p.size/2, Y: y - p.size/2, Width: p.size, Height: p.size}, col)
	}
}
