package physics

import (
	"PongSim/core"
	"time"

	"github.com/ByteArena/box2d"
)

// PixelsPerMeter maps arena pixels onto box2d's MKS units. At the default tick a ball speed of
// 10 px/tick is 12.5 m/s, well inside box2d's per-step translation limit and above its
// restitution velocity threshold.
const PixelsPerMeter = 50.0

const (
	velocityIterations = 8
	positionIterations = 3
)

// World is the box2d rigid-body world behind core.Engine. Paddles, ceiling and floor are
// static boxes; the ball is a dynamic bullet circle with full restitution and no friction.
type World struct {
	world          box2d.B2World
	bodies         map[core.BodyId]*box2d.B2Body
	ticksPerSecond float64
}

// NewWorld builds the arena bodies. Collision starts are pushed onto contacts during Step.
func NewWorld(s core.Settings, contacts *core.CollisionQueue) *World {
	w := &World{
		world:          box2d.MakeB2World(box2d.MakeB2Vec2(0, 0)),
		bodies:         make(map[core.BodyId]*box2d.B2Body),
		ticksPerSecond: s.TicksPerSecond(),
	}
	w.world.SetContactListener(&contactListener{queue: contacts})

	half := s.BarrierThickness / 2
	w.addBox(core.BodyCeiling, core.Vector2{X: s.ArenaWidth / 2, Y: -half}, s.ArenaWidth, s.BarrierThickness)
	w.addBox(core.BodyFloor, core.Vector2{X: s.ArenaWidth / 2, Y: s.ArenaHeight + half}, s.ArenaWidth, s.BarrierThickness)

	for _, side := range []core.Side{core.Left, core.Right} {
		p := core.NewPaddle(side, s)
		w.addBox(core.PaddleBody(side), p.Position, p.Width, p.Height)
	}

	w.addBall(s.ArenaWidth/2, s.ArenaHeight/2, s.BallRadius)
	return w
}

func (w *World) addBox(id core.BodyId, center core.Vector2, width, height float64) {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position = toMeters(center)

	body := w.world.CreateBody(&def)
	body.SetUserData(id)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(width/2/PixelsPerMeter, height/2/PixelsPerMeter)

	fixture := box2d.MakeB2FixtureDef()
	fixture.Shape = &shape
	fixture.Friction = 0
	fixture.Restitution = 1
	body.CreateFixtureFromDef(&fixture)

	w.bodies[id] = body
}

func (w *World) addBall(x, y, radius float64) {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = toMeters(core.Vector2{X: x, Y: y})
	def.Bullet = true
	def.FixedRotation = true
	def.AllowSleep = false
	def.LinearDamping = 0

	body := w.world.CreateBody(&def)
	body.SetUserData(core.BodyBall)

	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius / PixelsPerMeter

	fixture := box2d.MakeB2FixtureDef()
	fixture.Shape = &shape
	fixture.Density = 1
	fixture.Friction = 0
	fixture.Restitution = 1
	body.CreateFixtureFromDef(&fixture)

	w.bodies[core.BodyBall] = body
}

// Step advances the world by dt of simulated time.
func (w *World) Step(dt time.Duration) {
	w.world.Step(dt.Seconds(), velocityIterations, positionIterations)
}

func (w *World) Position(id core.BodyId) core.Vector2 {
	return toPixels(w.bodies[id].GetPosition())
}

func (w *World) Velocity(id core.BodyId) core.Vector2 {
	v := w.bodies[id].GetLinearVelocity()
	scale := PixelsPerMeter / w.ticksPerSecond
	return core.Vector2{X: v.X * scale, Y: v.Y * scale}
}

func (w *World) SetPosition(id core.BodyId, p core.Vector2) {
	body := w.bodies[id]
	body.SetTransform(toMeters(p), body.GetAngle())
}

// SetVelocity takes pixels per tick. Static bodies ignore it.
func (w *World) SetVelocity(id core.BodyId, v core.Vector2) {
	scale := w.ticksPerSecond / PixelsPerMeter
	w.bodies[id].SetLinearVelocity(box2d.MakeB2Vec2(v.X*scale, v.Y*scale))
}

func toMeters(p core.Vector2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(p.X/PixelsPerMeter, p.Y/PixelsPerMeter)
}

func toPixels(v box2d.B2Vec2) core.Vector2 {
	return core.Vector2{X: v.X * PixelsPerMeter, Y: v.Y * PixelsPerMeter}
}

// contactListener forwards box2d's begin-contact callbacks, which fire inside World.Step.
type contactListener struct {
	queue *core.CollisionQueue
}

func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	a, okA := contact.GetFixtureA().GetBody().GetUserData().(core.BodyId)
	b, okB := contact.GetFixtureB().GetBody().GetUserData().(core.BodyId)
	if okA && okB {
		l.queue.Push(core.Contact{A: a, B: b})
	}
}

func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {}

func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}
