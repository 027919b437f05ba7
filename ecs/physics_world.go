package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"letterbound/ecs/component"
	"letterbound/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeGroundSensor
)

// Gravity in units/s^2; the y axis points down.
const gravity = 40.0

// PhysicsWorld owns the Chipmunk space, the static level geometry, and the
// per-enemy ground sensors that feed the behavior edge-trigger.
type PhysicsWorld struct {
	space *cp.Space

	sensorToEntity map[*cp.Shape]Entity
	sensorContacts map[Entity]int
	edgeLost       []Entity
}

// NewPhysicsWorld builds a space for a level.
func NewPhysicsWorld(level *levels.Level) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{
		space:          space,
		sensorToEntity: make(map[*cp.Shape]Entity),
		sensorContacts: make(map[Entity]int),
	}
	if level != nil {
		pw.buildStaticShapes(level)
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) buildStaticShapes(level *levels.Level) {
	for _, g := range level.Grounds {
		bb := cp.BB{L: g.X, B: g.Y, R: g.X + g.Width, T: g.Y + g.Height}
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}

	// walls so nothing leaves the playable area
	borders := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: level.Width, Y: 0}},
		{cp.Vector{X: 0, Y: level.Height}, cp.Vector{X: level.Width, Y: level.Height}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: level.Height}},
		{cp.Vector{X: level.Width, Y: 0}, cp.Vector{X: level.Width, Y: level.Height}},
	}
	for _, seg := range borders {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 0.1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
		sensor, _ := arb.Shapes()
		if ent, ok := pw.sensorToEntity[sensor]; ok {
			pw.sensorContacts[ent]++
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) {
		sensor, _ := arb.Shapes()
		ent, ok := pw.sensorToEntity[sensor]
		if !ok {
			return
		}
		pw.sensorContacts[ent]--
		if pw.sensorContacts[ent] <= 0 {
			pw.sensorContacts[ent] = 0
			pw.edgeLost = append(pw.edgeLost, ent)
		}
	}
}

// AddBody creates the dynamic body and shapes for an entity. Enemies get a
// thin ground-sensor shape under their feet.
func (pw *PhysicsWorld) AddBody(e Entity, t *component.Transform, pb *component.PhysicsBody) {
	if pw == nil || pw.space == nil || t == nil || pb == nil || pb.Body != nil {
		return
	}

	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1)) // no rotation for characters
	body.SetPosition(cp.Vector{X: t.X + pb.OffsetX, Y: t.Y + pb.OffsetY})

	shape := cp.NewBox(body, pb.Width, pb.Height, 0)
	friction := pb.Friction
	if friction <= 0 {
		friction = 0.2
	}
	shape.SetFriction(friction)
	switch {
	case pb.IsPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case pb.IsEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pb.Body = body
	pb.Shape = shape

	if pb.IsEnemy {
		hw := pb.Width * 0.4
		hh := pb.Height / 2
		bb := cp.BB{L: -hw, B: hh, R: hw, T: hh + 0.3}
		sensor := cp.NewBox2(body, bb, 0)
		sensor.SetSensor(true)
		sensor.SetCollisionType(collisionTypeGroundSensor)
		pw.space.AddShape(sensor)
		pb.GroundSensor = sensor
		pw.sensorToEntity[sensor] = e
	}
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// DrainEdgeLost returns the entities whose ground sensor lost its last
// contact since the previous drain.
func (pw *PhysicsWorld) DrainEdgeLost() []Entity {
	if pw == nil || len(pw.edgeLost) == 0 {
		return nil
	}
	out := pw.edgeLost
	pw.edgeLost = nil
	return out
}
