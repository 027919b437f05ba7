package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are populated by the physics system when the entity is
// first seen; until then only the configuration fields are meaningful.
type PhysicsBody struct {
	Body         *cp.Body
	Shape        *cp.Shape
	GroundSensor *cp.Shape
	Width        float64
	Height       float64
	OffsetX      float64
	OffsetY      float64
	Mass         float64
	Friction     float64
	IsPlayer     bool
	IsEnemy      bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
