package ecs

import (
	"github.com/phanxgames/tilt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ParamsEventType is the Donburi event type for published card parameters.
var ParamsEventType = events.NewEventType[tilt.ParamsEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a ParamsSink backed by a Donburi world. Events are
// queued on ParamsEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) tilt.ParamsSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) PublishParams(event tilt.ParamsEvent) {
	ParamsEventType.Publish(s.world, event)
}
