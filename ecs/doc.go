// Package ecs provides ECS adapters for tilt's parameter stream.
//
// The primary adapter is [NewDonburiSink], which publishes every parameter
// set a card produces into a [Donburi] world as a typed event. Subscribe to
// [ParamsEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	board.SetParamsSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
