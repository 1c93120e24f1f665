package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/tilt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_PublishParams(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tilt.ParamsEvent
	ParamsEventType.Subscribe(world, func(w donburi.World, e tilt.ParamsEvent) {
		received = append(received, e)
	})

	sink.PublishParams(tilt.ParamsEvent{Card: "profile", Params: tilt.ComputeParams(180, 200, 360, 400)})
	sink.PublishParams(tilt.ParamsEvent{Card: "profile", Params: tilt.ComputeParams(360, 0, 360, 400), Active: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	ParamsEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Params.RotateX != 0 || received[0].Params.RotateY != 0 {
		t.Errorf("event 0 should be at rest: %+v", received[0].Params)
	}
	if !received[1].Active || received[1].Params.PercentX != 100 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_BoardWiring(t *testing.T) {
	world := donburi.NewWorld()
	board := tilt.NewBoard(tilt.DefaultConfig())
	board.SetParamsSink(NewDonburiSink(world))
	board.NewCard("a", tilt.Rect{Width: 100, Height: 100})

	var count int
	ParamsEventType.Subscribe(world, func(w donburi.World, e tilt.ParamsEvent) {
		if e.Card != "a" {
			t.Errorf("unexpected card %q", e.Card)
		}
		count++
	})

	board.InjectMove(80, 20)
	for i := 0; i < 3; i++ {
		_ = board.UpdateBy(16 * time.Millisecond)
	}
	events.ProcessAllEvents(world)

	if count == 0 {
		t.Fatal("expected published events from the board")
	}
}
