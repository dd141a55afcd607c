package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("game-1")
	defer b.Unsubscribe("game-1", ch)

	b.Publish("game-1", FeedbackEvent{Type: "correct"})

	select {
	case data := <-ch:
		var ev FeedbackEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding event: %v", err)
		}
		if ev.Type != "correct" {
			t.Errorf("type = %q, want correct", ev.Type)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestBrokerIsolatesGames(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("game-1")
	defer b.Unsubscribe("game-1", ch)

	b.Publish("game-2", FeedbackEvent{Type: "incorrect"})

	select {
	case data := <-ch:
		t.Fatalf("received another game's event: %s", data)
	default:
	}
}

func TestBrokerSink(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("game-1")
	defer b.Unsubscribe("game-1", ch)

	sink := b.Sink("game-1")
	sink.Correct()
	sink.Incorrect()
	sink.Finished()

	want := []string{"correct", "incorrect", "finished"}
	for _, wantType := range want {
		select {
		case data := <-ch:
			var ev FeedbackEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("decoding event: %v", err)
			}
			if ev.Type != wantType {
				t.Errorf("type = %q, want %q", ev.Type, wantType)
			}
		default:
			t.Fatalf("missing %q event", wantType)
		}
	}
}
