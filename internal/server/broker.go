package server

import (
	"encoding/json"
	"sync"

	"github.com/maplequiz/geoquiz/internal/game"
)

// FeedbackEvent is the payload published to a game's SSE subscribers. The
// web client turns these into sound and confetti.
type FeedbackEvent struct {
	Type string `json:"type"` // correct | incorrect | finished
}

// Broker is an in-process pub/sub for feedback events, keyed by game ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel receiving JSON-encoded events for the game.
func (b *Broker) Subscribe(gameID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[gameID] == nil {
		b.subs[gameID] = make(map[chan []byte]struct{})
	}
	b.subs[gameID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the game's subscribers.
func (b *Broker) Unsubscribe(gameID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[gameID], ch)
	if len(b.subs[gameID]) == 0 {
		delete(b.subs, gameID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the game.
func (b *Broker) Publish(gameID string, event FeedbackEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[gameID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

// Sink adapts the broker to the session's feedback contract for one game.
func (b *Broker) Sink(gameID string) game.FeedbackSink {
	return feedbackSink{broker: b, gameID: gameID}
}

type feedbackSink struct {
	broker *Broker
	gameID string
}

func (s feedbackSink) Correct()   { s.broker.Publish(s.gameID, FeedbackEvent{Type: "correct"}) }
func (s feedbackSink) Incorrect() { s.broker.Publish(s.gameID, FeedbackEvent{Type: "incorrect"}) }
func (s feedbackSink) Finished()  { s.broker.Publish(s.gameID, FeedbackEvent{Type: "finished"}) }
