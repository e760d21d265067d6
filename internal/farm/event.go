package farm

import "time"

// EventKind classifies journal events.
type EventKind string

const (
	EventPlant    EventKind = "plant"
	EventHarvest  EventKind = "harvest"
	EventTrade    EventKind = "trade"
	EventBoost    EventKind = "boost"
	EventTrophy   EventKind = "trophy"
	EventRejected EventKind = "rejected"
)

// Event is a notable player action, queued for the journal.
type Event struct {
	Kind      EventKind
	Detail    string
	GoldDelta int
	At        time.Time
}

func (g *Game) record(kind EventKind, detail string, gold int) {
	g.events = append(g.events, Event{Kind: kind, Detail: detail, GoldDelta: gold, At: g.clock.Now()})
}

// DrainEvents returns and clears the queued events.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}
