package event

import "testing"

type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) Notify(e Event) {
	r.events = append(r.events, e)
}

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus()
	rec := &recordingObserver{}
	bus.Subscribe(rec)

	bus.Publish(Welcome{Title: "Emberclash"})
	bus.Publish(AttackStarted{Attacker: "Hero", Target: "Goblin"})
	bus.Publish(DamageTaken{Target: "Goblin", Damage: 7, Remaining: 33})

	if len(rec.events) != 3 {
		t.Fatalf("delivered %d events, want 3", len(rec.events))
	}
	if _, ok := rec.events[0].(Welcome); !ok {
		t.Fatalf("first event = %T, want Welcome", rec.events[0])
	}
	if _, ok := rec.events[1].(AttackStarted); !ok {
		t.Fatalf("second event = %T, want AttackStarted", rec.events[1])
	}
	damage, ok := rec.events[2].(DamageTaken)
	if !ok {
		t.Fatalf("third event = %T, want DamageTaken", rec.events[2])
	}
	if damage.Damage != 7 || damage.Remaining != 33 {
		t.Fatalf("damage event = %+v, want damage 7 remaining 33", damage)
	}
}

func TestBusDeliversToObserversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(ObserverFunc(func(Event) {
		order = append(order, "first")
	}))
	bus.Subscribe(ObserverFunc(func(Event) {
		order = append(order, "second")
	}))

	bus.Publish(Welcome{Title: "Emberclash"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("delivery order = %v, want [first second]", order)
	}
}

func TestBusIgnoresNilObserver(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(nil)

	// Publishing must not panic with a nil observer filtered out.
	bus.Publish(Welcome{Title: "Emberclash"})
}

func TestBusDeliversNestedPublishes(t *testing.T) {
	bus := NewBus()
	rec := &recordingObserver{}

	bus.Subscribe(ObserverFunc(func(e Event) {
		if damage, ok := e.(DamageTaken); ok && damage.Remaining == 0 {
			bus.Publish(CharacterDied{Name: damage.Target})
		}
	}))
	bus.Subscribe(rec)

	bus.Publish(DamageTaken{Target: "Goblin", Damage: 7, Remaining: 0})

	if len(rec.events) != 2 {
		t.Fatalf("delivered %d events, want 2", len(rec.events))
	}
	if _, ok := rec.events[0].(CharacterDied); !ok {
		t.Fatalf("nested event = %T, want CharacterDied delivered before outer publish returns", rec.events[0])
	}
	if _, ok := rec.events[1].(DamageTaken); !ok {
		t.Fatalf("outer event = %T, want DamageTaken", rec.events[1])
	}
}
