package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devshahzaibali/FSH-Traders/models"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := NewHub()

	var got1, got2 []Event
	h.Subscribe(func(e Event) { got1 = append(got1, e) })
	h.Subscribe(func(e Event) { got2 = append(got2, e) })

	h.Publish(Event{Type: OrderCreated, Order: models.Order{ID: "o1"}})

	assert.Len(t, got1, 1)
	assert.Len(t, got2, 1)
	assert.Equal(t, OrderCreated, got1[0].Type)
	assert.Equal(t, "o1", got1[0].Order.ID)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()

	var got []Event
	unsubscribe := h.Subscribe(func(e Event) { got = append(got, e) })

	h.Publish(Event{Type: StatusChanged, Order: models.Order{ID: "o1"}})
	unsubscribe()
	h.Publish(Event{Type: StatusChanged, Order: models.Order{ID: "o2"}})

	assert.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].Order.ID)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	h := NewHub()
	h.Publish(Event{Type: OrderCreated, Order: models.Order{ID: "o1"}}) // must not panic
}
