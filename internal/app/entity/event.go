package entity

type EventType int

const (
	EventNewOrder EventType = 1
	EventReminder EventType = 2
)

// StatusEvent is pushed to connected staff clients. It is never persisted.
type StatusEvent struct {
	Type    EventType
	OrderID OrderID
	Content string
}

func CreateNewOrderEvent(order Order) StatusEvent {
	return StatusEvent{
		Type:    EventNewOrder,
		OrderID: order.ID,
		Content: "order number: " + order.Number.String(),
	}
}

func CreateReminderEvent(order Order) StatusEvent {
	return StatusEvent{
		Type:    EventReminder,
		OrderID: order.ID,
		Content: "order number: " + order.Number.String(),
	}
}
