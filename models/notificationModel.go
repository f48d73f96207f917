package models

// Notification is the frame pushed to websocket clients when an order is
// placed or changes status.
type Notification struct {
	Event   string `json:"event"`
	Payload Order  `json:"payload"`
}
