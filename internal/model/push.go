package model

import "time"

// PushSubscription is one browser/device registered for web push.
type PushSubscription struct {
	ID        int64     `json:"id"`
	Endpoint  string    `json:"endpoint"`
	P256dhKey string    `json:"p256dh_key"`
	AuthKey   string    `json:"auth_key"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
