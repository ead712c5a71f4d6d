package models

import "time"

// ServiceOffering is an entry in the append-only service catalog, keyed by
// "{expert_id}-{unix timestamp}".
type ServiceOffering struct {
	ServiceID   string         `bson:"service_id" json:"service_id"`
	ExpertID    string         `bson:"expert_id" json:"expert_id" validate:"required"`
	Title       string         `bson:"title,omitempty" json:"title,omitempty"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64        `bson:"price,omitempty" json:"price,omitempty"`
	Currency    string         `bson:"currency,omitempty" json:"currency,omitempty"`
	Extra       map[string]any `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}
