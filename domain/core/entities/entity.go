package entities

import "time"

// Entity holds the fields shared by every record kind stored in the table:
// the owning user's identifier and the creation/update timestamps. Entity
// kinds embed it by composition rather than inheriting from a base type.
type Entity struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
