package entity

import "time"

// Area agrupa materiales de trabajo (unidad organizativa de campaña).
type Area struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
