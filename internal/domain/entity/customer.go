package entity

import "time"

// Customer representa un cliente del punto de venta.
// Email es opcional pero único cuando está presente.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
