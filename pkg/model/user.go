package model

// Role partitions users into the three site personas.
type Role string

const (
	RoleSeeker Role = "seeker"
	RolePoster Role = "poster"
	RoleAdmin  Role = "admin"
)

// User is a registered account. Password holds a bcrypt hash, never the
// plaintext.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Locked   bool   `json:"locked"`
	Password string `json:"password,omitempty"`
}

// Session is the currently signed-in user as seen by the rest of the system.
type Session struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// Category is an admin-managed job category name.
type Category string

// Package is an admin-managed service package.
type Package struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingStatus is the settlement state of a booking.
type BookingStatus string

const (
	BookingPending BookingStatus = "pending"
	BookingSuccess BookingStatus = "success"
)

// Booking is a billing record the admin dashboard aggregates into stats.
type Booking struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Status BookingStatus `json:"status"`
	Date   int64         `json:"date"`
}
