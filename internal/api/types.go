package api

import "time"

// AccountType discriminates which screens and capabilities an account may use.
type AccountType string

const (
	// AccountTypeUser is a regular end-user account
	AccountTypeUser AccountType = "user"
	// AccountTypeBusiness is a business account that can manage bars and events
	AccountTypeBusiness AccountType = "business"
)

// User represents a barhop platform user profile.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	BirthDate   time.Time   `json:"birth_date"`
	AccountType AccountType `json:"account_type"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Bar represents a bar listing.
type Bar struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Event represents an event hosted at a bar.
type Event struct {
	ID          string    `json:"id"`
	BarID       string    `json:"bar_id"`
	BarName     string    `json:"bar_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review represents a user review of a bar.
type Review struct {
	ID        string    `json:"id"`
	BarID     string    `json:"bar_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	BirthDate   time.Time   `json:"birth_date"`
	Password    string      `json:"password"`
	AccountType AccountType `json:"account_type"`
	PhotoURL    string      `json:"photo_url,omitempty"`
}

// AuthResponse is returned by login and register on success: the bearer
// token plus the resolved user profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateBarRequest represents a business request to create a bar
type CreateBarRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// UpdateBarRequest represents a business request to update a bar
type UpdateBarRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// CreateEventRequest represents a business request to create an event
type CreateEventRequest struct {
	BarID       string    `json:"bar_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// CreateReviewRequest represents a request to review a bar
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
