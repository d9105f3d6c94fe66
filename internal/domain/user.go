package domain

import "time"

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// AdminUser is the authenticated operator identity returned by the login
// and profile endpoints.
type AdminUser struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a AdminUser) FullName() string {
	return a.FirstName + " " + a.LastName
}

// User is a platform customer. Balance fields are backend-computed; the
// only client-side mutation path is the adjust-balance admin action.
type User struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	ProfileImage  string     `json:"profileImage,omitempty"`
	DepositAmount float64    `json:"depositAmount"`
	ProfitAmount  float64    `json:"profitAmount"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        UserStatus `json:"status"`
	Role          string     `json:"role"`
	TRCAddress    string     `json:"trcAddress,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PendingUser is a signup awaiting an admin decision. It leaves the pending
// set exactly once, on approve or reject, and is never edited in place.
type PendingUser struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ProfileImage  string    `json:"profileImage,omitempty"`
	DepositAmount float64   `json:"depositAmount"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	AccountStatus string    `json:"accountStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u PendingUser) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserSummary is the embedded owner snapshot carried by deposits,
// withdrawals and notifications. It may drift from the user list and is
// not reconciled locally.
type UserSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u UserSummary) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BalanceChange is the backend's report of an applied balance adjustment.
type BalanceChange struct {
	TotalAmount   float64 `json:"totalAmount"`
	BalanceChange float64 `json:"balanceChange"`
}
