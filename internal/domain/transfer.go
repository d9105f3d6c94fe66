package domain

import "time"

type TransferStatus string

// Transfer status is monotone from this client's point of view:
// pending moves to approved or rejected and is never reversed here.
const (
	TransferStatusPending  TransferStatus = "pending"
	TransferStatusApproved TransferStatus = "approved"
	TransferStatusRejected TransferStatus = "rejected"
)

// Deposit is a customer deposit request with its proof screenshot.
type Deposit struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	User          UserSummary    `json:"user"`
	Amount        float64        `json:"amount"`
	ScreenshotURL string         `json:"screenshotUrl"`
	Status        TransferStatus `json:"status"`
	AdminNotes    string         `json:"adminNotes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Withdrawal is a customer withdrawal request to an external wallet.
type Withdrawal struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	User          UserSummary    `json:"user"`
	Amount        float64        `json:"amount"`
	Platform      string         `json:"platform"`
	WalletAddress string         `json:"walletAddress"`
	Status        TransferStatus `json:"status"`
	AdminNotes    string         `json:"adminNotes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
