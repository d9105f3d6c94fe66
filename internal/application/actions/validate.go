package actions

import (
	"strconv"
	"strings"

	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

// TRC-20 addresses are base58, always 34 characters with a T prefix.
const (
	trcAddressPrefix = "T"
	trcAddressLength = 34
)

func validPayoutAddress(addr string) bool {
	return strings.HasPrefix(addr, trcAddressPrefix) && len(addr) == trcAddressLength
}

func payoutAddressError() error {
	return &domain.ValidationError{
		Field:  "payout address",
		Reason: "must start with T and be exactly 34 characters",
	}
}

// UserValidator covers the users page actions. Block, unblock and password
// reset need no input; balance adjustment and payout address edits do.
func UserValidator(kind Kind, in Input) error {
	switch kind {
	case KindAdjustBalance:
		balance, err := strconv.ParseFloat(strings.TrimSpace(in.NewBalance), 64)
		if err != nil {
			return &domain.ValidationError{Field: "new balance", Reason: "must be a number"}
		}
		if balance < 0 {
			return &domain.ValidationError{Field: "new balance", Reason: "must not be negative"}
		}
		if strings.TrimSpace(in.Reason) == "" {
			return &domain.ValidationError{Field: "reason", Reason: "is required for a balance adjustment"}
		}
	case KindSetPayoutAddress:
		if !validPayoutAddress(in.PayoutAddress) {
			return payoutAddressError()
		}
	}
	return nil
}

// PendingUserValidator covers signup review: approval assigns a payout
// address, rejection demands a reason.
func PendingUserValidator(kind Kind, in Input) error {
	switch kind {
	case KindApprove:
		if !validPayoutAddress(in.PayoutAddress) {
			return payoutAddressError()
		}
	case KindReject:
		if strings.TrimSpace(in.Reason) == "" {
			return &domain.ValidationError{Field: "reason", Reason: "is required to reject a signup"}
		}
	}
	return nil
}

// TransferValidator covers deposit and withdrawal decisions. Admin notes
// are optional free text on both approve and reject.
func TransferValidator(Kind, Input) error {
	return nil
}

// NotificationValidator covers the send dialog; mark-read needs nothing.
func NotificationValidator(kind Kind, in Input) error {
	if kind != KindSend {
		return nil
	}
	if strings.TrimSpace(in.RecipientID) == "" {
		return &domain.ValidationError{Field: "recipient", Reason: "is required"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return &domain.ValidationError{Field: "message", Reason: "must not be empty"}
	}
	if in.NotificationType != "" && !domain.ValidNotificationType(in.NotificationType) {
		return &domain.ValidationError{Field: "type", Reason: "must be deposit, withdrawal, profit or general"}
	}
	return nil
}
