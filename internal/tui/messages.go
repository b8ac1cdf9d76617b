package tui

import (
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/models"
)

const (
	pageMenu    = "menu"
	pageShare   = "share"
	pageRedeem  = "redeem"
	pageSecret  = "secret"
	pageHistory = "history"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// openSecretMsg asks the secret page to redeem reference.
type openSecretMsg struct {
	reference string
}

type shareDoneMsg struct {
	ctrl    *controller.SubmissionController
	outcome controller.ShareOutcome
}

type redeemDoneMsg struct {
	ctrl    *controller.RedemptionController
	outcome controller.RedeemOutcome
}

type historyLoadedMsg struct {
	entries []models.ShareHistoryEntry
	err     error
}

// copyExpiredMsg re-renders the page once the "copied" acknowledgement
// window is over.
type copyExpiredMsg struct{}
