package controller

import "github.com/MKhiriev/keylock/models"

// SubmissionState is the state of a [SubmissionController]: one of [Idle],
// [Loading], [Success] or [Failed].
type SubmissionState interface {
	isSubmissionState()
}

// Idle is the resting form. Notice holds a validation message, if any.
type Idle struct {
	Notice string
}

// Loading means one create exchange is in flight.
type Loading struct{}

// Success holds the created link.
type Success struct {
	Result models.ShareResult
}

// Failed holds the user-facing failure message and the underlying error.
type Failed struct {
	Message string
	Err     error
}

func (Idle) isSubmissionState()    {}
func (Loading) isSubmissionState() {}
func (Success) isSubmissionState() {}
func (Failed) isSubmissionState()  {}

// RedemptionState is the state of a [RedemptionController]: one of
// [RedeemLoading], [Found] or [NotFound].
type RedemptionState interface {
	isRedemptionState()
}

// RedeemLoading is the initial state; the fetch for Reference is pending.
type RedeemLoading struct {
	Reference string
}

// Found holds the revealed secret.
type Found struct {
	Secret models.RedeemedSecret
}

// NotFound holds the message shown instead of the secret.
type NotFound struct {
	Message string
}

func (RedeemLoading) isRedemptionState() {}
func (Found) isRedemptionState()         {}
func (NotFound) isRedemptionState()      {}
