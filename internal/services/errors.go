package services

import "errors"

// Economy rule violations reported to callers as typed failures. Missing ids
// surface as repositories.ErrNotFound.
var (
	// ErrAlreadyRedeemed reports a redeem attempt on a redeemed coupon
	ErrAlreadyRedeemed = errors.New("coupon already redeemed")

	// ErrUnredeemedCoupon reports a delete attempt on an unredeemed coupon,
	// which would silently discard an outstanding reward obligation
	ErrUnredeemedCoupon = errors.New("cannot delete unredeemed coupon")

	// ErrInsufficientPoints reports a draw with no affordable challenge
	ErrInsufficientPoints = errors.New("insufficient points")
)
