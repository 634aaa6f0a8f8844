// Package common contains shared sentinel errors used across
// NusaCare components.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound    = errors.New("not found")
	ErrorEmailTaken  = errors.New("email already registered")
	ErrorWiFiIDTaken = errors.New("wifi id already claimed")

	// registration input errors
	ErrorMissingFields = errors.New("missing required fields")
	ErrorInvalidWiFiID = errors.New("invalid wifi id format")

	// auth-specific errors
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidToken       = errors.New("invalid token")
	ErrorTokenExpired       = errors.New("token expired")

	// billing-specific errors
	ErrorPaymentDeclined = errors.New("payment declined by bank")

	// service specific errors
	ErrorInternal = errors.New("internal error")
)
