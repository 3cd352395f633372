// Package service contains the OTP and session core behind the auth
// endpoints. This file defines the credential and session error taxonomy.
// All four values are client-visible failures: there is no retry or
// automatic re-issuance, the only recovery is requesting a fresh challenge
// or re-authenticating. Storage failures are not part of this taxonomy and
// propagate as repository.ErrStorageUnavailable.
package service

import "errors"

// ErrInvalidCredential is returned when no challenge exists for a phone
// number or the submitted code does not match the stored one.
var ErrInvalidCredential = errors.New("invalid otp")

// ErrCredentialExpired is returned when the matched challenge's expiry is
// at or before the current time.
var ErrCredentialExpired = errors.New("otp expired")

// ErrUnauthenticated is returned when no session matches a bearer token.
var ErrUnauthenticated = errors.New("invalid token")

// ErrSessionExpired is returned when a matched session's expiry is at or
// before the current time.
var ErrSessionExpired = errors.New("session expired")
