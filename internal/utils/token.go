package utils // package utils provides helper functions for OTP and session token generation

import (
	"crypto/rand"     // secure random number generation
	"encoding/base64" // URL-safe encoding for session tokens
	"fmt"             // zero-padded formatting of OTP codes
	"math/big"        // big.Int bound for crypto/rand.Int
	"strings"         // string building for phone masking
)

// sessionTokenBytes is the amount of raw entropy behind a bearer token.
// 24 bytes (192 bits) encodes to a 32-character URL-safe string, well above
// the point where collisions are a practical concern.
const sessionTokenBytes = 24

// otpDigits is the fixed width of a one-time code.  Codes are drawn
// uniformly from 000000–999999 and zero-padded to this width.
const otpDigits = 6

// NewOTPCode returns a uniformly random 6-digit numeric code as a
// zero-padded string.  The code is drawn from crypto/rand so it cannot be
// predicted from previous codes.  An error is only possible if the system
// random source fails.
func NewOTPCode() (string, error) {
	// rand.Int returns a uniform value in [0, 10^6).  Using the half-open
	// bound avoids any modulo bias a naive byte draw would introduce.
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	// Zero-pad to six digits so "42" becomes "000042".
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// NewSessionToken returns an opaque URL-safe bearer token generated from
// cryptographically secure random bytes.  The token is stored verbatim in
// the session collection and handed to the client; it carries no encoded
// claims, so every validation goes back to the store.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	// RawURLEncoding keeps the token free of '+', '/' and padding so it can
	// travel in headers and query strings without escaping.
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MaskPhone obscures a phone number for echoing back in OTP responses.
// The last four digits are kept; within the leading prefix the digits '0'
// and '1' are replaced with '*'.  Numbers of four digits or fewer are
// returned unchanged since there is no prefix to mask.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	prefix := phone[:len(phone)-4]
	prefix = strings.ReplaceAll(prefix, "0", "*")
	prefix = strings.ReplaceAll(prefix, "1", "*")
	return prefix + phone[len(phone)-4:]
}
