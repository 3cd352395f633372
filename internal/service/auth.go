package service

import (
	"context"
	"errors"
	"time"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
	"github.com/agrimitra/smart-crop-advisory/internal/repository"
	"github.com/agrimitra/smart-crop-advisory/internal/utils"
)

// ChallengeStore is the slice of the credential store that holds pending
// OTP challenges. Implemented by repository.OTPRepo.
type ChallengeStore interface {
	CreateChallenge(ctx context.Context, ch model.OTPChallenge) error
	LatestByPhone(ctx context.Context, phone string) (model.OTPChallenge, error)
}

// SessionStore is the slice of the credential store that holds active
// sessions. Implemented by repository.SessionRepo.
type SessionStore interface {
	CreateSession(ctx context.Context, s model.Session) error
	ByToken(ctx context.Context, token string) (model.Session, error)
}

// FarmerStore is the identity store holding farmer profiles. Implemented
// by repository.FarmerRepo.
type FarmerStore interface {
	ByFarmerID(ctx context.Context, farmerID string) (model.Farmer, error)
	Upsert(ctx context.Context, f model.Farmer, now time.Time) error
}

// AuthService implements the OTP issuance, verification, identity upsert
// and session lifecycle. It holds no state of its own beyond the injected
// stores; every operation is a short-lived unit of work and expiry is
// always evaluated against Now() at read time, never by background sweeps.
type AuthService struct {
	Challenges ChallengeStore
	Sessions   SessionStore
	Farmers    FarmerStore
	OTPTTL     time.Duration
	SessionTTL time.Duration
	// Now supplies the current time for all expiry decisions. Injected so
	// tests can pin the clock; defaults to UTC wall-clock time.
	Now func() time.Time
}

// NewAuthService wires an AuthService with the given stores and TTLs.
func NewAuthService(ch ChallengeStore, se SessionStore, fa FarmerStore, otpTTL, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		Challenges: ch,
		Sessions:   se,
		Farmers:    fa,
		OTPTTL:     otpTTL,
		SessionTTL: sessionTTL,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// OTPDelivery is what a challenge request hands back to the caller. Code
// carries the plaintext one-time code for the demo posture; a production
// deployment sends it out of band and drops the field from responses.
type OTPDelivery struct {
	MaskedPhone string
	Code        string
}

// Verification carries the fields a client submits alongside the code on
// verify. FarmerID and the profile fields are optional.
type Verification struct {
	Phone    string
	FarmerID string
	Aadhaar  string
	Language string
	Name     string
	Location string
}

// SessionGrant is the result of a successful verification: a bearer token
// bound to the canonical farmer identifier for ExpiresIn seconds.
type SessionGrant struct {
	Token     string
	FarmerID  string
	ExpiresIn int
}

// RequestOTP generates a fresh 6-digit challenge for the phone number and
// persists it with an expiry of Now()+OTPTTL. A new challenge is always
// appended; outstanding challenges for the same phone stay in place and
// are simply superseded, since verification only honours the latest one.
func (s *AuthService) RequestOTP(ctx context.Context, phone, farmerID string) (OTPDelivery, error) {
	code, err := utils.NewOTPCode()
	if err != nil {
		return OTPDelivery{}, err
	}
	now := s.Now()
	ch := model.OTPChallenge{
		Phone:     phone,
		Code:      code,
		FarmerID:  farmerID,
		ExpiresAt: now.Add(s.OTPTTL),
		CreatedAt: now,
	}
	if err := s.Challenges.CreateChallenge(ctx, ch); err != nil {
		return OTPDelivery{}, err
	}
	return OTPDelivery{MaskedPhone: utils.MaskPhone(phone), Code: code}, nil
}

// VerifyOTP checks the submitted code against the latest challenge for the
// phone number, upserts the farmer profile and mints a session. The
// sequence either fully completes or fails before any session is created.
// The matched challenge is not consumed: a correct code stays verifiable
// until its natural expiry.
func (s *AuthService) VerifyOTP(ctx context.Context, v Verification, code string) (SessionGrant, error) {
	ch, err := s.Challenges.LatestByPhone(ctx, v.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		return SessionGrant{}, ErrInvalidCredential
	}
	if err != nil {
		return SessionGrant{}, err
	}
	// Plain string equality; a wrong code is invalid regardless of expiry.
	if ch.Code != code {
		return SessionGrant{}, ErrInvalidCredential
	}
	now := s.Now()
	if !now.Before(ch.ExpiresAt) {
		return SessionGrant{}, ErrCredentialExpired
	}

	// Canonical farmer identifier: supplied ID, else the ID recorded on the
	// challenge at issuance, else the phone number itself.
	fid := v.FarmerID
	if fid == "" {
		fid = ch.FarmerID
	}
	if fid == "" {
		fid = v.Phone
	}
	if v.Language == "" {
		v.Language = "en"
	}
	farmer := model.Farmer{
		FarmerID: fid,
		Phone:    v.Phone,
		Aadhaar:  v.Aadhaar,
		Language: v.Language,
		Name:     v.Name,
		Location: v.Location,
	}
	if err := s.Farmers.Upsert(ctx, farmer, now); err != nil {
		return SessionGrant{}, err
	}

	return s.issueSession(ctx, fid, now)
}

// issueSession mints a high-entropy bearer token bound to the farmer
// identifier and persists it with an expiry of now+SessionTTL.
func (s *AuthService) issueSession(ctx context.Context, farmerID string, now time.Time) (SessionGrant, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return SessionGrant{}, err
	}
	sess := model.Session{
		FarmerID:  farmerID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.SessionTTL),
	}
	if err := s.Sessions.CreateSession(ctx, sess); err != nil {
		return SessionGrant{}, err
	}
	return SessionGrant{
		Token:     token,
		FarmerID:  farmerID,
		ExpiresIn: int(s.SessionTTL / time.Second),
	}, nil
}

// ValidateSession resolves a bearer token to its farmer identifier. It
// re-reads the store on every call so expiry is honoured in real time;
// validation results are never cached across requests.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	sess, err := s.Sessions.ByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", err
	}
	if !s.Now().Before(sess.ExpiresAt) {
		return "", ErrSessionExpired
	}
	return sess.FarmerID, nil
}
