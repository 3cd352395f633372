package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
	"github.com/agrimitra/smart-crop-advisory/internal/repository"
)

// ----- in-memory stores -----

type fakeChallengeStore struct {
	challenges []model.OTPChallenge
}

func (f *fakeChallengeStore) CreateChallenge(_ context.Context, ch model.OTPChallenge) error {
	f.challenges = append(f.challenges, ch)
	return nil
}

// LatestByPhone mirrors the repository's ordering: created_at descending
// with insertion order as the tie-break.
func (f *fakeChallengeStore) LatestByPhone(_ context.Context, phone string) (model.OTPChallenge, error) {
	best := -1
	for i, ch := range f.challenges {
		if ch.Phone != phone {
			continue
		}
		if best == -1 || !f.challenges[i].CreatedAt.Before(f.challenges[best].CreatedAt) {
			best = i
		}
	}
	if best == -1 {
		return model.OTPChallenge{}, repository.ErrNotFound
	}
	return f.challenges[best], nil
}

type fakeSessionStore struct {
	sessions map[string]model.Session
}

func (f *fakeSessionStore) CreateSession(_ context.Context, s model.Session) error {
	if f.sessions == nil {
		f.sessions = map[string]model.Session{}
	}
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionStore) ByToken(_ context.Context, token string) (model.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	return s, nil
}

type fakeFarmerStore struct {
	farmers map[string]model.Farmer
}

func (f *fakeFarmerStore) ByFarmerID(_ context.Context, farmerID string) (model.Farmer, error) {
	fa, ok := f.farmers[farmerID]
	if !ok {
		return model.Farmer{}, repository.ErrNotFound
	}
	return fa, nil
}

// Upsert mimics the $set/$setOnInsert document update: the identity fields
// are fully overwritten while crops and soil_type survive.
func (f *fakeFarmerStore) Upsert(_ context.Context, in model.Farmer, now time.Time) error {
	if f.farmers == nil {
		f.farmers = map[string]model.Farmer{}
	}
	cur, ok := f.farmers[in.FarmerID]
	if !ok {
		cur = model.Farmer{FarmerID: in.FarmerID, CreatedAt: now}
	}
	cur.Phone = in.Phone
	cur.Aadhaar = in.Aadhaar
	cur.Language = in.Language
	cur.Name = in.Name
	cur.Location = in.Location
	cur.UpdatedAt = now
	f.farmers[in.FarmerID] = cur
	return nil
}

// newTestAuth builds an AuthService over fresh fakes with a pinned clock
// that tests can move.
func newTestAuth(t *testing.T) (*AuthService, *fakeChallengeStore, *fakeSessionStore, *fakeFarmerStore, *time.Time) {
	t.Helper()
	chs := &fakeChallengeStore{}
	ses := &fakeSessionStore{}
	fas := &fakeFarmerStore{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewAuthService(chs, ses, fas, 5*time.Minute, 7*24*time.Hour)
	s.Now = func() time.Time { return now }
	return s, chs, ses, fas, &now
}

// ----- tests -----

func TestRequestOTPPersistsChallenge(t *testing.T) {
	s, chs, _, _, _ := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9010876543", "F-1")
	require.NoError(t, err)

	assert.Len(t, d.Code, 6)
	assert.Regexp(t, `^\d{6}$`, d.Code)
	assert.Equal(t, "9***876543", d.MaskedPhone)

	require.Len(t, chs.challenges, 1)
	ch := chs.challenges[0]
	assert.Equal(t, "9010876543", ch.Phone)
	assert.Equal(t, d.Code, ch.Code)
	assert.Equal(t, "F-1", ch.FarmerID)
	assert.Equal(t, 5*time.Minute, ch.ExpiresAt.Sub(ch.CreatedAt))
}

func TestVerifyOTPHappyPath(t *testing.T) {
	s, _, ses, fas, _ := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	grant, err := s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	require.NoError(t, err)

	assert.Equal(t, "9876543210", grant.FarmerID)
	assert.Equal(t, 604800, grant.ExpiresIn)
	assert.GreaterOrEqual(t, len(grant.Token), 32)

	// Session is bound to the canonical identifier for 7 days.
	sess, err := ses.ByToken(context.Background(), grant.Token)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", sess.FarmerID)
	assert.Equal(t, 7*24*time.Hour, sess.ExpiresAt.Sub(sess.CreatedAt))

	// Profile was created with the default language.
	f, err := fas.ByFarmerID(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "en", f.Language)
	assert.Equal(t, "9876543210", f.Phone)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	s, _, _, _, now := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	wrong := "000000"
	if d.Code == wrong {
		wrong = "000001"
	}
	_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, wrong)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// A wrong code stays invalid even after the challenge expired.
	*now = now.Add(10 * time.Minute)
	_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, wrong)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyOTPNoChallenge(t *testing.T) {
	s, _, _, _, _ := newTestAuth(t)

	_, err := s.VerifyOTP(context.Background(), Verification{Phone: "0000000000"}, "123456")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyOTPExpiry(t *testing.T) {
	s, _, _, _, now := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	// One nanosecond before expiry the code still verifies.
	*now = now.Add(5*time.Minute - time.Nanosecond)
	_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	assert.NoError(t, err)

	// At the expiry instant it does not.
	*now = now.Add(time.Nanosecond)
	_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	assert.ErrorIs(t, err, ErrCredentialExpired)
}

func TestLatestChallengeWins(t *testing.T) {
	s, _, _, _, now := newTestAuth(t)

	first, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	*now = now.Add(time.Minute)
	second, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	if first.Code != second.Code {
		_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, first.Code)
		assert.ErrorIs(t, err, ErrInvalidCredential, "superseded challenge must not verify")
	}
	_, err = s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, second.Code)
	assert.NoError(t, err)
}

func TestVerifiedCodeReplayableUntilExpiry(t *testing.T) {
	s, _, ses, _, _ := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	g1, err := s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	require.NoError(t, err)
	g2, err := s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	require.NoError(t, err)

	// Two independent sessions bound to the same farmer.
	assert.NotEqual(t, g1.Token, g2.Token)
	assert.Len(t, ses.sessions, 2)
}

func TestUpsertFullOverwrite(t *testing.T) {
	s, _, _, fas, _ := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)

	_, err = s.VerifyOTP(context.Background(), Verification{
		Phone: "9876543210", FarmerID: "F-9", Aadhaar: "1234-5678", Language: "ta", Name: "Kumar", Location: "Madurai",
	}, d.Code)
	require.NoError(t, err)

	// Second verification supplies a different (and partly empty) profile;
	// the overwrite replaces every field, it does not merge.
	_, err = s.VerifyOTP(context.Background(), Verification{
		Phone: "9876543210", FarmerID: "F-9", Name: "Kumaran",
	}, d.Code)
	require.NoError(t, err)

	f, err := fas.ByFarmerID(context.Background(), "F-9")
	require.NoError(t, err)
	assert.Equal(t, "Kumaran", f.Name)
	assert.Empty(t, f.Aadhaar)
	assert.Empty(t, f.Location)
	assert.Equal(t, "en", f.Language, "omitted language falls back to the default on overwrite too")
}

func TestCanonicalFarmerIdentifier(t *testing.T) {
	s, _, _, _, _ := newTestAuth(t)

	// Identifier recorded at issuance is used when verify omits one.
	d, err := s.RequestOTP(context.Background(), "9000000001", "F-42")
	require.NoError(t, err)
	g, err := s.VerifyOTP(context.Background(), Verification{Phone: "9000000001"}, d.Code)
	require.NoError(t, err)
	assert.Equal(t, "F-42", g.FarmerID)

	// Identifier supplied on verify wins over the recorded one.
	d, err = s.RequestOTP(context.Background(), "9000000002", "F-42")
	require.NoError(t, err)
	g, err = s.VerifyOTP(context.Background(), Verification{Phone: "9000000002", FarmerID: "F-43"}, d.Code)
	require.NoError(t, err)
	assert.Equal(t, "F-43", g.FarmerID)

	// No identifier anywhere falls back to the phone number.
	d, err = s.RequestOTP(context.Background(), "9000000003", "")
	require.NoError(t, err)
	g, err = s.VerifyOTP(context.Background(), Verification{Phone: "9000000003"}, d.Code)
	require.NoError(t, err)
	assert.Equal(t, "9000000003", g.FarmerID)
}

func TestValidateSession(t *testing.T) {
	s, _, _, _, now := newTestAuth(t)

	d, err := s.RequestOTP(context.Background(), "9876543210", "")
	require.NoError(t, err)
	grant, err := s.VerifyOTP(context.Background(), Verification{Phone: "9876543210"}, d.Code)
	require.NoError(t, err)

	fid, err := s.ValidateSession(context.Background(), grant.Token)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", fid)

	_, err = s.ValidateSession(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Eight days later the token is past its window.
	*now = now.Add(8 * 24 * time.Hour)
	_, err = s.ValidateSession(context.Background(), grant.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
