package services

import (
	"testing"
	"time"

	"order_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOTPService(repo *fakeOTPTokenRepo) *otpService {
	return &otpService{
		otpRepo: repo,
		digits:  6,
		expire:  300,
		logger:  zap.NewNop(),
		now:     func() time.Time { return testNow },
	}
}

func TestCreateNewToken(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)

	token, err := svc.CreateNewToken(7, models.EventRegistration)
	require.NoError(t, err)
	assert.Len(t, token.Code, 6)
	assert.NotEmpty(t, token.Secret)
	assert.Equal(t, 300, token.Interval)
	assert.Equal(t, models.EventRegistration, token.Event)
	assert.Equal(t, models.SentUnset, token.SentStatus)
	assert.Len(t, repo.tokens, 1)
}

func TestGetRegistrationTokenReusesValidToken(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)

	first, flag, err := svc.GetRegistrationToken(7)
	require.NoError(t, err)
	assert.Equal(t, FlagNew, flag)

	second, flag, err := svc.GetRegistrationToken(7)
	require.NoError(t, err)
	assert.Equal(t, FlagOld, flag)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.tokens, 1)
}

func TestGetRegistrationTokenReplacesExpiredToken(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)

	expired := &models.OTPToken{
		UserID:    7,
		Event:     models.EventRegistration,
		Interval:  300,
		CreatedAt: testNow.Add(-10 * time.Minute),
	}
	require.NoError(t, repo.Create(expired))

	token, flag, err := svc.GetRegistrationToken(7)
	require.NoError(t, err)
	assert.Equal(t, FlagNew, flag)
	assert.NotEqual(t, expired.ID, token.ID)
}

func TestGetRegistrationTokenIgnoresOtherEvents(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)

	_, err := svc.CreateNewToken(7, models.EventLogin)
	require.NoError(t, err)

	_, flag, err := svc.GetRegistrationToken(7)
	require.NoError(t, err)
	assert.Equal(t, FlagNew, flag)
}

func TestIsTokenValid(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)
	user := &models.User{ID: 7, WhatsAppNumber: "6281234567890"}

	token, err := svc.CreateNewToken(7, models.EventLogin)
	require.NoError(t, err)

	valid, err := svc.IsTokenValid(user, token.Code)
	require.NoError(t, err)
	assert.True(t, valid)
	require.NotNil(t, repo.tokens[token.ID].VerifiedAt)

	// a verified token cannot be redeemed again
	valid, err = svc.IsTokenValid(user, token.Code)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestIsTokenValidRejectsWrongCode(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)
	user := &models.User{ID: 7, WhatsAppNumber: "6281234567890"}

	_, err := svc.CreateNewToken(7, models.EventLogin)
	require.NoError(t, err)

	valid, err := svc.IsTokenValid(user, "000000")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestMarkSent(t *testing.T) {
	repo := newFakeOTPTokenRepo()
	svc := newTestOTPService(repo)

	token, err := svc.CreateNewToken(7, models.EventLogin)
	require.NoError(t, err)

	require.NoError(t, svc.MarkSent(token, models.SentSuccess))
	stored := repo.tokens[token.ID]
	assert.Equal(t, models.SentSuccess, stored.SentStatus)
	require.NotNil(t, stored.SentAt)
	assert.Equal(t, testNow, *stored.SentAt)
}

func TestParseSendStatus(t *testing.T) {
	svc := newTestOTPService(newFakeOTPTokenRepo())

	cases := []struct {
		response string
		want     models.OTPSentStatus
	}{
		{"Message sent SUCCESS", models.SentSuccess},
		{"error: phone_offline", models.SentOffline},
		{"number not found on whatsapp", models.SentNotFound},
		{"", models.SentUnset},
		{"something else", models.SentUnset},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, svc.ParseSendStatus(tc.response), tc.response)
	}
}
