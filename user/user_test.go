package user_test

import (
	"testing"
	"ticker/feed"
	"ticker/user"

	"github.com/stretchr/testify/assert"
)

const (
	mockEmail    = "reader@example.com"
	mockPassword = "mock_password"
	mockSecret   = "mock_secret"
)

func TestNewReturnsActiveUnconfirmedUser(t *testing.T) {
	u := user.New(mockEmail)
	assert.Equal(t, mockEmail, u.Email)
	assert.True(t, u.IsActive())
	assert.False(t, u.Confirmed)
	assert.Nil(t, u.Password)
	assert.Nil(t, u.LastSeen)
}

func TestBeforeCreateDefaultsToActive(t *testing.T) {
	u := &user.User{Email: mockEmail}
	assert.NoError(t, u.BeforeCreate())
	if assert.NotNil(t, u.Active) {
		assert.True(t, *u.Active)
	}

	inactive := false
	u = &user.User{Email: mockEmail, Active: &inactive}
	assert.NoError(t, u.BeforeCreate())
	assert.False(t, u.IsActive())
}

func TestBeforeSaveRequiresEmail(t *testing.T) {
	assert.Equal(t, user.ErrEmailRequired, (&user.User{}).BeforeSave())
	assert.NoError(t, user.New(mockEmail).BeforeSave())
}

func TestCheckPasswordReturnsFalseWithoutPassword(t *testing.T) {
	ok, err := user.New(mockEmail).CheckPassword(mockPassword)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPasswordStoresVerifiableHash(t *testing.T) {
	u := user.New(mockEmail)
	err := u.SetPassword(mockPassword)
	assert.NoError(t, err)
	assert.NotNil(t, u.Password)
	assert.NotEqual(t, mockPassword, *u.Password)

	ok, err := u.CheckPassword(mockPassword)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.CheckPassword("wrong_password")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResetPasswordTokenRoundTrip(t *testing.T) {
	u := user.New(mockEmail)
	u.ID = 7

	token, err := u.ResetPasswordToken(mockSecret)
	assert.NoError(t, err)

	id, ok := user.VerifyResetPasswordToken(mockSecret, token)
	assert.True(t, ok)
	assert.Equal(t, u.ID, id)

	_, ok = user.VerifyEmailConfirmToken(mockSecret, token)
	assert.False(t, ok)

	_, ok = user.VerifyResetPasswordToken("other_secret", token)
	assert.False(t, ok)
}

func TestEmailConfirmTokenRoundTrip(t *testing.T) {
	u := user.New(mockEmail)
	u.ID = 9

	token, err := u.EmailConfirmToken(mockSecret)
	assert.NoError(t, err)

	id, ok := user.VerifyEmailConfirmToken(mockSecret, token)
	assert.True(t, ok)
	assert.Equal(t, u.ID, id)

	_, ok = user.VerifyResetPasswordToken(mockSecret, token)
	assert.False(t, ok)
}

func TestTokensRequireSecret(t *testing.T) {
	u := user.New(mockEmail)
	u.ID = 1

	_, err := u.ResetPasswordToken("")
	assert.Error(t, err)

	_, err = u.EmailConfirmToken("")
	assert.Error(t, err)
}

func TestExcludedIDs(t *testing.T) {
	u := user.New(mockEmail)
	assert.Empty(t, u.ExcludedSourceIDs())
	assert.Empty(t, u.ExcludedCategoryIDs())

	u.ExcludedSources = []*feed.Source{{ID: 3}, {ID: 5}}
	u.ExcludedCategories = []*feed.Category{{ID: 2}}

	assert.Equal(t, []uint{3, 5}, u.ExcludedSourceIDs())
	assert.Equal(t, []uint{2}, u.ExcludedCategoryIDs())
}

func TestEngagementDefaultsActionTime(t *testing.T) {
	c := &user.Click{PostID: 1}
	assert.NoError(t, c.BeforeCreate())
	assert.False(t, c.ActionDatetime.IsZero())

	b := &user.Bookmark{UserID: 1, PostID: 1}
	assert.NoError(t, b.BeforeCreate())
	assert.False(t, b.ActionDatetime.IsZero())
}
