package user

import (
	"fmt"
	"ticker/auth"
	"ticker/feed"
	"time"

	"github.com/pkg/errors"
)

const (
	resetPasswordKey = "reset_password"
	emailConfirmKey  = "email_confirm"

	// ResetPasswordExpiry is how long a password reset token stays valid
	ResetPasswordExpiry = 15 * time.Minute

	// EmailConfirmExpiry is how long an email confirmation token stays valid
	EmailConfirmExpiry = 24 * time.Hour
)

// ErrEmailRequired is returned when saving a user without an email address
var ErrEmailRequired = errors.New("email is required")

// User contains the data associated with a reader account stored in the
// database
type User struct {
	ID                 uint             `gorm:"primary_key" json:"id"`
	Email              string           `gorm:"size:255;unique" json:"email"`
	Password           *string          `gorm:"size:255" json:"-"`
	Active             *bool            `gorm:"not null" json:"active"`
	Confirmed          bool             `json:"confirmed"`
	LastSeen           *time.Time       `json:"last_seen,omitempty"`
	ExcludedSources    []*feed.Source   `gorm:"many2many:user_excluded_sources;association_autoupdate:false;association_autocreate:false" json:"excluded_sources,omitempty"`
	ExcludedCategories []*feed.Category `gorm:"many2many:user_excluded_categories;association_autoupdate:false;association_autocreate:false" json:"excluded_categories,omitempty"`
}

// New returns an active, unconfirmed user without a password
func New(email string) *User {
	active := true
	return &User{
		Email:  email,
		Active: &active,
	}
}

// TableName overrides the gorm table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate defaults the user to active
func (u *User) BeforeCreate() error {
	if u.Active == nil {
		active := true
		u.Active = &active
	}

	return nil
}

// IsActive reports whether the user may sign in. Users never saved with an
// explicit value are active
func (u *User) IsActive() bool {
	return u.Active == nil || *u.Active
}

// BeforeSave rejects users without an email address
func (u *User) BeforeSave() error {
	if u.Email == "" {
		return ErrEmailRequired
	}

	return nil
}

// SetPassword replaces the stored password hash. The user is not saved
func (u *User) SetPassword(password string) error {
	hash, err := auth.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	u.Password = &hash
	return nil
}

// CheckPassword reports whether the password matches the stored hash. Users
// without a password never match
func (u *User) CheckPassword(password string) (bool, error) {
	if u.Password == nil {
		return false, nil
	}

	return auth.Compare(*u.Password, password)
}

// ResetPasswordToken returns a token identifying the user for a password
// reset
func (u *User) ResetPasswordToken(secret string) (string, error) {
	token, err := auth.EncodeToken(resetPasswordKey, u.ID, secret, ResetPasswordExpiry)
	return token, errors.Wrap(err, "failed to create reset password token")
}

// EmailConfirmToken returns a token identifying the user for email
// confirmation
func (u *User) EmailConfirmToken(secret string) (string, error) {
	token, err := auth.EncodeToken(emailConfirmKey, u.ID, secret, EmailConfirmExpiry)
	return token, errors.Wrap(err, "failed to create email confirm token")
}

// VerifyResetPasswordToken returns the id of the user a reset password token
// was issued to
func VerifyResetPasswordToken(secret, token string) (uint, bool) {
	return auth.DecodeToken(resetPasswordKey, secret, token)
}

// VerifyEmailConfirmToken returns the id of the user an email confirmation
// token was issued to
func VerifyEmailConfirmToken(secret, token string) (uint, bool) {
	return auth.DecodeToken(emailConfirmKey, secret, token)
}

// ExcludedSourceIDs returns the ids of the sources hidden from the user
func (u *User) ExcludedSourceIDs() []uint {
	ids := make([]uint, 0, len(u.ExcludedSources))
	for _, s := range u.ExcludedSources {
		ids = append(ids, s.ID)
	}

	return ids
}

// ExcludedCategoryIDs returns the ids of the categories hidden from the user
func (u *User) ExcludedCategoryIDs() []uint {
	ids := make([]uint, 0, len(u.ExcludedCategories))
	for _, c := range u.ExcludedCategories {
		ids = append(ids, c.ID)
	}

	return ids
}

func (u *User) String() string {
	return u.Email
}

// Click records a post being opened, by a user or anonymously
type Click struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	UserID         *uint     `json:"user_id,omitempty"`
	PostID         uint      `gorm:"index" json:"post_id"`
	ActionDatetime time.Time `gorm:"not null" json:"action_datetime"`
}

// TableName overrides the gorm table name
func (Click) TableName() string {
	return "clicks"
}

// BeforeCreate defaults the action time to now
func (c *Click) BeforeCreate() error {
	if c.ActionDatetime.IsZero() {
		c.ActionDatetime = time.Now().UTC()
	}

	return nil
}

func (c *Click) String() string {
	return fmt.Sprintf("<Click %d on %d>", c.ID, c.PostID)
}

// Bookmark records a user saving a post
type Bookmark struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	PostID         uint      `gorm:"index" json:"post_id"`
	ActionDatetime time.Time `gorm:"not null" json:"action_datetime"`
}

// TableName overrides the gorm table name
func (Bookmark) TableName() string {
	return "bookmarks"
}

// BeforeCreate defaults the action time to now
func (b *Bookmark) BeforeCreate() error {
	if b.ActionDatetime.IsZero() {
		b.ActionDatetime = time.Now().UTC()
	}

	return nil
}

func (b *Bookmark) String() string {
	return fmt.Sprintf("<Bookmark %d on %d by %d>", b.ID, b.PostID, b.UserID)
}
