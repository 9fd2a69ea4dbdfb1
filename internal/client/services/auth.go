// Package services contains the application services of the investprofile
// client. This file defines the authentication service: tiered sign-in,
// registration, sign-out and the persisted "current user" mirror.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/cryptox"
	"github.com/dmitrijs2005/investprofile/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - SignIn: check admin, then doctors, then registered accounts; persist the session.
//   - Register: create a patient account and sign it in.
//   - SignOut: drop the persisted session; calling it twice is fine.
//   - StoredUser / StoredToken / CurrentSession: read the persisted session; absent or
//     unreadable reads as nil (or "").
//   - AllAccounts / AllDoctors / Patients: listings without access control.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	StoredUser(ctx context.Context) *models.Account
	StoredToken(ctx context.Context) string
	CurrentSession(ctx context.Context) *models.Session
	AllAccounts() []models.Account
	AllDoctors() []models.Account
	Patients() []models.Account
}

// IDGenerator builds a registered account id from its sequence number.
type IDGenerator func(seq int64) string

// SequenceIDs yields "patient-<seq>". The sequence is persisted and never
// reused, so ids stay unique even if accounts were ever removed.
func SequenceIDs(seq int64) string { return "patient-" + strconv.FormatInt(seq, 10) }

// UUIDIDs yields "patient-<random uuid>".
func UUIDIDs(int64) string { return "patient-" + uuid.NewString() }

// AuthOptions tunes how new accounts are stored.
type AuthOptions struct {
	Passwords cryptox.PasswordPolicy
	NewID     IDGenerator
}

type authService struct {
	accounts *accounts.Store
	kv       kv.Store
	keys     kv.Keys
	opts     AuthOptions
	log      logging.Logger

	// serialises the uniqueness check and the insert in Register
	regMu sync.Mutex
}

// NewAuthService wires the credential store and the session mirror.
// Zero options mean plaintext passwords and sequence ids.
func NewAuthService(accts *accounts.Store, store kv.Store, keys kv.Keys, opts AuthOptions, log logging.Logger) AuthService {
	if opts.Passwords == nil {
		opts.Passwords = cryptox.PlaintextPolicy{}
	}
	if opts.NewID == nil {
		opts.NewID = SequenceIDs
	}
	return &authService{accounts: accts, kv: store, keys: keys, opts: opts, log: log.With("component", "auth")}
}

func (a *authService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	session, ok := a.match(email, password)
	if !ok {
		a.log.Info(ctx, "sign-in rejected", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	if err := a.persist(ctx, session); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "signed in", "id", session.User.ID, "role", session.User.Role)
	return session, nil
}

// match walks the tiers in their fixed precedence: the admin, the doctors
// (both on the shared seed password), then registered accounts on their own
// stored credential.
func (a *authService) match(email, password string) (*models.Session, bool) {
	admin := accounts.SeedAdmin()
	if email == admin.Email && password == common.SharedSeedPassword {
		return &models.Session{User: public(admin), Token: "admin-token"}, true
	}

	for _, d := range accounts.SeedDoctors() {
		if email == d.Email && password == common.SharedSeedPassword {
			return &models.Session{User: public(d), Token: "doctor-token-" + d.ID}, true
		}
	}

	for _, p := range a.accounts.Registered() {
		if p.Email == email && a.opts.Passwords.Match(p.Password, password) {
			return &models.Session{User: public(p), Token: "patient-token-" + p.ID}, true
		}
	}
	return nil, false
}

var validate = validator.New()

type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	if err := validate.Struct(registration{Name: name, Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	a.regMu.Lock()
	defer a.regMu.Unlock()

	if _, taken := a.accounts.FindByEmail(email); taken {
		return nil, common.ErrEmailAlreadyInUse
	}

	sealed, err := a.opts.Passwords.Seal(password)
	if err != nil {
		return nil, fmt.Errorf("seal password: %w", err)
	}

	seq := a.accounts.NextSequence()
	acc := models.Account{
		ID:       a.opts.NewID(seq),
		Name:     name,
		Email:    email,
		Password: sealed,
		Role:     models.RolePatient,
		Image:    avatarFor(seq),
	}

	if err := a.accounts.Insert(ctx, acc); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "account registered", "id", acc.ID)

	session := &models.Session{User: public(acc), Token: "patient-token-" + acc.ID}
	if err := a.persist(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// avatarFor is the placeholder picture of the seq-th registered account;
// the folder alternates men/women starting with men.
func avatarFor(seq int64) string {
	folder := "men"
	if (seq-1)%2 != 0 {
		folder = "women"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", folder, seq)
}

// persist writes user and token together so a crash never leaves half a session.
func (a *authService) persist(ctx context.Context, s *models.Session) error {
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("%w: encode user: %w", common.ErrStorageWrite, err)
	}
	if err := a.kv.SetMany(ctx, map[string][]byte{a.keys.User: user, a.keys.Token: []byte(s.Token)}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.kv.Delete(ctx, a.keys.User, a.keys.Token); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	a.log.Info(ctx, "signed out")
	return nil
}

func (a *authService) StoredUser(ctx context.Context) *models.Account {
	var acc models.Account
	ok, err := kv.GetJSON(ctx, a.kv, a.keys.User, &acc)
	if err != nil {
		a.log.Warn(ctx, "cannot read stored user", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &acc
}

func (a *authService) StoredToken(ctx context.Context) string {
	token, _, err := a.kv.Get(ctx, a.keys.Token)
	if err != nil {
		a.log.Warn(ctx, "cannot read stored token", "error", err)
		return ""
	}
	return string(token)
}

// CurrentSession is the persisted session, or nil unless both halves are there.
func (a *authService) CurrentSession(ctx context.Context) *models.Session {
	user := a.StoredUser(ctx)
	if user == nil {
		return nil
	}
	token := a.StoredToken(ctx)
	if token == "" {
		return nil
	}
	return &models.Session{User: *user, Token: token}
}

func (a *authService) AllAccounts() []models.Account {
	return publicAll(append(accounts.SeedDoctors(), a.accounts.Registered()...))
}

func (a *authService) AllDoctors() []models.Account {
	return publicAll(accounts.SeedDoctors())
}

func (a *authService) Patients() []models.Account {
	return publicAll(a.accounts.Registered())
}

// public drops the stored credential before an account leaves the service.
func public(acc models.Account) models.Account {
	acc.Password = ""
	return acc
}

func publicAll(list []models.Account) []models.Account {
	out := make([]models.Account, len(list))
	for i, acc := range list {
		out[i] = public(acc)
	}
	return out
}
