package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Codewith-Raja/securevault/internal/identity/entity"
	"github.com/Codewith-Raja/securevault/internal/pkg/clock"
	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/hash"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/pkg/mail"
	"github.com/Codewith-Raja/securevault/internal/pkg/otp"
	"github.com/Codewith-Raja/securevault/internal/pkg/uid"
	"github.com/Codewith-Raja/securevault/internal/pkg/validator"
)

type fakeRepo struct {
	accounts map[string]*entity.Account
	deleted  []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeRepo) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	acc, ok := r.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	cp := *acc
	return &cp, nil
}

func (r *fakeRepo) GetAccountByID(_ context.Context, id int64) (*entity.Account, error) {
	for _, acc := range r.accounts {
		if acc.ID == id {
			cp := *acc
			return &cp, nil
		}
	}

	return nil, goerror.ErrNotFound
}

func (r *fakeRepo) CreateAccount(_ context.Context, acc entity.Account) error {
	if _, ok := r.accounts[acc.Email]; ok {
		return goerror.ErrConflict
	}

	r.accounts[acc.Email] = &acc
	return nil
}

func (r *fakeRepo) UpdateRecoveryEmail(_ context.Context, id int64, recoveryEmail string) error {
	for _, acc := range r.accounts {
		if acc.ID == id {
			acc.RecoveryEmail = recoveryEmail
			return nil
		}
	}

	return goerror.ErrNotFound
}

func (r *fakeRepo) UpdateTwoFactor(_ context.Context, id int64, enabled bool) error {
	for _, acc := range r.accounts {
		if acc.ID == id {
			acc.TwoFactorEnabled = enabled
			return nil
		}
	}

	return goerror.ErrNotFound
}

func (r *fakeRepo) DeleteAccountCascade(_ context.Context, id int64) error {
	for email, acc := range r.accounts {
		if acc.ID == id {
			delete(r.accounts, email)
		}
	}

	r.deleted = append(r.deleted, id)
	return nil
}

// fakeRegistry hands out sequential codes and consumes them on match.
type fakeRegistry struct {
	codes    map[string]string
	seq      int
	lastCode string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{codes: map[string]string{}, seq: 100000}
}

func (r *fakeRegistry) key(purpose otp.Purpose, email string) string {
	return string(purpose) + "|" + strings.ToLower(email)
}

func (r *fakeRegistry) Issue(_ context.Context, purpose otp.Purpose, email string) (string, error) {
	r.seq++
	r.lastCode = itoa(r.seq)
	r.codes[r.key(purpose, email)] = r.lastCode

	return r.lastCode, nil
}

func (r *fakeRegistry) Redeem(_ context.Context, purpose otp.Purpose, email, code string) (bool, error) {
	k := r.key(purpose, email)
	if r.codes[k] != strings.TrimSpace(code) || code == "" {
		return false, nil
	}

	delete(r.codes, k)
	return true, nil
}

func itoa(n int) string {
	digits := [6]byte{}
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}

	return string(digits[:])
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}

	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) Close() error { return nil }

type fakeVerifier struct {
	verdict bool
	checked []string
}

func (v *fakeVerifier) Verify(_ context.Context, email string) bool {
	v.checked = append(v.checked, email)
	return v.verdict
}

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fixture struct {
	uc       *Usecase
	repo     *fakeRepo
	registry *fakeRegistry
	mailer   *fakeMailer
	verifier *fakeVerifier
	signer   jwt.JWT
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte(strings.Repeat("k", 64)),
		Issuer:     "securevault",
		Audiences:  []string{"securevault"},
		TTLMinutes: time.Hour,
		Clock:      clock.New(),
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)

	f := &fixture{
		repo:     newFakeRepo(),
		registry: newFakeRegistry(),
		mailer:   &fakeMailer{},
		verifier: &fakeVerifier{verdict: true},
		signer:   signer,
	}

	f.uc = New(Dependency{
		RepoDB:     f.repo,
		Verifier:   f.verifier,
		Registry:   f.registry,
		Mailer:     f.mailer,
		Validator:  v10,
		Bcrypt:     hash.NewBcrypt(4, ""),
		UID:        &fakeNumberID{},
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})

	return f
}

func (f *fixture) seedAccount(t *testing.T, email, password string, twoFactor bool) entity.Account {
	t.Helper()

	hashed, err := hash.NewBcrypt(4, "").Hash(password)
	require.NoError(t, err)

	acc := entity.Account{
		ID:               int64(len(f.repo.accounts) + 1),
		Email:            email,
		Password:         string(hashed),
		TwoFactorEnabled: twoFactor,
	}
	f.repo.accounts[email] = &acc

	return acc
}

func authCtx(t *testing.T, acc entity.Account) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{UserID: acc.ID, UserEmail: acc.Email})
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}
