package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
	"github.com/Codewith-Raja/securevault/internal/pkg/jwt"
	"github.com/Codewith-Raja/securevault/internal/vault/entity"
)

type fakeRepo struct {
	creds []entity.Credential
}

func (r *fakeRepo) CreateCredential(_ context.Context, cred entity.Credential) error {
	r.creds = append(r.creds, cred)
	return nil
}

func (r *fakeRepo) ListCredentialsByUser(_ context.Context, userID int64) ([]entity.Credential, error) {
	out := make([]entity.Credential, 0)
	for _, cred := range r.creds {
		if cred.UserID == userID {
			out = append(out, cred)
		}
	}

	return out, nil
}

func (r *fakeRepo) DeleteCredentialOwned(_ context.Context, id, userID int64) error {
	for i, cred := range r.creds {
		if cred.ID == id && cred.UserID == userID {
			r.creds = append(r.creds[:i], r.creds[i+1:]...)
			return nil
		}
	}

	return goerror.ErrNotFound
}

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

func newFixture() (*Usecase, *fakeRepo) {
	repo := &fakeRepo{}
	uc := New(Dependency{
		RepoDB:     repo,
		UID:        &fakeNumberID{},
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

func authCtx(t *testing.T, userID int64) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{UserID: userID})
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}

func TestSave(t *testing.T) {
	t.Run("MissingFields", func(t *testing.T) {
		uc, repo := newFixture()

		err := uc.Save(t.Context(), SaveInput{UserID: 1, Website: "example.com"})

		requireBusinessError(t, err, "All fields are required", http.StatusBadRequest)
		require.Empty(t, repo.creds)
	})

	t.Run("StoresRecord", func(t *testing.T) {
		uc, repo := newFixture()

		err := uc.Save(t.Context(), SaveInput{
			UserID:   1,
			Website:  "example.com",
			Username: "user",
			Password: "s3cret",
		})

		require.NoError(t, err)
		require.Len(t, repo.creds, 1)
		require.NotZero(t, repo.creds[0].ID)
		require.Equal(t, int64(1), repo.creds[0].UserID)
	})
}

func TestList(t *testing.T) {
	t.Run("MissingUserID", func(t *testing.T) {
		uc, _ := newFixture()

		_, err := uc.List(t.Context(), ListInput{})

		requireBusinessError(t, err, "User ID is required", http.StatusBadRequest)
	})

	t.Run("EmptyIsNotAnError", func(t *testing.T) {
		uc, _ := newFixture()

		out, err := uc.List(t.Context(), ListInput{UserID: 1})

		require.NoError(t, err)
		require.NotNil(t, out.Credentials)
		require.Empty(t, out.Credentials)
	})

	t.Run("OnlyOwnRecords", func(t *testing.T) {
		uc, _ := newFixture()
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 1, Website: "a.com", Username: "a", Password: "pa"}))
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 2, Website: "b.com", Username: "b", Password: "pb"}))

		out, err := uc.List(t.Context(), ListInput{UserID: 1})

		require.NoError(t, err)
		require.Len(t, out.Credentials, 1)
		require.Equal(t, "a.com", out.Credentials[0].Website)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		uc, _ := newFixture()

		err := uc.Delete(t.Context(), DeleteInput{ID: 1})

		requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
	})

	t.Run("SomeoneElsesRecordIsNotFound", func(t *testing.T) {
		uc, repo := newFixture()
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 2, Website: "b.com", Username: "b", Password: "pb"}))

		err := uc.Delete(authCtx(t, 1), DeleteInput{ID: repo.creds[0].ID})

		requireBusinessError(t, err, "Password not found", http.StatusNotFound)
		require.Len(t, repo.creds, 1)
	})

	t.Run("RemovesOwnRecord", func(t *testing.T) {
		uc, repo := newFixture()
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 1, Website: "a.com", Username: "a", Password: "pa"}))

		err := uc.Delete(authCtx(t, 1), DeleteInput{ID: repo.creds[0].ID})

		require.NoError(t, err)
		require.Empty(t, repo.creds)
	})
}

func TestExport(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		uc, _ := newFixture()

		_, err := uc.Export(t.Context())

		requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
	})

	t.Run("ReturnsCallerRecords", func(t *testing.T) {
		uc, _ := newFixture()
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 1, Website: "a.com", Username: "a", Password: "pa"}))
		require.NoError(t, uc.Save(t.Context(), SaveInput{UserID: 2, Website: "b.com", Username: "b", Password: "pb"}))

		out, err := uc.Export(authCtx(t, 1))

		require.NoError(t, err)
		require.Len(t, out.Credentials, 1)
		require.Equal(t, "a.com", out.Credentials[0].Website)
	})
}
