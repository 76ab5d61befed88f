package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	mock "github.com/vetrivel962969-dotcom/Paperid/internal/mock/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/session"
	"go.uber.org/mock/gomock"
)

var (
	asha = model.User{ID: "u-1", Name: "Asha", Email: "asha@paperid.in", Phone: "+91 98200 00000"}
	ravi = model.User{ID: "u-2", Name: "Ravi", Email: "ravi@paperid.in", Phone: "+91 98200 11111"}
)

func newStore(t *testing.T) (*session.Store, *mock.MockGateway) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	return session.NewStore(gw), gw
}

func gwErr(op string, kind error) error {
	return &gateway.Error{Op: op, Err: kind}
}

func TestStore_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().GetProfile(gomock.Any()).Return(asha, nil)

		assert.True(t, s.Loading())
		require.NoError(t, s.Restore(ctx))
		assert.False(t, s.Loading())

		u, ok := s.User()
		require.True(t, ok)
		assert.Equal(t, asha, u)
	})

	t.Run("no_session", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().GetProfile(gomock.Any()).Return(model.User{}, gwErr("GetProfile", gateway.ErrNotAuthenticated))

		require.NoError(t, s.Restore(ctx))
		assert.False(t, s.Authenticated())
		assert.False(t, s.Loading())
	})

	t.Run("gateway_failure", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().GetProfile(gomock.Any()).Return(model.User{}, gwErr("GetProfile", gateway.ErrRemote))

		err := s.Restore(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, gateway.ErrRemote)
		assert.False(t, s.Authenticated())
		assert.False(t, s.Loading())
	})

	t.Run("late_result_does_not_undo_login", func(t *testing.T) {
		s, gw := newStore(t)
		started, release := make(chan struct{}), make(chan struct{})
		gw.EXPECT().GetProfile(gomock.Any()).DoAndReturn(func(context.Context) (model.User, error) {
			close(started)
			<-release
			return model.User{}, gwErr("GetProfile", gateway.ErrNotAuthenticated)
		})
		gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)

		done := make(chan error, 1)
		go func() { done <- s.Restore(ctx) }()
		<-started

		_, err := s.Login(ctx, asha.Email)
		require.NoError(t, err)
		close(release)
		require.NoError(t, <-done)

		u, ok := s.User()
		require.True(t, ok)
		assert.Equal(t, asha, u)
		assert.False(t, s.Loading())
	})
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)

		u, err := s.Login(ctx, asha.Email)
		require.NoError(t, err)
		assert.Equal(t, asha, u)
		assert.True(t, s.Authenticated())
	})

	t.Run("auth_error_stays_anonymous", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().Login(gomock.Any(), "bad").Return(model.User{}, gwErr("Login", gateway.ErrInvalidCredentials))

		_, err := s.Login(ctx, "bad")
		require.Error(t, err)
		assert.True(t, gateway.IsAuthError(err))
		assert.False(t, s.Authenticated())
	})
}

func TestStore_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	name := "Asha R"

	t.Run("merges_only_given_fields", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)
		_, err := s.Login(ctx, asha.Email)
		require.NoError(t, err)

		update := model.ProfileUpdate{Name: &name}
		gw.EXPECT().UpdateProfile(gomock.Any(), update).Return(model.User{Name: name}, nil)

		u, err := s.UpdateProfile(ctx, update)
		require.NoError(t, err)
		assert.Equal(t, name, u.Name)
		assert.Equal(t, asha.Phone, u.Phone)
		assert.Equal(t, asha.Email, u.Email)

		current, _ := s.User()
		assert.Equal(t, u, current)
	})

	t.Run("failure_leaves_user_unchanged", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)
		_, err := s.Login(ctx, asha.Email)
		require.NoError(t, err)

		gw.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(model.User{}, gwErr("UpdateProfile", gateway.ErrTimeout))

		_, err = s.UpdateProfile(ctx, model.ProfileUpdate{Name: &name})
		assert.True(t, gateway.IsTimeout(err))

		current, _ := s.User()
		assert.Equal(t, asha, current)
	})

	t.Run("logged_out_meanwhile", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(model.User{Name: name}, nil)

		_, err := s.UpdateProfile(ctx, model.ProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.False(t, s.Authenticated())
	})

	t.Run("result_from_previous_user_is_discarded", func(t *testing.T) {
		s, gw := newStore(t)
		gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)
		_, err := s.Login(ctx, asha.Email)
		require.NoError(t, err)

		update := model.ProfileUpdate{Name: &name}
		started, release := make(chan struct{}), make(chan struct{})
		gw.EXPECT().UpdateProfile(gomock.Any(), update).DoAndReturn(func(context.Context, model.ProfileUpdate) (model.User, error) {
			close(started)
			<-release
			return update.Apply(asha), nil
		})
		gw.EXPECT().Logout(gomock.Any()).Return(nil)
		gw.EXPECT().Login(gomock.Any(), ravi.Email).Return(ravi, nil)

		type result struct {
			user model.User
			err  error
		}
		done := make(chan result, 1)
		go func() {
			u, err := s.UpdateProfile(ctx, update)
			done <- result{u, err}
		}()
		<-started

		s.Logout(ctx)
		_, err = s.Login(ctx, ravi.Email)
		require.NoError(t, err)
		close(release)

		res := <-done
		require.NoError(t, res.err)
		assert.Equal(t, asha.ID, res.user.ID)

		current, ok := s.User()
		require.True(t, ok)
		assert.Equal(t, ravi, current)
	})
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	s, gw := newStore(t)

	gw.EXPECT().Login(gomock.Any(), asha.Email).Return(asha, nil)
	_, err := s.Login(ctx, asha.Email)
	require.NoError(t, err)

	gw.EXPECT().Logout(gomock.Any()).Return(errors.New("network down"))
	s.Logout(ctx)

	assert.False(t, s.Authenticated())
}
