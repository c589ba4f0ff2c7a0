package usecase

import (
	"testing"
	"time"

	"e-presensi-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput(email string) RegisterInput {
	return RegisterInput{
		Email:      email,
		Password:   "rahasia123",
		FullName:   "Fajar Nugroho",
		Position:   "Analis",
		Department: model.DepartmentSekretariat,
		EmployeeID: "EMP-010",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture("2024-03-04", "08:00")
	uc := NewAuthUsecase(f.repos, "kunci-test", 24*time.Hour, f.clock)

	sess, err := uc.Register(registerInput(" Fajar@BNSP.go.id "))
	require.NoError(t, err)
	assert.Equal(t, "fajar@bnsp.go.id", sess.User.Email)
	assert.Equal(t, model.RoleUser, sess.Role)
	assert.NotEqual(t, "rahasia123", sess.User.Password)

	p, err := f.repos.Profiles.GetByUserID(sess.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fajar Nugroho", p.FullName)

	// Email sama ditolak tanpa menulis profil baru
	_, err = uc.Register(registerInput("fajar@bnsp.go.id"))
	assertKind(t, err, KindConflict)
	all, err := f.repos.Profiles.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = uc.Login("fajar@bnsp.go.id", "salah-password")
	assertKind(t, err, KindUnauthorized)
	_, err = uc.Login("tidak-ada@bnsp.go.id", "rahasia123")
	assertKind(t, err, KindUnauthorized)
	_, err = uc.Login("bukan-email", "rahasia123")
	assertKind(t, err, KindValidation)

	res, err := uc.Login("fajar@bnsp.go.id", "rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, f.now.t.Add(24*time.Hour).Equal(res.ExpiresAt))

	claims, err := uc.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)

	session, err := uc.Session(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Fajar Nugroho", session.Profile.FullName)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture("2024-03-04", "08:00")
	uc := NewAuthUsecase(f.repos, "kunci-test", 0, f.clock)

	in := registerInput("budi@bnsp.go.id")
	in.Password = "123"
	_, err := uc.Register(in)
	assertKind(t, err, KindValidation)

	in = registerInput("budi@bnsp.go.id")
	in.Role = "owner"
	_, err = uc.Register(in)
	assertKind(t, err, KindValidation)

	in = registerInput("budi@bnsp.go.id")
	in.EmployeeID = "emp 01"
	_, err = uc.Register(in)
	assertKind(t, err, KindValidation)
}

func TestVerifyLogoutAndPrune(t *testing.T) {
	f := newFixture("2024-03-04", "08:00")
	uc := NewAuthUsecase(f.repos, "kunci-test", time.Hour, f.clock)

	_, err := uc.Register(registerInput("gita@bnsp.go.id"))
	require.NoError(t, err)
	res, err := uc.Login("gita@bnsp.go.id", "rahasia123")
	require.NoError(t, err)

	other := NewAuthUsecase(f.repos, "kunci-lain", time.Hour, f.clock)
	_, err = other.Verify(res.Token)
	assertKind(t, err, KindUnauthorized)

	claims, err := uc.Verify(res.Token)
	require.NoError(t, err)
	require.NoError(t, uc.Logout(claims))

	_, err = uc.Verify(res.Token)
	assertKind(t, err, KindUnauthorized)

	// Token lain kadaluwarsa setelah satu jam
	res2, err := uc.Login("gita@bnsp.go.id", "rahasia123")
	require.NoError(t, err)
	f.now.set("2024-03-04", "09:30")
	_, err = uc.Verify(res2.Token)
	assertKind(t, err, KindUnauthorized)

	n, err := uc.PruneRevoked()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestChangePassword(t *testing.T) {
	f := newFixture("2024-03-04", "08:00")
	uc := NewAuthUsecase(f.repos, "kunci-test", time.Hour, f.clock)

	sess, err := uc.Register(registerInput("hana@bnsp.go.id"))
	require.NoError(t, err)

	require.NoError(t, uc.ChangePassword(sess.User.ID, "passwordbaru"))
	_, err = uc.Login("hana@bnsp.go.id", "passwordbaru")
	require.NoError(t, err)

	assertKind(t, uc.ChangePassword("tidak-ada", "passwordbaru"), KindNotFound)
	assertKind(t, uc.ChangePassword(sess.User.ID, "123"), KindValidation)
}

func TestEmptySecretRejectsEveryToken(t *testing.T) {
	f := newFixture("2024-03-04", "08:00")
	uc := NewAuthUsecase(f.repos, "", time.Hour, f.clock)

	_, err := uc.Register(registerInput("indra@bnsp.go.id"))
	require.NoError(t, err)

	// Token yang ditandatangani dengan kunci kosong tidak boleh diterima
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "penyusup",
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-palsu",
			ExpiresAt: jwt.NewNumericDate(f.now.t.Add(time.Hour)),
		},
	}).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = uc.Verify(forged)
	assertKind(t, err, KindUnauthorized)

	_, err = uc.Login("indra@bnsp.go.id", "rahasia123")
	assertKind(t, err, KindInternal)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
