package usecase

import (
	"errors"
	"log"
	"strings"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Claims adalah isi token sesi.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ErrEmptySecret dipakai saat kunci JWT kosong, semua token ditolak.
var ErrEmptySecret = errors.New("kunci JWT kosong")

type AuthUsecase struct {
	repos  repository.Repositories
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewAuthUsecase(repos repository.Repositories, secret string, ttl time.Duration, clock Clock) *AuthUsecase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthUsecase{repos: repos, secret: []byte(secret), ttl: ttl, clock: clock}
}

type RegisterInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}

type Session struct {
	User    *model.User    `json:"user"`
	Profile *model.Profile `json:"profile"`
	Role    string         `json:"role"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Session
}

// Register membuat akun, profil, dan role dalam satu transaksi.
func (u *AuthUsecase) Register(in RegisterInput) (*Session, error) {
	// 1. Validasi input
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.Email(email); err != nil {
		return nil, invalid(err)
	}
	if err := validation.Password(in.Password); err != nil {
		return nil, invalid(err)
	}
	profileIn := validation.ProfileInput{
		FullName:   strings.TrimSpace(in.FullName),
		Position:   strings.TrimSpace(in.Position),
		Department: in.Department,
		EmployeeID: strings.TrimSpace(in.EmployeeID),
	}
	if err := validation.Profile(profileIn); err != nil {
		return nil, invalid(err)
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if err := validation.Role(role); err != nil {
		return nil, invalid(err)
	}

	// 2. Hashing Password
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internal("Gagal memproses password", err)
	}

	// 3. Simpan ke Database
	user := &model.User{ID: uuid.NewString(), Email: email, Password: string(hashed)}
	profile := &model.Profile{
		UserID:     user.ID,
		FullName:   profileIn.FullName,
		Position:   profileIn.Position,
		Department: profileIn.Department,
		EmployeeID: profileIn.EmployeeID,
	}
	userRole := &model.UserRole{UserID: user.ID, Role: role}
	if err := u.repos.Users.CreateWithProfile(user, profile, userRole); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Email sudah terdaftar")
		}
		return nil, internal("Gagal mendaftarkan user", err)
	}

	return &Session{User: user, Profile: profile, Role: role}, nil
}

func (u *AuthUsecase) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.Email(email); err != nil {
		return nil, invalid(err)
	}
	if password == "" {
		return nil, badRequest("Password wajib diisi")
	}

	// 1. Cari user berdasarkan email
	user, err := u.repos.Users.GetByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorized("Email atau password salah")
	}
	if err != nil {
		return nil, internal("Gagal mengambil data user", err)
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, unauthorized("Email atau password salah")
	}

	// 3. Akun lama mungkin belum punya profil / role
	session, err := u.ensureSession(user)
	if err != nil {
		return nil, err
	}

	// 4. Buat Token JWT
	now := u.clock.Now()
	expiresAt := now.Add(u.ttl)
	claims := Claims{
		UserID: user.ID,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if len(u.secret) == 0 {
		return nil, internal("Gagal membuat token", ErrEmptySecret)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, internal("Gagal membuat token", err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Session: *session}, nil
}

func (u *AuthUsecase) ensureSession(user *model.User) (*Session, error) {
	profile, err := u.repos.Profiles.GetByUserID(user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		p := model.PlaceholderProfile(user.ID)
		if _, err := u.repos.Profiles.CreateIfMissing(&p); err != nil {
			return nil, internal("Gagal membuat profil", err)
		}
		profile, err = u.repos.Profiles.GetByUserID(user.ID)
	}
	if err != nil {
		return nil, internal("Gagal mengambil profil", err)
	}

	role, err := u.repos.Roles.GetByUserID(user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		r := model.UserRole{UserID: user.ID, Role: model.RoleUser}
		if _, err := u.repos.Roles.CreateIfMissing(&r); err != nil {
			return nil, internal("Gagal membuat role", err)
		}
		role, err = &r, nil
	}
	if err != nil {
		return nil, internal("Gagal mengambil role", err)
	}

	return &Session{User: user, Profile: profile, Role: model.RoleOf(role)}, nil
}

func (u *AuthUsecase) Session(userID string) (*Session, error) {
	user, err := u.repos.Users.GetByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorized("Sesi tidak valid")
	}
	if err != nil {
		return nil, internal("Gagal mengambil data user", err)
	}
	return u.ensureSession(user)
}

// Verify memeriksa tanda tangan, masa berlaku, dan status logout token.
func (u *AuthUsecase) Verify(tokenString string) (*Claims, error) {
	if len(u.secret) == 0 {
		return nil, unauthorized("Token tidak valid atau kadaluwarsa")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(u.clock.Now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, unauthorized("Token tidak valid atau kadaluwarsa")
	}

	revoked, err := u.repos.Tokens.IsRevoked(claims.ID)
	if err != nil {
		return nil, internal("Gagal memeriksa token", err)
	}
	if revoked {
		return nil, unauthorized("Sesi sudah berakhir, silakan login kembali")
	}
	return claims, nil
}

func (u *AuthUsecase) Logout(claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return unauthorized("Token tidak valid")
	}
	expiresAt := u.clock.Now().Add(u.ttl)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	err := u.repos.Tokens.Create(&model.RevokedToken{JTI: claims.ID, UserID: claims.UserID, ExpiresAt: expiresAt})
	if err != nil {
		return internal("Gagal logout", err)
	}
	return nil
}

// PruneRevoked menghapus catatan token yang sudah kadaluwarsa.
func (u *AuthUsecase) PruneRevoked() (int64, error) {
	n, err := u.repos.Tokens.DeleteExpired(u.clock.Now())
	if err != nil {
		return 0, internal("Gagal menghapus token kadaluwarsa", err)
	}
	log.Printf("[AUTH] %d token kadaluwarsa dihapus", n)
	return n, nil
}

// ChangePassword dipakai seeder untuk menyetel ulang password admin.
func (u *AuthUsecase) ChangePassword(userID, password string) error {
	if err := validation.Password(password); err != nil {
		return invalid(err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return internal("Gagal memproses password", err)
	}
	if err := u.repos.Users.UpdatePassword(userID, string(hashed)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("User tidak ditemukan")
		}
		return internal("Gagal mengubah password", err)
	}
	return nil
}
