package usecase

import (
	"errors"
	"strings"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/validation"
)

type ProfileUsecase struct {
	repo repository.ProfileRepository
}

func NewProfileUsecase(repo repository.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{repo: repo}
}

type ProfileUpdateInput struct {
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// Get membuat profil placeholder jika belum ada.
func (u *ProfileUsecase) Get(userID string) (*model.Profile, error) {
	profile, err := u.repo.GetByUserID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		p := model.PlaceholderProfile(userID)
		if _, err := u.repo.CreateIfMissing(&p); err != nil {
			return nil, internal("Gagal membuat profil", err)
		}
		profile, err = u.repo.GetByUserID(userID)
	}
	if err != nil {
		return nil, internal("Gagal mengambil profil", err)
	}
	return profile, nil
}

// UpdateOwn: user hanya boleh mengubah nama, jabatan, dan unit kerja. NIP diatur admin.
func (u *ProfileUsecase) UpdateOwn(userID string, in ProfileUpdateInput) (*model.Profile, error) {
	input := validation.ProfileInput{
		FullName:   strings.TrimSpace(in.FullName),
		Position:   strings.TrimSpace(in.Position),
		Department: in.Department,
	}
	if err := validation.ProfileWithoutEmployeeID(input); err != nil {
		return nil, invalid(err)
	}

	profile, err := u.Get(userID)
	if err != nil {
		return nil, err
	}
	profile.FullName = input.FullName
	profile.Position = input.Position
	profile.Department = input.Department
	if err := u.repo.Update(profile); err != nil {
		return nil, internal("Gagal memperbarui profil", err)
	}
	return profile, nil
}
