package usecase

import (
	"fmt"
	"log"

	"e-presensi-backend/internal/export"
	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
)

type ExportUsecase struct {
	attendance repository.AttendanceRepository
	profiles   repository.ProfileRepository
	clock      Clock
}

func NewExportUsecase(attendance repository.AttendanceRepository, profiles repository.ProfileRepository, clock Clock) *ExportUsecase {
	return &ExportUsecase{attendance: attendance, profiles: profiles, clock: clock}
}

type ExportFile struct {
	Filename string
	Content  []byte
	Users    int
	Records  int
}

// Export membuat workbook rekap untuk periode "YYYY-MM" atau tahun + bulan.
func (u *ExportUsecase) Export(periode, tahun, bulan string) (*ExportFile, error) {
	// 1. Validasi periode
	period, err := export.ParsePeriod(periode, tahun, bulan, u.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	// 2. Ambil data presensi dan profil
	records, err := u.attendance.ListBetween(period.Start, period.End)
	if err != nil {
		return nil, internal("Gagal mengambil data presensi", err)
	}
	if len(records) == 0 {
		return nil, notFound(fmt.Sprintf("Tidak ada data presensi untuk %s", period.Label()))
	}

	profiles, err := u.profiles.GetAll()
	if err != nil {
		return nil, internal("Gagal mengambil data profil", err)
	}
	byUser := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	// 3. Susun workbook
	f, err := export.BuildWorkbook(export.Input{
		Period:       period,
		Records:      records,
		Profiles:     byUser,
		DownloadedAt: u.clock.Now(),
		Location:     u.clock.Location(),
	})
	if err != nil {
		return nil, internal("Gagal membuat file Excel", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, internal("Gagal menulis file Excel", err)
	}

	users := len(f.GetSheetList()) - 1
	log.Printf("[EXPORT] %s: %d user, %d record", period.Label(), users, len(records))
	return &ExportFile{
		Filename: period.Filename(),
		Content:  buf.Bytes(),
		Users:    users,
		Records:  len(records),
	}, nil
}
