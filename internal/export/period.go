package export

import (
	"fmt"
	"strings"
	"time"

	"e-presensi-backend/internal/validation"
)

// Period adalah rentang rekap. Month 0 berarti satu tahun penuh.
type Period struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParsePeriod menerima "YYYY-MM" lewat periode, atau tahun + bulan ("all" untuk setahun).
func ParsePeriod(periode, tahun, bulan string, now time.Time) (Period, error) {
	if periode = strings.TrimSpace(periode); periode != "" {
		parts := strings.SplitN(periode, "-", 2)
		if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
			return Period{}, validation.ErrPeriodFormat
		}
		tahun, bulan = parts[0], parts[1]
	}

	r, err := validation.ValidateDateRange(tahun, bulan, now)
	if err != nil {
		return Period{}, err
	}
	return Period{Year: r.Year, Month: r.Month, Start: r.Start, End: r.End}, nil
}

func (p Period) IsYear() bool { return p.Month == 0 }

// Label: "Maret 2024" atau "Tahun 2024".
func (p Period) Label() string {
	if p.IsYear() {
		return fmt.Sprintf("Tahun %d", p.Year)
	}
	return fmt.Sprintf("%s %d", validation.MonthName(p.Month), p.Year)
}

func (p Period) Filename() string {
	if p.IsYear() {
		return fmt.Sprintf("rekap-presensi-bnsp-%d.xlsx", p.Year)
	}
	return fmt.Sprintf("rekap-presensi-bnsp-%s-%d.xlsx", validation.MonthName(p.Month), p.Year)
}
