// Package export menyusun rekap presensi dalam bentuk workbook Excel.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"e-presensi-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Ringkasan"
	maxSheetName  = 31
	emptyCell     = "-"
	noProfileName = "Profil Tidak Ditemukan"
	unknownName   = "Tidak Diketahui"
)

var (
	userHeaders = []interface{}{
		"Tanggal", "Nama Lengkap", "NIP", "Jabatan", "Unit Kerja",
		"Jam Masuk", "Jam Pulang", "Tipe Kerja", "Status", "Laporan Kegiatan",
	}
	userWidths    = []float64{12, 20, 15, 15, 15, 10, 10, 8, 12, 30}
	summaryHeader = []interface{}{"Nama", "NIP", "Total Presensi", "Terakhir Hadir", "Status"}
	summaryWidths = []float64{25, 15, 15, 15, 12}

	sheetNameReplacer = strings.NewReplacer(
		`\`, "-", "/", "-", "?", "-", "*", "-", "[", "-", "]", "-", ":", "-",
	)
)

// Input adalah data satu periode. Records diurutkan tanggal terbaru lebih dulu.
type Input struct {
	Period       Period
	Records      []model.AttendanceRecord
	Profiles     map[string]model.Profile
	DownloadedAt time.Time
	Location     *time.Location
}

type userGroup struct {
	userID  string
	profile *model.Profile
	records []model.AttendanceRecord
}

// SheetName membersihkan karakter yang dilarang Excel dan memotong ke 31 karakter.
func SheetName(name string) string {
	name = strings.TrimSpace(sheetNameReplacer.Replace(name))
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	if name == "" {
		name = "Sheet"
	}
	return name
}

// uniqueSheetName menambahkan akhiran " (n)" jika nama sudah dipakai. Excel tidak membedakan huruf besar/kecil.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func groupByUser(records []model.AttendanceRecord, profiles map[string]model.Profile) []userGroup {
	index := map[string]int{}
	var groups []userGroup
	for _, rec := range records {
		i, ok := index[rec.UserID]
		if !ok {
			g := userGroup{userID: rec.UserID}
			if p, found := profiles[rec.UserID]; found {
				g.profile = &p
			}
			groups = append(groups, g)
			i = len(groups) - 1
			index[rec.UserID] = i
		}
		groups[i].records = append(groups[i].records, rec)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ni, nj := groups[i].displayName(), groups[j].displayName()
		if ni != nj {
			return ni < nj
		}
		return groups[i].userID < groups[j].userID
	})
	return groups
}

func (g userGroup) displayName() string {
	if g.profile != nil && strings.TrimSpace(g.profile.FullName) != "" {
		return g.profile.FullName
	}
	return "User-" + model.ShortID(g.userID)
}

// BuildWorkbook membuat sheet Ringkasan lalu satu sheet per user.
func BuildWorkbook(in Input) (*excelize.File, error) {
	if in.Location == nil {
		in.Location = time.Local
	}
	groups := groupByUser(in.Records, in.Profiles)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSummary(f, in, groups, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	used := map[string]bool{strings.ToLower(SummarySheet): true}
	for _, g := range groups {
		sheet := uniqueSheetName(SheetName(g.displayName()), used)
		if err := writeUserSheet(f, sheet, g, in.Location, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSummary(f *excelize.File, in Input, groups []userGroup, headerStyle int) error {
	sheet := SummarySheet
	rows := [][]interface{}{
		{fmt.Sprintf("Ringkasan Presensi BNSP - %s", in.Period.Label())},
		{"Tanggal Download:", in.DownloadedAt.In(in.Location).Format("02/01/2006 15:04")},
		{"Period:", in.Period.Label()},
		{"Total Pengguna:", len(groups)},
		{"Total Record:", len(in.Records)},
		{},
		summaryHeader,
	}
	for _, g := range groups {
		name, nip := unknownName, emptyCell
		if g.profile != nil {
			name = orDefault(g.profile.FullName, unknownName)
			nip = orDefault(g.profile.EmployeeID, emptyCell)
		}
		// records sudah urut tanggal terbaru, jadi baris pertama = terakhir hadir
		rows = append(rows, []interface{}{name, nip, len(g.records), formatDate(g.records[0].Date), "Aktif"})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet, "A7", "E7", headerStyle); err != nil {
		return err
	}
	return setWidths(f, sheet, summaryWidths)
}

func writeUserSheet(f *excelize.File, sheet string, g userGroup, loc *time.Location, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := userHeaders
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return err
	}

	name, nip, position, department := noProfileName, emptyCell, emptyCell, emptyCell
	if g.profile != nil {
		name = orDefault(g.profile.FullName, noProfileName)
		nip = orDefault(g.profile.EmployeeID, emptyCell)
		position = orDefault(g.profile.Position, emptyCell)
		department = orDefault(g.profile.Department, emptyCell)
	}

	for i, rec := range g.records {
		row := []interface{}{
			formatDate(rec.Date),
			name,
			nip,
			position,
			department,
			formatClock(rec.ClockInTime, loc),
			formatClock(rec.ClockOutTime, loc),
			orDefault(rec.WorkType, emptyCell),
			orDefault(rec.Status, emptyCell),
			orDefault(rec.Report(), emptyCell),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return setWidths(f, sheet, userWidths)
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return emptyCell
	}
	return t.Format("02/01/2006")
}

func formatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return emptyCell
	}
	return t.In(loc).Format("15:04")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
