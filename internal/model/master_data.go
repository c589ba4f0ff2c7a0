package model

import "errors"

var ErrMalformedRow = errors.New("baris data tidak valid")

const (
	WorkTypeWFO   = "WFO"
	WorkTypeDL    = "DL"
	WorkTypeCuti  = "Cuti"
	WorkTypeSakit = "Sakit"
)

const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusReportOnly = "report_only"
)

const (
	DepartmentSekretariat   = "Sekretariat"
	DepartmentAkreditasiLSP = "Akreditasi LSP"
	DepartmentSertifikasi   = "Sertifikasi"
	DepartmentPengembangan  = "Pengembangan"
	DepartmentHukum         = "Hukum"
	DepartmentUmum          = "Umum"
)

var WorkTypes = []string{WorkTypeWFO, WorkTypeDL, WorkTypeCuti, WorkTypeSakit}

var AttendanceStatuses = []string{StatusActive, StatusCompleted, StatusReportOnly}

var Departments = []string{
	DepartmentSekretariat,
	DepartmentAkreditasiLSP,
	DepartmentSertifikasi,
	DepartmentPengembangan,
	DepartmentHukum,
	DepartmentUmum,
}

func IsWorkType(v string) bool         { return contains(WorkTypes, v) }
func IsAttendanceStatus(v string) bool { return contains(AttendanceStatuses, v) }
func IsDepartment(v string) bool       { return contains(Departments, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
