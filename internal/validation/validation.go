// Package validation berisi pengecekan input sebelum data dikirim ke database.
// Setiap fungsi mengembalikan nil atau error dengan satu pesan yang siap ditampilkan ke user.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"e-presensi-backend/internal/model"

	"github.com/go-playground/validator/v10"
)

// Error adalah kegagalan validasi dengan pesan untuk user.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(field, msg string) error {
	return &Error{Field: field, Message: msg}
}

// Message mengambil pesan user dari error validasi; "" jika bukan error validasi.
func Message(err error) string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Message
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return ""
}

var (
	nameRegex       = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	employeeIDRegex = regexp.MustCompile(`^[A-Z0-9-]*$`)
	sanitizeTags    = regexp.MustCompile(`[<>]`)
	sanitizeJS      = regexp.MustCompile(`(?i)javascript:`)
	sanitizeEvents  = regexp.MustCompile(`(?i)on\w+=`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("employeeid", func(fl validator.FieldLevel) bool {
		return employeeIDRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return model.IsDepartment(fl.Field().String())
	})
	_ = v.RegisterValidation("worktype", func(fl validator.FieldLevel) bool {
		return model.IsWorkType(fl.Field().String())
	})
	return v
}

func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fail("email", "Email wajib diisi")
	}
	if err := validate.Var(email, "email"); err != nil {
		return fail("email", "Format email tidak valid")
	}
	return nil
}

func Password(password string) error {
	n := utf8.RuneCountInString(password)
	if n < 6 {
		return fail("password", "Password minimal 6 karakter")
	}
	if n > 100 {
		return fail("password", "Password maksimal 100 karakter")
	}
	return nil
}

// DailyReport dicek setelah spasi di awal/akhir dibuang.
func DailyReport(report string) error {
	report = strings.TrimSpace(report)
	if err := validate.Var(report, "min=10"); err != nil {
		return fail("daily_report", "Laporan kegiatan minimal 10 karakter")
	}
	if err := validate.Var(report, "max=1000"); err != nil {
		return fail("daily_report", "Laporan kegiatan maksimal 1000 karakter")
	}
	return nil
}

func WorkType(workType string) error {
	if err := validate.Var(workType, "worktype"); err != nil {
		return fail("work_type", "Pilih tipe kerja yang valid")
	}
	return nil
}

func Department(department string) error {
	if err := validate.Var(department, "department"); err != nil {
		return fail("department", "Pilih departemen yang valid")
	}
	return nil
}

func Role(role string) error {
	if err := validate.Var(role, "oneof=admin user"); err != nil {
		return fail("role", "Role tidak valid")
	}
	return nil
}

// SanitizeString membuang karakter tag HTML, protokol javascript: dan atribut event handler.
func SanitizeString(input string) string {
	out := strings.TrimSpace(input)
	out = sanitizeTags.ReplaceAllString(out, "")
	out = sanitizeJS.ReplaceAllString(out, "")
	out = sanitizeEvents.ReplaceAllString(out, "")
	return out
}
