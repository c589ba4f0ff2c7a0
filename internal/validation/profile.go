package validation

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ProfileInput struct {
	FullName   string `json:"full_name" validate:"min=2,max=100,alphaspace"`
	Position   string `json:"position" validate:"min=2,max=50"`
	Department string `json:"department" validate:"department"`
	EmployeeID string `json:"employee_id" validate:"min=3,max=20,employeeid"`
}

// FieldErrors memetakan nama field (json) ke pesan error.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, f[k])
	}
	return strings.Join(msgs, "; ")
}

var profileMessages = map[string]map[string]string{
	"full_name": {
		"min":        "Nama minimal 2 karakter",
		"max":        "Nama maksimal 100 karakter",
		"alphaspace": "Nama hanya boleh mengandung huruf dan spasi",
	},
	"position": {
		"min": "Jabatan minimal 2 karakter",
		"max": "Jabatan maksimal 50 karakter",
	},
	"department": {
		"department": "Pilih departemen yang valid",
	},
	"employee_id": {
		"min":        "NIP minimal 3 karakter",
		"max":        "NIP maksimal 20 karakter",
		"employeeid": "NIP hanya boleh mengandung huruf besar, angka, dan tanda strip",
	},
}

// Profile memvalidasi seluruh field profil.
func Profile(in ProfileInput) error {
	return translateProfile(validate.Struct(in))
}

// ProfileWithoutEmployeeID dipakai saat user mengubah profil sendiri (NIP tidak ikut diubah).
func ProfileWithoutEmployeeID(in ProfileInput) error {
	return translateProfile(validate.StructExcept(in, "EmployeeID"))
}

func translateProfile(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{"general": "Data profil tidak valid"}
	}

	out := FieldErrors{}
	for _, fe := range ve {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		msg := profileMessages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = "Data profil tidak valid"
		}
		out[fe.Field()] = msg
	}
	return out
}
