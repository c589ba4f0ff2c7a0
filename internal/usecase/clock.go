package usecase

import (
	"time"

	"e-presensi-backend/internal/model"
)

// Clock adalah sumber waktu di zona kantor.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: now, loc: loc}
}

func (c Clock) Now() time.Time { return c.now().In(c.loc) }
func (c Clock) Today() string { return c.Now().Format(model.DateLayout) }
func (c Clock) Location() *time.Location { return c.loc }

// At menggabungkan tanggal "YYYY-MM-DD" dan jam "HH:mm" di zona kantor.
func (c Clock) At(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout+" 15:04", date+" "+hhmm, c.loc)
}
