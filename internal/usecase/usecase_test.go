package usecase

import (
	"testing"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

// fakeNow adalah jam yang bisa digeser dari test.
type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) set(date, hhmm string) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, wib)
	if err != nil {
		panic(err)
	}
	f.t = t
}

type fixture struct {
	repos repository.Repositories
	now   *fakeNow
	clock Clock
}

func newFixture(date, hhmm string) *fixture {
	n := &fakeNow{}
	n.set(date, hhmm)
	store := memory.NewStore()
	store.SetClock(n.now)
	return &fixture{repos: store.Repositories(), now: n, clock: NewClock(n.now, wib)}
}

func (f *fixture) addProfile(t *testing.T, userID, name, role string) {
	t.Helper()
	p := model.Profile{UserID: userID, FullName: name, Position: "Analis", Department: model.DepartmentUmum, EmployeeID: "EMP-" + model.ShortID(userID)}
	require.NoError(t, f.repos.Profiles.Create(&p))
	if role != "" {
		require.NoError(t, f.repos.Roles.Upsert(userID, role))
	}
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, KindOf(err), err.Error())
}

func TestClock(t *testing.T) {
	f := newFixture("2024-03-04", "23:30")
	assert.Equal(t, "2024-03-04", f.clock.Today())

	got, err := f.clock.At("2024-03-05", "07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, wib, got.Location())

	_, err = f.clock.At("2024-03-05", "7.45")
	assert.Error(t, err)
}
