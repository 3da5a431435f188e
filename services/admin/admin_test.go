package admin

import (
	"testing"

	bookingRepo "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	"github.com/RajRabadiya018/CarringNanny/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Compact in-memory repositories; only the behavior the admin service relies
// on is modeled.

type memUsers struct{ users map[string]*models.User }

func (r *memUsers) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (r *memUsers) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return r.GetByID(id)
}
func (r *memUsers) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *memUsers) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}
func (r *memUsers) GetRecent(limit int64) ([]models.User, error) { return r.GetAll() }
func (r *memUsers) Count(filter bson.M) (int64, error) {
	if role, ok := filter["role"]; ok {
		var n int64
		for _, u := range r.users {
			if u.Role == role {
				n++
			}
		}
		return n, nil
	}
	return int64(len(r.users)), nil
}
func (r *memUsers) Create(u *models.User) error                   { r.users[u.ID] = u; return nil }
func (r *memUsers) Update(u *models.User) error                   { r.users[u.ID] = u; return nil }
func (r *memUsers) UpdateSetDocument(id string, d bson.M) error   { return nil }
func (r *memUsers) Delete(id string) error                        { delete(r.users, id); return nil }

type memNannies struct{ nannies map[string]*models.Nanny }

func (r *memNannies) GetByID(id string) (*models.Nanny, error) {
	if n, ok := r.nannies[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}
func (r *memNannies) GetByUserID(userID string) (*models.Nanny, error) {
	for _, n := range r.nannies {
		if n.UserID == userID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memNannies) GetAll() ([]models.Nanny, error) {
	var out []models.Nanny
	for _, n := range r.nannies {
		out = append(out, *n)
	}
	return out, nil
}
func (r *memNannies) Count(filter bson.M) (int64, error) { return int64(len(r.nannies)), nil }
func (r *memNannies) Create(n *models.Nanny) error       { r.nannies[n.ID] = n; return nil }
func (r *memNannies) Update(n *models.Nanny) error       { r.nannies[n.ID] = n; return nil }
func (r *memNannies) Delete(id string) error             { delete(r.nannies, id); return nil }
func (r *memNannies) DeleteByUserID(userID string) error {
	for id, n := range r.nannies {
		if n.UserID == userID {
			delete(r.nannies, id)
		}
	}
	return nil
}

type memBookings struct{ bookings map[string]*models.Booking }

func (r *memBookings) Create(b *models.Booking) error { r.bookings[b.ID] = b; return nil }
func (r *memBookings) GetByID(id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}
func (r *memBookings) GetByParent(parentID string) ([]models.Booking, error) { return nil, nil }
func (r *memBookings) GetByNanny(nannyID string) ([]models.Booking, error)   { return nil, nil }
func (r *memBookings) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}
func (r *memBookings) GetRecent(limit int64) ([]models.Booking, error) { return r.GetAll() }
func (r *memBookings) Count(filter bson.M) (int64, error)              { return int64(len(r.bookings)), nil }
func (r *memBookings) UpdateStatusIf(id string, allowed []string, set bson.M) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotInExpectedState
}
func (r *memBookings) SetTotalPrice(id string, price float64) error { return nil }
func (r *memBookings) DeleteByParent(parentID string) (int64, error) {
	return r.deleteWhere(func(b *models.Booking) bool { return b.ParentID == parentID }), nil
}
func (r *memBookings) DeleteByNanny(nannyID string) (int64, error) {
	return r.deleteWhere(func(b *models.Booking) bool { return b.NannyID == nannyID }), nil
}
func (r *memBookings) deleteWhere(match func(*models.Booking) bool) int64 {
	var n int64
	for id, b := range r.bookings {
		if match(b) {
			delete(r.bookings, id)
			n++
		}
	}
	return n
}

func newAdminFixture() (*DefaultAdminService, *memUsers, *memNannies, *memBookings) {
	users := &memUsers{users: map[string]*models.User{
		"p1": {ID: "p1", Name: "Priya", Role: models.RoleParent},
		"n1": {ID: "n1", Name: "Asha", Role: models.RoleNanny},
		"a1": {ID: "a1", Name: "Admin", Role: models.RoleAdmin},
	}}
	nannies := &memNannies{nannies: map[string]*models.Nanny{
		"prof1": {ID: "prof1", UserID: "n1", HourlyRate: 20},
	}}
	bookings := &memBookings{bookings: map[string]*models.Booking{
		"b1": {ID: "b1", ParentID: "p1", NannyID: "prof1", Status: models.StatusPending},
		"b2": {ID: "b2", ParentID: "p1", NannyID: "prof1", Status: models.StatusCompleted},
	}}
	svc := &DefaultAdminService{Users: users, Nannies: nannies, Bookings: bookings}
	return svc, users, nannies, bookings
}

func TestDeleteParentCascadesBookings(t *testing.T) {
	svc, users, _, bookings := newAdminFixture()

	require.NoError(t, svc.DeleteUser("p1"))

	assert.NotContains(t, users.users, "p1")
	assert.Empty(t, bookings.bookings, "parent's bookings removed with the account")
}

func TestDeleteNannyAccountCascadesProfileAndBookings(t *testing.T) {
	svc, users, nannies, bookings := newAdminFixture()

	require.NoError(t, svc.DeleteUser("n1"))

	assert.NotContains(t, users.users, "n1")
	assert.Empty(t, nannies.nannies)
	assert.Empty(t, bookings.bookings)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _, _, _ := newAdminFixture()
	assert.Error(t, svc.DeleteUser("nobody"))
}

func TestDeleteNannyProfileKeepsAccount(t *testing.T) {
	svc, users, nannies, bookings := newAdminFixture()

	require.NoError(t, svc.DeleteNanny("prof1"))

	assert.Empty(t, nannies.nannies)
	assert.Empty(t, bookings.bookings)
	assert.Contains(t, users.users, "n1", "the account survives a profile removal")
}

func TestGetAllUsersHidesCredentials(t *testing.T) {
	svc, users, _, _ := newAdminFixture()
	users.users["p1"].PasswordHash = "hash"
	users.users["p1"].TokenHash = "token"

	public, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, public, 3)
}

func TestGetStats(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.UserStats.Total)
	assert.Equal(t, int64(1), stats.UserStats.Parents)
	assert.Equal(t, int64(1), stats.UserStats.Nannies)
	assert.Equal(t, int64(1), stats.UserStats.Admins)
	assert.Equal(t, int64(1), stats.NannyProfiles)
	assert.Equal(t, int64(2), stats.Bookings)
	assert.Len(t, stats.RecentUsers, 3)
	assert.Len(t, stats.RecentBookings, 2)
}
