package booking

import (
	"sort"
	"sync"
	"time"

	bookingRepo "github.com/RajRabadiya018/CarringNanny/database/repository/booking"
	"github.com/RajRabadiya018/CarringNanny/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repositories backing the service tests. fakeBookingRepo applies
// UpdateStatusIf under a mutex so the guard behaves atomically, matching the
// single conditional write the Mongo implementation performs.

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByParent(parentID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.ParentID == parentID }), nil
}

func (r *fakeBookingRepo) GetByNanny(nannyID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.NannyID == nannyID }), nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	return r.filter(func(*models.Booking) bool { return true }), nil
}

func (r *fakeBookingRepo) GetRecent(limit int64) ([]models.Booking, error) {
	all, _ := r.GetAll()
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeBookingRepo) Count(filter bson.M) (int64, error) {
	all, _ := r.GetAll()
	return int64(len(all)), nil
}

func (r *fakeBookingRepo) UpdateStatusIf(id string, allowedCurrent []string, set bson.M) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotInExpectedState
	}
	allowed := false
	for _, s := range allowedCurrent {
		if b.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, bookingRepo.ErrNotInExpectedState
	}

	for k, v := range set {
		switch k {
		case "status":
			b.Status = v.(string)
		case "cancellationReason":
			b.CancellationReason = v.(string)
		case "nannyMessage":
			b.NannyMessage = v.(string)
		case "completionNotes":
			b.CompletionNotes = v.(string)
		case "parentReview":
			review := v.(models.ParentReview)
			b.ParentReview = &review
		}
	}
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) SetTotalPrice(id string, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.TotalPrice = price
		b.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeBookingRepo) DeleteByParent(parentID string) (int64, error) {
	return r.deleteWhere(func(b *models.Booking) bool { return b.ParentID == parentID }), nil
}

func (r *fakeBookingRepo) DeleteByNanny(nannyID string) (int64, error) {
	return r.deleteWhere(func(b *models.Booking) bool { return b.NannyID == nannyID }), nil
}

func (r *fakeBookingRepo) filter(keep func(*models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeBookingRepo) deleteWhere(match func(*models.Booking) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, b := range r.bookings {
		if match(b) {
			delete(r.bookings, id)
			n++
		}
	}
	return n
}

type fakeNannyRepo struct {
	mu      sync.Mutex
	nannies map[string]*models.Nanny
}

func newFakeNannyRepo() *fakeNannyRepo {
	return &fakeNannyRepo{nannies: make(map[string]*models.Nanny)}
}

func (r *fakeNannyRepo) GetByID(id string) (*models.Nanny, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nannies[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNannyRepo) GetByUserID(userID string) (*models.Nanny, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nannies {
		if n.UserID == userID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNannyRepo) GetAll() ([]models.Nanny, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Nanny
	for _, n := range r.nannies {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNannyRepo) Count(filter bson.M) (int64, error) {
	all, _ := r.GetAll()
	return int64(len(all)), nil
}

func (r *fakeNannyRepo) Create(n *models.Nanny) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.nannies[n.ID] = &cp
	return nil
}

func (r *fakeNannyRepo) Update(n *models.Nanny) error {
	return r.Create(n)
}

func (r *fakeNannyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.nannies, id)
	return nil
}

func (r *fakeNannyRepo) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.nannies {
		if n.UserID == userID {
			delete(r.nannies, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetRecent(limit int64) ([]models.User, error) {
	all, _ := r.GetAll()
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeUserRepo) Count(filter bson.M) (int64, error) {
	all, _ := r.GetAll()
	return int64(len(all)), nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	return r.Create(u)
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// fixture wires a service over fresh fakes with one parent, one nanny account
// and one nanny profile pre-seeded.
type fixture struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	nannies  *fakeNannyRepo
	users    *fakeUserRepo
}

const (
	parentID    = "parent-1"
	nannyUserID = "nanny-user-1"
	nannyID     = "nanny-1"
)

func newFixture(hourlyRate float64) *fixture {
	bookings := newFakeBookingRepo()
	nannies := newFakeNannyRepo()
	users := newFakeUserRepo()

	users.Create(&models.User{ID: parentID, Name: "Priya", Email: "priya@example.com", Role: models.RoleParent})
	users.Create(&models.User{ID: nannyUserID, Name: "Asha", Email: "asha@example.com", Role: models.RoleNanny})
	nannies.Create(&models.Nanny{ID: nannyID, UserID: nannyUserID, HourlyRate: hourlyRate})

	return &fixture{
		svc:      NewDefaultBookingService(bookings, nannies, users),
		bookings: bookings,
		nannies:  nannies,
		users:    users,
	}
}

// freezeClock pins the validator's clock so past-start checks are stable.
func (f *fixture) freezeClock(now time.Time) {
	f.svc.validator.Now = func() time.Time { return now }
}

// validDraft returns a draft that passes every creation rule relative to now.
func validDraft(now time.Time) models.BookingDraft {
	return models.BookingDraft{
		NannyID:          nannyID,
		StartTime:        now.Add(24 * time.Hour),
		EndTime:          now.Add(32 * time.Hour),
		NumberOfDays:     1,
		NumberOfChildren: 2,
		ChildrenAges:     []int{3, 6},
		ServiceType:      models.ServiceBabysitting,
		Location:         &models.Location{Address: "12 Rose St", City: "Pune", State: "MH", ZipCode: "411001"},
	}
}

// seedBooking inserts a booking directly in the given status.
func (f *fixture) seedBooking(id, status string) *models.Booking {
	now := time.Now()
	b := &models.Booking{
		ID:               id,
		ParentID:         parentID,
		NannyID:          nannyID,
		NannyName:        "Asha",
		Date:             now.Add(24 * time.Hour),
		StartTime:        now.Add(24 * time.Hour),
		EndTime:          now.Add(32 * time.Hour),
		Status:           status,
		TotalPrice:       160,
		ServiceType:      models.ServiceBabysitting,
		NumberOfDays:     1,
		NumberOfChildren: 2,
		ChildrenAges:     []int{3, 6},
		PaymentStatus:    models.PaymentPending,
	}
	f.bookings.Create(b)
	return b
}
