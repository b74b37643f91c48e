// Package store holds the operations desk state: users, shipments, flights,
// equipment, the activity log and the UI session. Every mutation goes through a
// Store method; audited mutations append one ActionLog entry.
package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"polar-backend/internal/models"
	"polar-backend/internal/timeutil"

	"go.uber.org/zap"
)

type Store struct {
	mu     sync.RWMutex
	emitMu sync.Mutex

	seed      Seed
	users     []models.User
	shipments []models.Shipment
	flights   []models.Flight
	equipment []models.Equipment
	logs      []models.ActionLog // newest first
	logSeq    int

	currentUser *models.User
	section     models.Section
	sidebarOpen bool
	darkMode    bool

	now    func() time.Time
	theme  ThemeApplier
	logger *zap.Logger

	subMu   sync.Mutex
	subs    map[int]Listener
	nextSub int
}

type Option func(*Store)

// WithClock overrides the time source used for log and edit timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTheme sets the presentation collaborator notified by ToggleDarkMode
func WithTheme(t ThemeApplier) Option {
	return func(s *Store) { s.theme = t }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New builds a store populated from seed
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		seed:   seed.clone(),
		now:    timeutil.Now,
		theme:  noopTheme{},
		logger: zap.NewNop(),
		subs:   make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load resets every collection and the session to the seed. Caller holds s.mu or owns s exclusively.
func (s *Store) load() {
	seed := s.seed.clone()
	s.users = seed.Users
	s.shipments = seed.Shipments
	s.flights = seed.Flights
	s.equipment = seed.Equipment
	s.logs = seed.Logs
	s.logSeq = maxLogSeq(seed.Logs)

	s.currentUser = nil
	s.section = models.SectionDashboard
	s.sidebarOpen = true
	s.darkMode = false
}

func maxLogSeq(logs []models.ActionLog) int {
	max := 0
	for _, l := range logs {
		n, err := strconv.Atoi(strings.TrimPrefix(l.ID, "l"))
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

// Reset restores the built-in seed, as a full reload of the desk would
func (s *Store) Reset() {
	s.mu.Lock()
	wasDark := s.darkMode
	s.load()
	if wasDark {
		s.theme.ApplyTheme(false)
	}
	session := s.sessionLocked()
	s.commit(Event{Kind: EventReset, Session: &session})
}

// Session

// Login sets the current user when email and password match a user exactly
func (s *Store) Login(email, password string) (models.User, bool) {
	s.mu.Lock()
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			user := u
			s.currentUser = &user
			s.logger.Debug("[Store] login", zap.String("user_id", u.ID))
			session := s.sessionLocked()
			s.commit(Event{Kind: EventLogin, EntityID: u.ID, Session: &session})
			return u, true
		}
	}
	s.mu.Unlock()
	return models.User{}, false
}

// Logout clears the current user; section and UI flags are kept
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	session := s.sessionLocked()
	s.commit(Event{Kind: EventLogout, Session: &session})
}

// SetSection replaces the active section without validation
func (s *Store) SetSection(section models.Section) {
	s.mu.Lock()
	s.section = section
	session := s.sessionLocked()
	s.commit(Event{Kind: EventSection, Session: &session})
}

func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	s.sidebarOpen = open
	session := s.sessionLocked()
	s.commit(Event{Kind: EventSidebar, Session: &session})
}

// ToggleDarkMode flips the theme flag, mirrors it to the presentation layer and returns the new value
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	dark := s.darkMode
	s.theme.ApplyTheme(dark)
	session := s.sessionLocked()
	s.commit(Event{Kind: EventTheme, Session: &session})
	return dark
}

func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionLocked()
}

func (s *Store) sessionLocked() models.Session {
	session := models.Session{
		Section:     s.section,
		SidebarOpen: s.sidebarOpen,
		DarkMode:    s.darkMode,
	}
	if s.currentUser != nil {
		u := *s.currentUser
		session.CurrentUser = &u
	}
	return session
}

// CurrentUser returns the logged-in user, if any
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// Reads. Every read returns a copy.

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// User looks a user up by id
func (s *Store) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) Shipments() []models.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Shipment(nil), s.shipments...)
}

func (s *Store) Shipment(id string) (models.Shipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.shipmentIndex(id); i >= 0 {
		return s.shipments[i], true
	}
	return models.Shipment{}, false
}

func (s *Store) Flights() []models.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Flight(nil), s.flights...)
}

func (s *Store) Flight(id string) (models.Flight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.flightIndex(id); i >= 0 {
		return s.flights[i], true
	}
	return models.Flight{}, false
}

func (s *Store) Equipment() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Equipment(nil), s.equipment...)
}

func (s *Store) EquipmentItem(id string) (models.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.equipmentIndex(id); i >= 0 {
		return s.equipment[i], true
	}
	return models.Equipment{}, false
}

// Logs returns the newest limit entries, newest first. limit <= 0 returns all of them.
func (s *Store) Logs(limit int) []models.ActionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.logs)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.ActionLog(nil), s.logs[:n]...)
}
