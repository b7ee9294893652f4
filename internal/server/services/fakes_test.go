package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/dbx"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/settings"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/users"
	"github.com/google/uuid"
)

type fakeUsersRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *u
	cp.ID = uuid.NewString()
	f.byName[u.UserName] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeSessionsRepo struct {
	mu   sync.Mutex
	byID map[string]models.Session

	createErr error
	findErr   error
	updateErr error
	updates   int
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{byID: map[string]models.Session{}}
}

func (f *fakeSessionsRepo) put(s models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.ID] = s
}

func (f *fakeSessionsRepo) Create(_ context.Context, s *models.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.put(*s)
	return nil
}

func (f *fakeSessionsRepo) Find(_ context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (f *fakeSessionsRepo) UpdateExpiry(_ context.Context, id string, t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.updates++
	s.ExpiresAt = t
	f.byID[id] = s
	return nil
}

type fakeSettingsRepo struct {
	mu     sync.Mutex
	byUser map[string]models.Theme

	upsertErr error
	getErr    error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byUser: map[string]models.Theme{}}
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.byUser[s.UserID] = s.Theme
	return nil
}

func (f *fakeSettingsRepo) Get(_ context.Context, userID string) (*models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	t, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Settings{UserID: userID, Theme: t}, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	s  *fakeSessionsRepo
	st *fakeSettingsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), s: newFakeSessionsRepo(), st: newFakeSettingsRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository       { return m.s }
func (m *fakeRepoManager) Settings(dbx.DBTX) settings.Repository       { return m.st }
