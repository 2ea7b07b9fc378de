package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/websocket"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, name, pictureURL *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(ctx context.Context, auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, name, pictureURL)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:         uuid.New(),
		Auth0ID:    auth0ID,
		Email:      email,
		Name:       name,
		PictureURL: pictureURL,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockWorkspaceRepository is a mock implementation of domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	Workspaces map[uuid.UUID]*domain.Workspace
	CreateFn   func(workspace *domain.Workspace) (*domain.Workspace, error)
	DeleteFn   func(id uuid.UUID) error
	Deleted    []uuid.UUID
}

// NewMockWorkspaceRepository creates a new MockWorkspaceRepository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{
		Workspaces: make(map[uuid.UUID]*domain.Workspace),
	}
}

// GetByID retrieves a workspace by ID
func (m *MockWorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if ws, ok := m.Workspaces[id]; ok {
		return ws, nil
	}
	return nil, domain.ErrWorkspaceNotFound
}

// Create creates a new workspace
func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) (*domain.Workspace, error) {
	if m.CreateFn != nil {
		return m.CreateFn(workspace)
	}
	workspace.ID = uuid.New()
	workspace.CreatedAt = time.Now()
	workspace.UpdatedAt = workspace.CreatedAt
	m.Workspaces[workspace.ID] = workspace
	return workspace, nil
}

// UpdateName updates a workspace's name
func (m *MockWorkspaceRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Workspace, error) {
	ws, ok := m.Workspaces[id]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	ws.Name = name
	ws.UpdatedAt = time.Now()
	return ws, nil
}

// Delete deletes a workspace
func (m *MockWorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Workspaces[id]; !ok {
		return domain.ErrWorkspaceNotFound
	}
	delete(m.Workspaces, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// AddWorkspace adds a workspace to the mock repository (helper for tests)
func (m *MockWorkspaceRepository) AddWorkspace(ws *domain.Workspace) {
	m.Workspaces[ws.ID] = ws
}

type membershipKey struct {
	workspaceID uuid.UUID
	userID      uuid.UUID
}

// MockMembershipRepository is a mock implementation of domain.MembershipRepository
type MockMembershipRepository struct {
	Memberships map[membershipKey]*domain.Membership
	Details     map[uuid.UUID][]domain.MembershipDetail
	ListFn      func(userID uuid.UUID) ([]domain.MembershipDetail, error)
	CreateFn    func(membership *domain.Membership) error
}

// NewMockMembershipRepository creates a new MockMembershipRepository
func NewMockMembershipRepository() *MockMembershipRepository {
	return &MockMembershipRepository{
		Memberships: make(map[membershipKey]*domain.Membership),
		Details:     make(map[uuid.UUID][]domain.MembershipDetail),
	}
}

// ListByUser lists the user's memberships expanded with their workspaces
func (m *MockMembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MembershipDetail, error) {
	if m.ListFn != nil {
		return m.ListFn(userID)
	}
	return m.Details[userID], nil
}

// Get retrieves a membership by workspace and user
func (m *MockMembershipRepository) Get(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error) {
	if membership, ok := m.Memberships[membershipKey{workspaceID, userID}]; ok {
		return membership, nil
	}
	return nil, domain.ErrMembershipNotFound
}

// Create creates a new membership
func (m *MockMembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	if m.CreateFn != nil {
		return m.CreateFn(membership)
	}
	key := membershipKey{membership.WorkspaceID, membership.UserID}
	if _, ok := m.Memberships[key]; ok {
		return domain.ErrAlreadyMember
	}
	membership.CreatedAt = time.Now()
	m.Memberships[key] = membership
	return nil
}

// AddMembership adds a membership to the mock repository (helper for tests)
func (m *MockMembershipRepository) AddMembership(membership *domain.Membership) {
	m.Memberships[membershipKey{membership.WorkspaceID, membership.UserID}] = membership
}

// AddDetail adds a membership detail row for a user's landing list (helper for tests)
func (m *MockMembershipRepository) AddDetail(userID uuid.UUID, detail domain.MembershipDetail) {
	m.Details[userID] = append(m.Details[userID], detail)
}

// MockInviteRepository is a mock implementation of domain.InviteRepository
type MockInviteRepository struct {
	ByToken     map[string]uuid.UUID
	ByWorkspace map[uuid.UUID]string
	CreateFn    func(workspaceID uuid.UUID, token string) error
}

// NewMockInviteRepository creates a new MockInviteRepository
func NewMockInviteRepository() *MockInviteRepository {
	return &MockInviteRepository{
		ByToken:     make(map[string]uuid.UUID),
		ByWorkspace: make(map[uuid.UUID]string),
	}
}

// Create persists an invite token for a workspace
func (m *MockInviteRepository) Create(ctx context.Context, workspaceID uuid.UUID, token string) error {
	if m.CreateFn != nil {
		return m.CreateFn(workspaceID, token)
	}
	m.ByToken[token] = workspaceID
	m.ByWorkspace[workspaceID] = token
	return nil
}

// GetWorkspaceByToken resolves a token to its workspace ID
func (m *MockInviteRepository) GetWorkspaceByToken(ctx context.Context, token string) (uuid.UUID, error) {
	if workspaceID, ok := m.ByToken[token]; ok {
		return workspaceID, nil
	}
	return uuid.Nil, domain.ErrInvalidInviteToken
}

// GetTokenByWorkspace retrieves the invite token for a workspace
func (m *MockInviteRepository) GetTokenByWorkspace(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	if token, ok := m.ByWorkspace[workspaceID]; ok {
		return token, nil
	}
	return "", domain.ErrWorkspaceNotFound
}

// AddInvite adds an invite token to the mock repository (helper for tests)
func (m *MockInviteRepository) AddInvite(workspaceID uuid.UUID, token string) {
	m.ByToken[token] = workspaceID
	m.ByWorkspace[workspaceID] = token
}

// PublishedEvent records a single Publish call
type PublishedEvent struct {
	WorkspaceID uuid.UUID
	Event       websocket.Event
}

// MockEventPublisher records published events for assertions
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(workspaceID uuid.UUID, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{WorkspaceID: workspaceID, Event: event})
}
