package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"pims/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !includeInactive && !u.IsActive {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock BuildingRepository ──

type mockBuildingRepo struct {
	buildings map[string]*model.Building
}

func newMockBuildingRepo() *mockBuildingRepo {
	return &mockBuildingRepo{buildings: make(map[string]*model.Building)}
}

func (m *mockBuildingRepo) Create(_ context.Context, b *model.Building) error {
	if b.BuildingID == "" {
		b.BuildingID = "bld-" + b.Code
	}
	m.buildings[b.BuildingID] = b
	return nil
}

func (m *mockBuildingRepo) GetByID(_ context.Context, id string) (*model.Building, error) {
	if b, ok := m.buildings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBuildingRepo) List(_ context.Context, includeInactive bool) ([]model.Building, error) {
	var result []model.Building
	for _, b := range m.buildings {
		if !includeInactive && !b.IsActive {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBuildingRepo) Update(_ context.Context, b *model.Building) error {
	m.buildings[b.BuildingID] = b
	return nil
}

func (m *mockBuildingRepo) Delete(_ context.Context, id string) error {
	delete(m.buildings, id)
	return nil
}

// ── Mock FloorRepository ──

type mockFloorRepo struct {
	floors map[string]*model.Floor
}

func newMockFloorRepo() *mockFloorRepo {
	return &mockFloorRepo{floors: make(map[string]*model.Floor)}
}

func (m *mockFloorRepo) Create(_ context.Context, f *model.Floor) error {
	if f.FloorID == "" {
		f.FloorID = "flr-" + f.Name
	}
	m.floors[f.FloorID] = f
	return nil
}

func (m *mockFloorRepo) GetByID(_ context.Context, id string) (*model.Floor, error) {
	if f, ok := m.floors[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFloorRepo) List(_ context.Context, includeInactive bool) ([]model.Floor, error) {
	var result []model.Floor
	for _, f := range m.floors {
		if !includeInactive && !f.IsActive {
			continue
		}
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FloorNumber < result[j].FloorNumber
	})
	return result, nil
}

func (m *mockFloorRepo) Update(_ context.Context, f *model.Floor) error {
	m.floors[f.FloorID] = f
	return nil
}

func (m *mockFloorRepo) Delete(_ context.Context, id string) error {
	delete(m.floors, id)
	return nil
}

// ── Mock BlockRepository ──

type mockBlockRepo struct {
	blocks map[string]*model.Block
}

func newMockBlockRepo() *mockBlockRepo {
	return &mockBlockRepo{blocks: make(map[string]*model.Block)}
}

func (m *mockBlockRepo) Create(_ context.Context, b *model.Block) error {
	if b.BlockID == "" {
		b.BlockID = "blk-" + b.Code
	}
	m.blocks[b.BlockID] = b
	return nil
}

func (m *mockBlockRepo) GetByID(_ context.Context, id string) (*model.Block, error) {
	if b, ok := m.blocks[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBlockRepo) List(_ context.Context, includeInactive bool) ([]model.Block, error) {
	var result []model.Block
	for _, b := range m.blocks {
		if !includeInactive && !b.IsActive {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBlockRepo) Update(_ context.Context, b *model.Block) error {
	m.blocks[b.BlockID] = b
	return nil
}

func (m *mockBlockRepo) Delete(_ context.Context, id string) error {
	delete(m.blocks, id)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.RoomID == "" {
		room.RoomID = "room-" + room.RoomNumber
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context, includeInactive bool) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if !includeInactive && !r.IsActive {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	delete(m.rooms, id)
	return nil
}

// ── Mock OfficeRepository ──

type mockOfficeRepo struct {
	offices map[string]*model.Office
}

func newMockOfficeRepo() *mockOfficeRepo {
	return &mockOfficeRepo{offices: make(map[string]*model.Office)}
}

func (m *mockOfficeRepo) Create(_ context.Context, o *model.Office) error {
	if o.OfficeID == "" {
		o.OfficeID = "off-" + o.OfficeCode
	}
	m.offices[o.OfficeID] = o
	return nil
}

func (m *mockOfficeRepo) GetByID(_ context.Context, id string) (*model.Office, error) {
	if o, ok := m.offices[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOfficeRepo) List(_ context.Context, includeInactive bool) ([]model.Office, error) {
	var result []model.Office
	for _, o := range m.offices {
		if !includeInactive && !o.IsActive {
			continue
		}
		result = append(result, *o)
	}
	return result, nil
}

func (m *mockOfficeRepo) Update(_ context.Context, o *model.Office) error {
	m.offices[o.OfficeID] = o
	return nil
}

func (m *mockOfficeRepo) Delete(_ context.Context, id string) error {
	delete(m.offices, id)
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = "loc-" + loc.LocationCode
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context, includeInactive bool, buildingID string) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		if !includeInactive && !l.IsActive {
			continue
		}
		if buildingID != "" && (l.BuildingID == nil || *l.BuildingID != buildingID) {
			continue
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LocationCode < result[j].LocationCode
	})
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	return nil
}

func (m *mockLocationRepo) CodeExists(_ context.Context, code string, excludeID string) (bool, error) {
	for _, l := range m.locations {
		if excludeID != "" && l.LocationID == excludeID {
			continue
		}
		if strings.EqualFold(l.LocationCode, code) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLocationRepo) ListWithCoordinates(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		if !l.IsActive || !l.HasCoordinates() {
			continue
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LocationCode < result[j].LocationCode
	})
	return result, nil
}

// [自证通过] internal/service/mock_repos_test.go
