package profiles

import (
	"context"
	"strings"
	"testing"

	"github.com/mviorel/learninghub/internal/store"
)

type memProfileRepo struct {
	rows map[string]*store.ProfileRecord
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{rows: make(map[string]*store.ProfileRecord)}
}

func (m *memProfileRepo) Create(_ context.Context, p *store.ProfileRecord) error {
	cp := *p
	m.rows[p.ProfileID] = &cp
	return nil
}

func (m *memProfileRepo) Get(_ context.Context, profileID string) (*store.ProfileRecord, error) {
	p, ok := m.rows[profileID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfileRepo) List(_ context.Context) ([]*store.ProfileRecord, error) {
	out := make([]*store.ProfileRecord, 0, len(m.rows))
	for _, p := range m.rows {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProfileRepo) Rename(_ context.Context, profileID, displayName string) error {
	p, ok := m.rows[profileID]
	if !ok {
		return store.ErrProfileNotFound
	}
	p.DisplayName = displayName
	return nil
}

func (m *memProfileRepo) Delete(_ context.Context, profileID string) error {
	if _, ok := m.rows[profileID]; !ok {
		return store.ErrProfileNotFound
	}
	delete(m.rows, profileID)
	return nil
}

type memStateRepo struct {
	rows map[string][]byte
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string][]byte)}
}

func (m *memStateRepo) Read(_ context.Context, profileID, namespace string) ([]byte, error) {
	return m.rows[profileID+"/"+namespace], nil
}

func (m *memStateRepo) Write(_ context.Context, profileID, namespace string, data []byte) error {
	m.rows[profileID+"/"+namespace] = data
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, profileID, namespace string) error {
	delete(m.rows, profileID+"/"+namespace)
	return nil
}

func (m *memStateRepo) DeleteProfile(_ context.Context, profileID string) error {
	for k := range m.rows {
		if strings.HasPrefix(k, profileID+"/") {
			delete(m.rows, k)
		}
	}
	return nil
}

func newTestService() (*Service, *memProfileRepo, *memStateRepo) {
	profiles := newMemProfileRepo()
	states := newMemStateRepo()
	return NewService(profiles, states), profiles, states
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	rec, err := svc.Create(context.Background(), "  Ana  ", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ProfileID == "" {
		t.Error("no id assigned")
	}
	if rec.DisplayName != "Ana" {
		t.Errorf("display name = %q", rec.DisplayName)
	}
	if rec.Avatar != DefaultAvatar {
		t.Errorf("avatar = %q", rec.Avatar)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("created at is zero")
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Create(context.Background(), "   ", ""); err == nil {
		t.Error("want error for blank display name")
	}
}

func TestRename(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	rec, _ := svc.Create(ctx, "Ana", "")
	if err := svc.Rename(ctx, rec.ProfileID, "Ana Maria"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if repo.rows[rec.ProfileID].DisplayName != "Ana Maria" {
		t.Error("rename not persisted")
	}

	if err := svc.Rename(ctx, "missing", "X"); err == nil {
		t.Error("renaming a missing profile must fail")
	}
}

func TestDeleteCascadesState(t *testing.T) {
	svc, repo, states := newTestService()
	ctx := context.Background()

	rec, _ := svc.Create(ctx, "Ana", "")
	states.Write(ctx, rec.ProfileID, store.NamespaceCheckpoints, []byte(`{}`))
	states.Write(ctx, rec.ProfileID, store.NamespaceQuiz, []byte(`{}`))
	states.Write(ctx, "other", store.NamespaceCheckpoints, []byte(`{}`))

	if err := svc.Delete(ctx, rec.ProfileID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.rows[rec.ProfileID]; ok {
		t.Error("identity row survived deletion")
	}
	for k := range states.rows {
		if strings.HasPrefix(k, rec.ProfileID+"/") {
			t.Errorf("state row %q survived cascade", k)
		}
	}
	if states.rows["other/"+store.NamespaceCheckpoints] == nil {
		t.Error("cascade deleted another profile's state")
	}
}

func TestDeleteGuestRefused(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.Delete(context.Background(), store.GuestProfileID); err == nil {
		t.Error("guest scope must not be deletable")
	}
}

func TestActiveProfileLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Nothing set: guest.
	id, err := svc.ActiveProfileID(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if id != store.GuestProfileID {
		t.Errorf("active = %q, want guest", id)
	}

	rec, _ := svc.Create(ctx, "Ana", "")
	if err := svc.SetActive(ctx, rec.ProfileID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	id, _ = svc.ActiveProfileID(ctx)
	if id != rec.ProfileID {
		t.Errorf("active = %q, want %q", id, rec.ProfileID)
	}

	// Deleting the active profile falls back to guest.
	if err := svc.Delete(ctx, rec.ProfileID); err != nil {
		t.Fatal(err)
	}
	id, _ = svc.ActiveProfileID(ctx)
	if id != store.GuestProfileID {
		t.Errorf("active after delete = %q, want guest", id)
	}
}

func TestSetActiveUnknownProfile(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.SetActive(context.Background(), "missing"); err == nil {
		t.Error("activating an unknown profile must fail")
	}
}

func TestActiveProfileCorruptSelectionFallsBack(t *testing.T) {
	svc, _, states := newTestService()
	ctx := context.Background()

	states.Write(ctx, store.GuestProfileID, store.NamespaceMeta, []byte("{corrupt"))

	id, err := svc.ActiveProfileID(ctx)
	if err != nil {
		t.Fatalf("corrupt selection must recover, got %v", err)
	}
	if id != store.GuestProfileID {
		t.Errorf("active = %q, want guest", id)
	}
}
