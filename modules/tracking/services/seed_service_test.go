package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
	"github.com/siviack/portal/modules/tracking/domain/entities/catalog"
	"github.com/siviack/portal/pkg/passwords"
)

type memPersonRepo struct {
	byID   map[int64]person.Person
	nextID int64
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{byID: map[int64]person.Person{}}
}

func (m *memPersonRepo) GetByFullName(_ context.Context, fullName string) (person.Person, error) {
	for _, p := range m.byID {
		if p.FullName() == fullName {
			return p, nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

func (m *memPersonRepo) GetByEmail(_ context.Context, email string) (person.Person, error) {
	for _, p := range m.byID {
		if p.Email() == email {
			return p, nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

func (m *memPersonRepo) Create(_ context.Context, p person.Person) (person.Person, error) {
	m.nextID++
	created := person.Hydrate(m.nextID, p.FullName(), p.Email(), p.PasswordHash(), p.Role(), p.OrganizationID())
	m.byID[m.nextID] = created
	return created, nil
}

type memCatalogRepo struct {
	values map[catalog.Kind][]catalog.Value
	nextID int64
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{values: map[catalog.Kind][]catalog.Value{}}
}

func (m *memCatalogRepo) EnsureValue(_ context.Context, v catalog.Value) (catalog.Value, error) {
	for _, existing := range m.values[v.Kind()] {
		if existing.Name() == v.Name() {
			return existing, nil
		}
	}
	m.nextID++
	created := catalog.Hydrate(m.nextID, v.Kind(), v.Name())
	m.values[v.Kind()] = append(m.values[v.Kind()], created)
	return created, nil
}

func (m *memCatalogRepo) ListByKind(_ context.Context, kind catalog.Kind) ([]catalog.Value, error) {
	return m.values[kind], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSeedAdmin_CreatesOnce(t *testing.T) {
	persons := newMemPersonRepo()
	svc := NewSeedService(persons, newMemCatalogRepo(), quietLogger())
	ctx := context.Background()

	admin, err := svc.SeedAdmin(ctx, "admin@siviack.com", "Admin123.")
	require.NoError(t, err)
	require.Equal(t, person.RoleAdmin, admin.Role())
	require.NotEqual(t, "Admin123.", admin.PasswordHash())
	require.True(t, passwords.Verify("Admin123.", admin.PasswordHash()))

	again, err := svc.SeedAdmin(ctx, "admin@siviack.com", "otra-clave")
	require.NoError(t, err)
	require.Equal(t, admin.ID(), again.ID())
	require.Len(t, persons.byID, 1)
}

func TestSeedCatalogs_Idempotent(t *testing.T) {
	catalogs := newMemCatalogRepo()
	svc := NewSeedService(newMemPersonRepo(), catalogs, quietLogger())
	ctx := context.Background()

	inserted, err := svc.SeedCatalogs(ctx)
	require.NoError(t, err)
	require.Positive(t, inserted)

	again, err := svc.SeedCatalogs(ctx)
	require.NoError(t, err)
	require.Zero(t, again)

	origins, err := catalogs.ListByKind(ctx, catalog.KindRequestOrigin)
	require.NoError(t, err)
	require.Len(t, origins, 6)

	media, err := catalogs.ListByKind(ctx, catalog.KindControlMedium)
	require.NoError(t, err)
	require.Len(t, media, 6)
}
