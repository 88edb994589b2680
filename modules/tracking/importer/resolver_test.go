package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
)

func newTestResolver() (*Resolver, *fakeOrgRepo, *fakeAreaRepo, *fakePersonRepo) {
	orgs := newFakeOrgRepo()
	areas := newFakeAreaRepo()
	persons := newFakePersonRepo()
	r := NewResolver(orgs, areas, persons, ResolverConfig{PasswordHash: "$2a$fakehash"})
	return r, orgs, areas, persons
}

func TestResolveOrganization_GetOrCreate(t *testing.T) {
	r, orgs, _, _ := newTestResolver()
	ctx := context.Background()

	first, err := r.ResolveOrganization(ctx, "SIVIACK Cliente", "20600000001")
	require.NoError(t, err)
	require.NotZero(t, first.ID())
	require.Equal(t, "20600000001", first.RUC())

	second, err := r.ResolveOrganization(ctx, "SIVIACK Cliente", "ignored-on-repeat")
	require.NoError(t, err)
	require.Equal(t, first.ID(), second.ID())
	require.Equal(t, 1, orgs.creates)
}

func TestResolveArea_BlankCode(t *testing.T) {
	r, _, _, _ := newTestResolver()
	ctx := context.Background()
	org, err := r.ResolveOrganization(ctx, "Cliente", "123")
	require.NoError(t, err)

	_, err = r.ResolveArea(ctx, org, "   ")
	require.ErrorIs(t, err, ErrBlankAreaCode)
}

func TestResolveArea_CreatesWithDerivedName(t *testing.T) {
	r, _, areas, _ := newTestResolver()
	ctx := context.Background()
	org, err := r.ResolveOrganization(ctx, "Cliente", "123")
	require.NoError(t, err)

	a, err := r.ResolveArea(ctx, org, "ACD")
	require.NoError(t, err)
	require.Equal(t, "ACD", a.Code())
	require.Equal(t, "Área ACD", a.Name())
	require.Equal(t, org.ID(), a.OrganizationID())

	again, err := r.ResolveArea(ctx, org, "ACD")
	require.NoError(t, err)
	require.Equal(t, a.ID(), again.ID())
	require.Equal(t, 1, areas.creates)
}

func TestResolvePerson_SynthesizesIdentity(t *testing.T) {
	r, _, _, persons := newTestResolver()
	ctx := context.Background()
	org, err := r.ResolveOrganization(ctx, "Cliente", "123")
	require.NoError(t, err)

	p, err := r.ResolvePerson(ctx, "Juan Pérez", org, 3)
	require.NoError(t, err)
	require.Equal(t, "Juan Pérez", p.FullName())
	require.Equal(t, "juan_3@siviack.com", p.Email())
	require.Equal(t, person.RoleConsultant, p.Role())
	require.Equal(t, "$2a$fakehash", p.PasswordHash())
	require.NotNil(t, p.OrganizationID())
	require.Equal(t, org.ID(), *p.OrganizationID())

	// same name later in the run reuses the record regardless of ordinal
	again, err := r.ResolvePerson(ctx, "Juan Pérez", org, 9)
	require.NoError(t, err)
	require.Equal(t, p.ID(), again.ID())
	require.Equal(t, 1, persons.creates)
}

func TestResolvePerson_BlankNameUsesSentinel(t *testing.T) {
	r, _, _, _ := newTestResolver()
	ctx := context.Background()
	org, err := r.ResolveOrganization(ctx, "Cliente", "123")
	require.NoError(t, err)

	p, err := r.ResolvePerson(ctx, "  ", org, 0)
	require.NoError(t, err)
	require.Equal(t, person.UnassignedName, p.FullName())
	require.Equal(t, "sin_0@siviack.com", p.Email())

	// every unassigned row shares the one sentinel record
	again, err := r.ResolvePerson(ctx, "", org, 7)
	require.NoError(t, err)
	require.Equal(t, p.ID(), again.ID())
}
