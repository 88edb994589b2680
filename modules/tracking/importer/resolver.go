package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/area"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/organization"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
)

var ErrBlankAreaCode = errors.New("blank area code")

// ResolverConfig carries the creation defaults for dimension records minted
// during a run.
type ResolverConfig struct {
	// PasswordHash is the pre-hashed placeholder credential assigned to
	// auto-created persons. The plaintext behind it is a fixed, guessable
	// configuration value; see ImportOptions.DefaultUserPassword.
	PasswordHash string
	EmailDomain  string
}

// Resolver implements get-or-create over the dimension tables. Lookups are
// check-then-insert: not atomic under concurrent runs, but single-flight
// within one run thanks to the per-run caches. Creations persist immediately
// (inside the run's transaction) so later rows observe them.
type Resolver struct {
	orgs    organization.Repository
	areas   area.Repository
	persons person.Repository
	cfg     ResolverConfig

	areaCache   map[string]area.Area
	personCache map[string]person.Person
}

func NewResolver(
	orgs organization.Repository,
	areas area.Repository,
	persons person.Repository,
	cfg ResolverConfig,
) *Resolver {
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = "siviack.com"
	}
	return &Resolver{
		orgs:        orgs,
		areas:       areas,
		persons:     persons,
		cfg:         cfg,
		areaCache:   make(map[string]area.Area),
		personCache: make(map[string]person.Person),
	}
}

// ResolveOrganization returns the organization with the given name, creating
// it on first encounter.
func (r *Resolver) ResolveOrganization(ctx context.Context, name string, ruc string) (organization.Organization, error) {
	existing, err := r.orgs.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, organization.ErrNotFound) {
		return organization.Organization{}, err
	}
	return r.orgs.Create(ctx, organization.New(name, ruc))
}

// ResolveArea returns the area identified by (organization, code), creating
// it with a derived display name on first encounter. A blank code is the
// caller's signal to skip the row.
func (r *Resolver) ResolveArea(ctx context.Context, org organization.Organization, code string) (area.Area, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return area.Area{}, ErrBlankAreaCode
	}

	key := fmt.Sprintf("%d|%s", org.ID(), code)
	if cached, ok := r.areaCache[key]; ok {
		return cached, nil
	}

	existing, err := r.areas.GetByCode(ctx, org.ID(), code)
	if err == nil {
		r.areaCache[key] = existing
		return existing, nil
	}
	if !errors.Is(err, area.ErrNotFound) {
		return area.Area{}, err
	}

	created, err := r.areas.Create(ctx, area.New(org.ID(), code, ""))
	if err != nil {
		return area.Area{}, err
	}
	r.areaCache[key] = created
	return created, nil
}

// ResolvePerson returns the person with the given display name, substituting
// the unassigned sentinel for blank names. On creation the contact email is
// synthesized from the name's first token plus the row ordinal, which keeps
// it unique within the extract and stable across re-runs.
func (r *Resolver) ResolvePerson(ctx context.Context, fullName string, org organization.Organization, ordinal int) (person.Person, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		fullName = person.UnassignedName
	}

	if cached, ok := r.personCache[fullName]; ok {
		return cached, nil
	}

	existing, err := r.persons.GetByFullName(ctx, fullName)
	if err == nil {
		r.personCache[fullName] = existing
		return existing, nil
	}
	if !errors.Is(err, person.ErrNotFound) {
		return person.Person{}, err
	}

	orgID := org.ID()
	created, err := r.persons.Create(ctx, person.New(
		fullName,
		r.synthesizeEmail(fullName, ordinal),
		r.cfg.PasswordHash,
		person.RoleConsultant,
		&orgID,
	))
	if err != nil {
		return person.Person{}, err
	}
	r.personCache[fullName] = created
	return created, nil
}

func (r *Resolver) synthesizeEmail(fullName string, ordinal int) string {
	first := strings.ToLower(strings.Fields(fullName)[0])
	return fmt.Sprintf("%s_%d@%s", first, ordinal, r.cfg.EmailDomain)
}
