package importer

import (
	"context"
	"time"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/area"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/organization"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
)

// In-memory repositories backing resolver and importer tests. IDs are
// assigned sequentially on create, like the database would.

type fakeOrgRepo struct {
	byID    map[int64]organization.Organization
	nextID  int64
	creates int
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{byID: map[int64]organization.Organization{}}
}

func (f *fakeOrgRepo) GetByID(_ context.Context, id int64) (organization.Organization, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return organization.Organization{}, organization.ErrNotFound
}

func (f *fakeOrgRepo) GetByName(_ context.Context, name string) (organization.Organization, error) {
	for _, o := range f.byID {
		if o.Name() == name {
			return o, nil
		}
	}
	return organization.Organization{}, organization.ErrNotFound
}

func (f *fakeOrgRepo) Create(_ context.Context, o organization.Organization) (organization.Organization, error) {
	f.nextID++
	f.creates++
	created := organization.Hydrate(f.nextID, o.Name(), o.RUC(), o.Active(), time.Now())
	f.byID[f.nextID] = created
	return created, nil
}

func (f *fakeOrgRepo) List(_ context.Context) ([]organization.Organization, error) {
	out := make([]organization.Organization, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

type fakeAreaRepo struct {
	byID      map[int64]area.Area
	nextID    int64
	creates   int
	createErr error
}

func newFakeAreaRepo() *fakeAreaRepo {
	return &fakeAreaRepo{byID: map[int64]area.Area{}}
}

func (f *fakeAreaRepo) GetByCode(_ context.Context, organizationID int64, code string) (area.Area, error) {
	for _, a := range f.byID {
		if a.OrganizationID() == organizationID && a.Code() == code {
			return a, nil
		}
	}
	return area.Area{}, area.ErrNotFound
}

func (f *fakeAreaRepo) ListByOrganization(_ context.Context, organizationID int64) ([]area.Area, error) {
	var out []area.Area
	for _, a := range f.byID {
		if a.OrganizationID() == organizationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAreaRepo) Create(_ context.Context, a area.Area) (area.Area, error) {
	if f.createErr != nil {
		return area.Area{}, f.createErr
	}
	f.nextID++
	f.creates++
	created := area.Hydrate(f.nextID, a.OrganizationID(), a.Code(), a.Name())
	f.byID[f.nextID] = created
	return created, nil
}

type fakePersonRepo struct {
	byID      map[int64]person.Person
	nextID    int64
	creates   int
	createErr error
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{byID: map[int64]person.Person{}}
}

func (f *fakePersonRepo) GetByFullName(_ context.Context, fullName string) (person.Person, error) {
	for _, p := range f.byID {
		if p.FullName() == fullName {
			return p, nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

func (f *fakePersonRepo) GetByEmail(_ context.Context, email string) (person.Person, error) {
	for _, p := range f.byID {
		if p.Email() == email {
			return p, nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

func (f *fakePersonRepo) Create(_ context.Context, p person.Person) (person.Person, error) {
	if f.createErr != nil {
		return person.Person{}, f.createErr
	}
	f.nextID++
	f.creates++
	created := person.Hydrate(f.nextID, p.FullName(), p.Email(), p.PasswordHash(), p.Role(), p.OrganizationID())
	f.byID[f.nextID] = created
	return created, nil
}

type fakeActivityRepo struct {
	byID      map[int64]activity.Activity
	nextID    int64
	createErr error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{byID: map[int64]activity.Activity{}}
}

func (f *fakeActivityRepo) GetByID(_ context.Context, id int64) (activity.Activity, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return activity.Activity{}, activity.ErrNotFound
}

func (f *fakeActivityRepo) List(_ context.Context, params *activity.FindParams) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, a := range f.byID {
		if params != nil && params.OrganizationID != 0 && a.OrganizationID() != params.OrganizationID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActivityRepo) Create(_ context.Context, a activity.Activity) (activity.Activity, error) {
	if f.createErr != nil {
		return activity.Activity{}, f.createErr
	}
	f.nextID++
	created := activity.Hydrate(
		f.nextID, a.OrganizationID(), a.AreaID(), a.ResponsibleID(), a.Description(),
		a.OriginDate(), a.CommittedDate(), a.DeliveredDate(),
		a.Progress(), a.Status(), a.EvidenceLink(), a.Notes(), time.Now(),
	)
	f.byID[f.nextID] = created
	return created, nil
}

func (f *fakeActivityRepo) Update(_ context.Context, a activity.Activity) (activity.Activity, error) {
	if _, ok := f.byID[a.ID()]; !ok {
		return activity.Activity{}, activity.ErrNotFound
	}
	f.byID[a.ID()] = a
	return a, nil
}

// fakeSource serves rows straight from memory.
type fakeSource struct {
	rows []Row
	err  error
}

func (f *fakeSource) Rows(_ context.Context) ([]Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// recordingSink captures the summaries a run emits.
type recordingSink struct {
	summaries []Summary
}

func (s *recordingSink) RunCompleted(_ context.Context, summary Summary) {
	s.summaries = append(s.summaries, summary)
}

// passthroughTx runs the callback without a database, standing in for the
// transactional envelope.
func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
