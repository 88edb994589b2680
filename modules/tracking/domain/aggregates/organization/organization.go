package organization

import (
	"strings"
	"time"
)

// Organization is a client company; the identity anchor every activity and
// area belongs to.
type Organization struct {
	id        int64
	name      string
	ruc       string
	active    bool
	createdAt time.Time
}

func New(name string, ruc string) Organization {
	return Organization{
		name:   strings.TrimSpace(name),
		ruc:    strings.TrimSpace(ruc),
		active: true,
	}
}

func Hydrate(id int64, name string, ruc string, active bool, createdAt time.Time) Organization {
	return Organization{
		id:        id,
		name:      strings.TrimSpace(name),
		ruc:       strings.TrimSpace(ruc),
		active:    active,
		createdAt: createdAt,
	}
}

func (o Organization) ID() int64            { return o.id }
func (o Organization) Name() string         { return o.name }
func (o Organization) RUC() string          { return o.ruc }
func (o Organization) Active() bool         { return o.active }
func (o Organization) CreatedAt() time.Time { return o.createdAt }
func (o Organization) IsZero() bool         { return o.id == 0 && o.name == "" }
