package area

import (
	"fmt"
	"strings"
)

// Area is an organizational unit inside one Organization. (organization, code)
// is the natural key: repeated imports must resolve to the same record.
type Area struct {
	id             int64
	organizationID int64
	code           string
	name           string
}

func New(organizationID int64, code string, name string) Area {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(code)
	}
	return Area{
		organizationID: organizationID,
		code:           code,
		name:           name,
	}
}

func Hydrate(id int64, organizationID int64, code string, name string) Area {
	return Area{
		id:             id,
		organizationID: organizationID,
		code:           strings.TrimSpace(code),
		name:           strings.TrimSpace(name),
	}
}

// DefaultName derives a display name for areas auto-created during import.
func DefaultName(code string) string {
	return fmt.Sprintf("Área %s", strings.TrimSpace(code))
}

func (a Area) ID() int64             { return a.id }
func (a Area) OrganizationID() int64 { return a.organizationID }
func (a Area) Code() string          { return a.code }
func (a Area) Name() string          { return a.name }
func (a Area) IsZero() bool          { return a.id == 0 && a.code == "" }
