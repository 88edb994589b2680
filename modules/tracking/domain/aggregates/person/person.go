package person

import (
	"strings"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleConsultant Role = "CONSULTOR"
	RoleClient     Role = "CLIENTE"
)

// UnassignedName is the sentinel responsible-party for rows whose source
// cell is blank.
const UnassignedName = "Sin Asignar"

// Person is a system actor that activities may name as responsible party.
// Email is globally unique; organizationID is nil for internal staff.
type Person struct {
	id             int64
	fullName       string
	email          string
	passwordHash   string
	role           Role
	organizationID *int64
}

func New(fullName string, email string, passwordHash string, role Role, organizationID *int64) Person {
	return Person{
		fullName:       normalizeName(fullName),
		email:          strings.ToLower(strings.TrimSpace(email)),
		passwordHash:   passwordHash,
		role:           role,
		organizationID: organizationID,
	}
}

func Hydrate(id int64, fullName string, email string, passwordHash string, role Role, organizationID *int64) Person {
	return Person{
		id:             id,
		fullName:       normalizeName(fullName),
		email:          strings.ToLower(strings.TrimSpace(email)),
		passwordHash:   passwordHash,
		role:           role,
		organizationID: organizationID,
	}
}

func (p Person) ID() int64              { return p.id }
func (p Person) FullName() string       { return p.fullName }
func (p Person) Email() string          { return p.email }
func (p Person) PasswordHash() string   { return p.passwordHash }
func (p Person) Role() Role             { return p.role }
func (p Person) OrganizationID() *int64 { return p.organizationID }
func (p Person) IsZero() bool           { return p.id == 0 && p.email == "" }

func normalizeName(v string) string { return strings.TrimSpace(v) }
