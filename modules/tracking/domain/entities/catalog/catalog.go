package catalog

import (
	"context"
	"strings"
)

// Kind names one of the master-data value lists the portal offers in its
// activity forms.
type Kind string

const (
	KindRequestOrigin     Kind = "origen_requerimiento"
	KindRequestType       Kind = "tipo_requerimiento"
	KindServiceType       Kind = "tipo_servicio"
	KindInterventionType  Kind = "tipo_intervencion"
	KindControlMedium     Kind = "medio_control"
	KindResultDisposition Kind = "control_resultados"
)

type Value struct {
	id   int64
	kind Kind
	name string
}

func New(kind Kind, name string) Value {
	return Value{kind: kind, name: strings.TrimSpace(name)}
}

func Hydrate(id int64, kind Kind, name string) Value {
	return Value{id: id, kind: kind, name: strings.TrimSpace(name)}
}

func (v Value) ID() int64    { return v.id }
func (v Value) Kind() Kind   { return v.kind }
func (v Value) Name() string { return v.name }

type Repository interface {
	// EnsureValue creates the value if (kind, name) is absent; existing
	// values are returned unchanged so seeding stays idempotent.
	EnsureValue(ctx context.Context, v Value) (Value, error)
	ListByKind(ctx context.Context, kind Kind) ([]Value, error)
}
