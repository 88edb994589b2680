package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
	"github.com/siviack/portal/modules/tracking/domain/entities/catalog"
	"github.com/siviack/portal/pkg/passwords"
)

// catalogSeeds holds the master-data value lists the portal ships with.
// Seeding is idempotent; re-running leaves existing values untouched.
var catalogSeeds = map[catalog.Kind][]string{
	catalog.KindRequestOrigin: {
		"Reunión Ordinaria", "Reunión Extraordinaria", "Comité Técnico",
		"RQ del Área", "RQ de Gerencia", "RQ del Cliente",
	},
	catalog.KindRequestType: {
		"Observación", "No conformidad", "Recomendación",
		"Acuerdo", "Oportunidad de mejora",
	},
	catalog.KindServiceType: {
		"Asesoría", "Consultoría", "Asistencia", "Inducción",
		"Capacitación", "Entrenamiento", "Comercialización",
	},
	catalog.KindInterventionType: {
		"Asesor/Consultor", "Facilitador", "Instructor", "Coordinador",
		"Proveedor", "Colaborador", "Especialista", "Freelance",
	},
	catalog.KindControlMedium: {
		"Físico", "Digital", "Drive", "Presencial", "Virtual", "Mixto",
	},
	catalog.KindResultDisposition: {
		"Done/Hecho", "Release Ready", "Descarted/Descartado",
		"Blocked/Bloqueado", "Feedback",
	},
}

type SeedService struct {
	persons  person.Repository
	catalogs catalog.Repository
	log      *logrus.Logger
}

func NewSeedService(persons person.Repository, catalogs catalog.Repository, log *logrus.Logger) *SeedService {
	return &SeedService{
		persons:  persons,
		catalogs: catalogs,
		log:      log,
	}
}

// SeedAdmin creates the administrator account if no user holds the given
// email yet. The plaintext password is hashed before it touches storage.
func (s *SeedService) SeedAdmin(ctx context.Context, email, password string) (person.Person, error) {
	existing, err := s.persons.GetByEmail(ctx, email)
	if err == nil {
		s.log.WithField("email", email).Info("admin already present")
		return existing, nil
	}
	if !errors.Is(err, person.ErrNotFound) {
		return person.Person{}, err
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return person.Person{}, err
	}

	created, err := s.persons.Create(ctx, person.New("Administrador", email, hash, person.RoleAdmin, nil))
	if err != nil {
		return person.Person{}, err
	}
	s.log.WithField("email", email).Info("admin created")
	return created, nil
}

// SeedCatalogs ensures every shipped master-data value exists. Returns the
// number of values inserted in this call.
func (s *SeedService) SeedCatalogs(ctx context.Context) (int, error) {
	inserted := 0
	for kind, names := range catalogSeeds {
		existing, err := s.catalogs.ListByKind(ctx, kind)
		if err != nil {
			return inserted, err
		}
		present := make(map[string]struct{}, len(existing))
		for _, v := range existing {
			present[v.Name()] = struct{}{}
		}
		for _, name := range names {
			if _, ok := present[name]; ok {
				continue
			}
			if _, err := s.catalogs.EnsureValue(ctx, catalog.New(kind, name)); err != nil {
				return inserted, err
			}
			inserted++
		}
		s.log.WithFields(logrus.Fields{
			"kind":   kind,
			"values": len(names),
		}).Debug("catalog seeded")
	}
	return inserted, nil
}
