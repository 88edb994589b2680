package activity

import (
	"strings"

	"github.com/siviack/portal/pkg/constants"
)

// UpdateDTO is a partial update of status, progress, and evidence; nil/empty
// fields leave the stored values untouched.
type UpdateDTO struct {
	Status       string   `json:"estado" validate:"omitempty,oneof=Abierta Cerrada Atrasada Bloqueado"`
	Progress     *float64 `json:"avance" validate:"omitempty,gte=0,lte=100"`
	EvidenceLink *string  `json:"link_evidencia"`
}

func (d *UpdateDTO) Normalize() {
	d.Status = strings.TrimSpace(d.Status)
	if d.EvidenceLink != nil {
		v := strings.TrimSpace(*d.EvidenceLink)
		d.EvidenceLink = &v
	}
}

func (d *UpdateDTO) Validate() error {
	d.Normalize()
	return constants.Validate.Struct(d)
}
