package activity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLen is the storage contract for descriptions; longer text is
// truncated, not rejected.
const MaxDescriptionLen = 500

// Activity is the fact record: one unit of tracked work owed to a client
// organization, carried from origin to closure.
type Activity struct {
	id             int64
	organizationID int64
	areaID         int64
	responsibleID  *int64

	description   string
	originDate    *time.Time
	committedDate *time.Time
	deliveredDate *time.Time
	progress      decimal.Decimal
	status        Status
	evidenceLink  string
	notes         string

	createdAt time.Time
}

func New(
	organizationID int64,
	areaID int64,
	responsibleID *int64,
	description string,
	originDate *time.Time,
	committedDate *time.Time,
	deliveredDate *time.Time,
	progress decimal.Decimal,
	status Status,
	evidenceLink string,
	notes string,
) Activity {
	return Activity{
		organizationID: organizationID,
		areaID:         areaID,
		responsibleID:  responsibleID,
		description:    Truncate(description),
		originDate:     originDate,
		committedDate:  committedDate,
		deliveredDate:  deliveredDate,
		progress:       progress,
		status:         status,
		evidenceLink:   evidenceLink,
		notes:          notes,
	}
}

func Hydrate(
	id int64,
	organizationID int64,
	areaID int64,
	responsibleID *int64,
	description string,
	originDate *time.Time,
	committedDate *time.Time,
	deliveredDate *time.Time,
	progress decimal.Decimal,
	status Status,
	evidenceLink string,
	notes string,
	createdAt time.Time,
) Activity {
	return Activity{
		id:             id,
		organizationID: organizationID,
		areaID:         areaID,
		responsibleID:  responsibleID,
		description:    description,
		originDate:     originDate,
		committedDate:  committedDate,
		deliveredDate:  deliveredDate,
		progress:       progress,
		status:         status,
		evidenceLink:   evidenceLink,
		notes:          notes,
		createdAt:      createdAt,
	}
}

// Truncate enforces the description storage limit. Lossy and silent.
func Truncate(description string) string {
	description = strings.TrimSpace(description)
	r := []rune(description)
	if len(r) > MaxDescriptionLen {
		return string(r[:MaxDescriptionLen])
	}
	return description
}

func (a Activity) ID() int64                 { return a.id }
func (a Activity) OrganizationID() int64     { return a.organizationID }
func (a Activity) AreaID() int64             { return a.areaID }
func (a Activity) ResponsibleID() *int64     { return a.responsibleID }
func (a Activity) Description() string       { return a.description }
func (a Activity) OriginDate() *time.Time    { return a.originDate }
func (a Activity) CommittedDate() *time.Time { return a.committedDate }
func (a Activity) DeliveredDate() *time.Time { return a.deliveredDate }
func (a Activity) Progress() decimal.Decimal { return a.progress }
func (a Activity) Status() Status            { return a.status }
func (a Activity) EvidenceLink() string      { return a.evidenceLink }
func (a Activity) Notes() string             { return a.notes }
func (a Activity) CreatedAt() time.Time      { return a.createdAt }
func (a Activity) IsZero() bool              { return a.id == 0 && a.description == "" }

func (a Activity) WithStatus(status Status) Activity {
	a.status = status
	return a
}

func (a Activity) WithProgress(progress decimal.Decimal) Activity {
	a.progress = progress
	return a
}

func (a Activity) WithEvidenceLink(link string) Activity {
	a.evidenceLink = link
	return a
}
