package importer

import (
	"context"
	"strings"
)

// Canonical column names rows carry after header remapping.
const (
	ColAreaCode      = "codigo_area"
	ColDescription   = "descripcion"
	ColResponsible   = "responsable"
	ColDeliveredDate = "fecha_entrega"
	ColCommittedDate = "fecha_compromiso"
	ColOriginDate    = "fecha_origen"
	ColEvidence      = "evidencia"
	ColStatus        = "estado"
	ColProgress      = "avance"
	ColNotes         = "observaciones"
)

// Row is one data row of the extract: its position among the data rows
// (0-based, before any filtering) and cell values keyed by canonical column
// name. The ordinal feeds synthesized contact identifiers, so it must be
// stable across repeated runs over the same file.
type Row struct {
	Ordinal int
	Values  map[string]any
}

func (r Row) Get(col string) any {
	return r.Values[col]
}

func (r Row) GetString(col string) string {
	return strings.TrimSpace(cellString(r.Values[col]))
}

// TabularSource supplies the extract's data rows with headers already
// remapped and leading junk rows already skipped.
type TabularSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// headerRenames translates the extract's human-authored headers into
// canonical names. Keys are matched after whitespace normalization, which
// absorbs the embedded newlines and trailing spaces the real file carries
// (e.g. "Evidencia del Control ").
var headerRenames = map[string]string{
	"Proceso / SP":                          ColAreaCode,
	"Description of the Activity (BACKLOG)": ColDescription,
	"Responsable del Éxito Process owner":   ColResponsible,
	"Fecha de Entrega End Date":             ColDeliveredDate,
	"Fecha de Compromiso Deliver Date":      ColCommittedDate,
	"Origin Date":                           ColOriginDate,
	"Evidencia del Control":                 ColEvidence,
	"Status":                                ColStatus,
	"% Avance":                              ColProgress,
	"Observaciones":                         ColNotes,
}

// descriptionMarker locates the description column when the exact header
// rename misses (the extract's headers drift between exports).
const descriptionMarker = "BACKLOG"

// RemapHeader resolves each header cell to its canonical column name.
// Unrecognized headers pass through trimmed so their cells stay reachable.
// If no cell mapped to the description column, a substring search for the
// marker token claims the first matching header. Fragile on purpose: this is
// the single place to fix when the client renames columns again.
func RemapHeader(header []string) []string {
	out := make([]string, len(header))
	haveDescription := false
	for i, h := range header {
		key := normalizeHeaderCell(h)
		if canonical, ok := headerRenames[key]; ok {
			out[i] = canonical
		} else {
			out[i] = key
		}
		if out[i] == ColDescription {
			haveDescription = true
		}
	}
	if !haveDescription {
		for i, h := range header {
			if strings.Contains(strings.ToUpper(h), descriptionMarker) {
				out[i] = ColDescription
				break
			}
		}
	}
	return out
}

// normalizeHeaderCell collapses the newlines and stray spaces the extract's
// multi-line headers carry.
func normalizeHeaderCell(h string) string {
	return strings.Join(strings.Fields(h), " ")
}

func rowsFromRecords(header []string, records [][]string) []Row {
	columns := RemapHeader(header)
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		values := make(map[string]any, len(columns))
		for j, col := range columns {
			if col == "" {
				continue
			}
			if j < len(rec) {
				values[col] = rec[j]
			}
		}
		rows = append(rows, Row{Ordinal: i, Values: values})
	}
	return rows
}
