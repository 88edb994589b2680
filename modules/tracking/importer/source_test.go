package importer

import "testing"

func TestRemapHeader_KnownColumns(t *testing.T) {
	header := []string{
		"Proceso / SP",
		"Description of the Activity\n(BACKLOG)",
		"Responsable del Éxito\nProcess owner",
		"Fecha de Entrega\nEnd Date",
		"Fecha de Compromiso\nDeliver Date",
		"Origin Date",
		"Evidencia del Control ",
		"Status",
		"% Avance",
		"Observaciones",
	}
	want := []string{
		ColAreaCode, ColDescription, ColResponsible, ColDeliveredDate,
		ColCommittedDate, ColOriginDate, ColEvidence, ColStatus,
		ColProgress, ColNotes,
	}
	got := RemapHeader(header)
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRemapHeader_DescriptionFallback(t *testing.T) {
	header := []string{"Proceso / SP", "Actividades backlog 2025", "Status"}
	got := RemapHeader(header)
	if got[1] != ColDescription {
		t.Fatalf("expected marker fallback to claim column 1, got %q", got[1])
	}
}

func TestRemapHeader_UnknownPassesThrough(t *testing.T) {
	header := []string{"Description of the Activity (BACKLOG)", "Columna  Inventada\nRara"}
	got := RemapHeader(header)
	if got[1] != "Columna Inventada Rara" {
		t.Fatalf("expected unknown header normalized, got %q", got[1])
	}
}

func TestRowsFromRecords(t *testing.T) {
	header := []string{"Proceso / SP", "Description of the Activity (BACKLOG)", "Status"}
	records := [][]string{
		{"ACD", "Revisar contrato", "Cerrada"},
		{"GH", "Capacitación"}, // short row: missing cells stay absent
	}
	rows := rowsFromRecords(header, records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Ordinal != 0 || rows[1].Ordinal != 1 {
		t.Fatalf("expected 0-based ordinals, got %d and %d", rows[0].Ordinal, rows[1].Ordinal)
	}
	if rows[0].GetString(ColAreaCode) != "ACD" {
		t.Fatalf("expected area code ACD, got %q", rows[0].GetString(ColAreaCode))
	}
	if rows[1].Get(ColStatus) != nil {
		t.Fatalf("expected absent status cell on short row")
	}
}
