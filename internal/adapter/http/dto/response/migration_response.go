package response

import "planpaineis_propostas/internal/usecase"

type MigrationResponse struct {
	State    string         `json:"state"`
	Inserted map[string]int `json:"inserted"`
	Skipped  map[string]int `json:"skipped"`
}

func FromMigrationReport(r usecase.MigrationReport) MigrationResponse {
	out := MigrationResponse{State: r.State.String(), Inserted: r.Inserted, Skipped: r.Skipped}
	if out.Inserted == nil {
		out.Inserted = map[string]int{}
	}
	if out.Skipped == nil {
		out.Skipped = map[string]int{}
	}
	return out
}
