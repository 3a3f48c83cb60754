package domain

import "time"

// ImportResult resume uma carga de dados.
// Dropped conta as linhas removidas por chave estrangeira inválida;
// Duplicates as linhas substituídas por uma ocorrência posterior.
type ImportResult struct {
	RunID      string     `json:"run_id"`
	Entity     EntityType `json:"entity"`
	Received   int        `json:"received"`
	Duplicates int        `json:"duplicates"`
	Dropped    int        `json:"dropped"`
	Written    int64      `json:"written"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}
