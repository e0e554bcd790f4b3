package postgres

type rosterRow struct {
	Season int    `db:"season"`
	Team   string `db:"team"`
	League string `db:"league"`
	Roster string `db:"roster"`
}
