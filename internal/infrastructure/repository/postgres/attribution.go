package postgres

import qb "github.com/riskibarqy/soccer-stats/internal/platform/querybuilder"

// Player-to-team attribution. For every (player, season) each side of every
// game the player appeared in is counted; the team seen most often is the
// player's team for that season, lowest team_id first on ties. The winning
// count equals the number of games the player played.
//
// withAttribution prepends the common tables scoped_appearances,
// player_sides, team_counts and player_team. scope filters the appearances
// that take part (players p and games g are joined).

const playerSidesSQL = "SELECT player_id, season, league_id, home_team_id AS team_id FROM scoped_appearances " +
	"UNION ALL SELECT player_id, season, league_id, away_team_id AS team_id FROM scoped_appearances"

func withAttribution(b *qb.SelectBuilder, scope ...qb.Condition) *qb.SelectBuilder {
	scoped := qb.Select(
		"a.player_id",
		"a.game_id",
		"a.goals",
		"a.own_goals",
		"a.shots",
		"a.assists",
		"a.key_passes",
		"a.yellow_card",
		"a.red_card",
		"a.time",
		"g.season",
		"g.league_id",
		"g.home_team_id",
		"g.away_team_id",
	).From("appearances a JOIN games g ON g.game_id = a.game_id JOIN players p ON p.player_id = a.player_id").
		Where(scope...)

	teamCounts := qb.Select(
		"player_id",
		"season",
		"team_id",
		"MIN(league_id) AS league_id",
		"COUNT(*) AS games_played",
		"ROW_NUMBER() OVER (PARTITION BY player_id, season ORDER BY COUNT(*) DESC, team_id ASC) AS team_rank",
	).From("player_sides").
		GroupBy("player_id", "season", "team_id")

	playerTeam := qb.Select("player_id", "season", "team_id", "league_id", "games_played").
		From("team_counts").
		Where(qb.Expr("team_rank = 1"))

	return b.
		With("scoped_appearances", scoped).
		With("player_sides", qb.Expr(playerSidesSQL)).
		With("team_counts", teamCounts).
		With("player_team", playerTeam)
}
