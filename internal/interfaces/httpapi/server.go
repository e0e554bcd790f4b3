package httpapi

import (
	"net/http"

	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
)

// NewRouter wires every route. metricsHandler may be nil, in which case
// /metrics is not served.
func NewRouter(
	handler *Handler,
	metricsHandler http.Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metricsHandler)
	registerPlayerRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerRosterRoutes(mux, handler)
	registerTeamSeasonRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}
