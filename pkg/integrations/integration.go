package integrations

import (
	"go.uber.org/zap"

	tripmenuweb "github.com/gastromap/gastromap-backend/pkg/integrations/tripmenu-web"
	"github.com/gastromap/gastromap-backend/pkg/importer"
)

// Integration is a directly scrapeable source of raw places. Actor-based
// sources (Google, Yandex, 2GIS) go through the apify client and the sync
// flow instead.
type Integration interface {
	FindRestaurants(city string) ([]importer.RawPlace, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == tripmenuweb.IntegrationName {
		return tripmenuweb.NewTripMenuWebIntegration(logger)
	}

	return nil
}
