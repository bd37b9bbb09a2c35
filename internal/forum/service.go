package forum

import (
	"regexp"

	"github.com/IM-Mukesh/community-forum/internal/mailer"
	"github.com/IM-Mukesh/community-forum/internal/repos"
	"go.uber.org/zap"
)

// Revalidator receives the cache-invalidation signal after a successful
// mutation. The websocket hub implements it; tests use a recorder.
type Revalidator interface {
	Revalidate(path string)
}

// NoopRevalidator drops invalidation signals.
type NoopRevalidator struct{}

func (NoopRevalidator) Revalidate(string) {}

// Service is the aggregation and mutation layer over the persistence
// stores. Read methods fail open (log and degrade); mutations enforce
// ownership and surface their failures.
type Service struct {
	store  *repos.Repos
	mailer mailer.Mailer
	rev    Revalidator
	log    *zap.Logger
	appURL string
}

func NewService(store *repos.Repos, m mailer.Mailer, rev Revalidator, log *zap.Logger, appURL string) *Service {
	if rev == nil {
		rev = NoopRevalidator{}
	}
	return &Service{
		store:  store,
		mailer: m,
		rev:    rev,
		log:    log,
		appURL: appURL,
	}
}

// idPattern accepts canonical 8-4-4-4-12 uuids only. Malformed ids are
// rejected before any store query is issued.
var idPattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func validID(id string) bool {
	return idPattern.MatchString(id)
}
