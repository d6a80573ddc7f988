package neato

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/helpers"
)

const (
	// Throttle key for robots refresh.
	refreshKey = "robots"
)

// ConstructHub has data required for a new hub.
type ConstructHub struct {
	Account  IAccount
	Store    IMapStore
	Logger   common.ILoggerProvider
	Throttle time.Duration
}

// Hub keeps vendor account state and implements camera session.
type Hub struct {
	sync.Mutex

	account  IAccount
	store    IMapStore
	logger   common.ILoggerProvider
	throttle *cache.Cache
	period   time.Duration

	robots []*Robot
}

// NewHub constructs a new hub.
func NewHub(ctor *ConstructHub) *Hub {
	period := ctor.Throttle
	if period <= 0 {
		period = ScanInterval()
	}

	return &Hub{
		account:  ctor.Account,
		store:    ctor.Store,
		logger:   ctor.Logger,
		throttle: cache.New(period, 0),
		period:   period,
		robots:   make([]*Robot, 0),
	}
}

// UpdateRobots pulls robots and their maps from vendor cloud.
// Calls within a scan interval after a successful refresh are no-op.
func (h *Hub) UpdateRobots() error {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.throttle.Get(refreshKey); ok {
		return nil
	}

	h.logger.Debug("Running hub robots update", common.LogSystemToken, logSystem)

	robots, err := h.account.Robots()
	if err != nil {
		return errors.Wrap(err, "robots fetch failed")
	}

	for _, v := range robots {
		data, err := h.account.Maps(v)
		if err != nil {
			return errors.Wrapf(err, "maps fetch failed for %s", v.Serial)
		}

		h.store.Set(v.Serial, data)
	}

	if len(h.robots) > 0 && !helpers.SliceEqualsString(serials(h.robots), serials(robots)) {
		h.logger.Info("Neato robots list has changed, restart to pick up new cameras",
			common.LogSystemToken, logSystem)
	}

	h.robots = robots
	h.throttle.Set(refreshKey, true, h.period)
	return nil
}

// DownloadMap fetches map image.
func (h *Hub) DownloadMap(url string) ([]byte, error) {
	data, err := h.account.MapImage(url)
	if err != nil {
		return nil, errors.Wrap(err, "map download failed")
	}

	return data, nil
}

// Robots returns robots known after the last refresh.
func (h *Hub) Robots() []*Robot {
	h.Lock()
	defer h.Unlock()

	return h.robots
}

// Returns robot serials.
func serials(robots []*Robot) []string {
	result := make([]string, 0, len(robots))
	for _, v := range robots {
		result = append(result, v.Serial)
	}

	return result
}
