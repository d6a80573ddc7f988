package device

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems"
	"go-home.io/x/neato/systems/neato"
)

const (
	// Hub config and provider name.
	neatoProvider = "neato"
)

// ConstructHub has data required for loading neato hub.
// Account is optional and replaces vendor cloud account.
type ConstructHub struct {
	Settings providers.ISettingsProvider
	Account  neato.IAccount

	StatusUpdatesChan chan *UpdateEvent
}

// LoadHub loads vendor account, discovers robots and wraps their cleaning maps.
// Hub is different from other devices, since it operates multiple cameras.
func LoadHub(ctor *ConstructHub) ([]IDeviceWrapperProvider, error) {
	log := ctor.Settings.PluginLogger(systems.SysDevice, neatoProvider)
	cfg := ctor.Settings.NeatoSettings()

	account := ctor.Account
	if nil == account {
		token, err := ctor.Settings.Secrets().Get(cfg.TokenSecret)
		if err != nil {
			noToken := &ErrNoToken{Secret: cfg.TokenSecret}
			log.Error("Failed to load neato hub", noToken)
			return nil, noToken
		}

		account = neato.NewCloudAccount(&neato.ConstructAccount{
			Endpoint: cfg.Endpoint,
			Token:    token,
			Client:   &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		})
	}

	store := neato.NewMapStore()
	hub := neato.NewHub(&neato.ConstructHub{
		Account: account,
		Store:   store,
		Logger:  log,
	})

	if err := hub.UpdateRobots(); err != nil {
		log.Error("Failed to load neato robots", err)
		return nil, errors.Wrap(err, "hub load failed")
	}

	cameras := neato.LoadCameras(&neato.ConstructSetup{
		Robots:   hub.Robots(),
		Session:  hub,
		Store:    store,
		Logger:   log,
		Patterns: cfg.Robots,
	})

	wrappers := make([]IDeviceWrapperProvider, 0, len(cameras))
	for _, v := range cameras {
		w, err := LoadDevice(&ConstructDevice{
			Camera:            v,
			ConfigName:        neatoProvider,
			Provider:          neatoProvider,
			Settings:          ctor.Settings,
			StatusUpdatesChan: ctor.StatusUpdatesChan,
		})
		if err != nil {
			continue
		}

		wrappers = append(wrappers, w)
	}

	return wrappers, nil
}
