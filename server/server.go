// Package server contains camera API server.
package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems/device"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// ConstructServer has data required for a new API server.
type ConstructServer struct {
	Settings          providers.ISettingsProvider
	Cameras           []device.IDeviceWrapperProvider
	StatusUpdatesChan chan *device.UpdateEvent
}

// CameraServer serves loaded cameras.
type CameraServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	statusUpdatesChan chan *device.UpdateEvent

	cameras map[string]device.IDeviceWrapperProvider
	order   []string
}

// NewServer constructs a new API server.
// Cameras are addressed by their unique IDs.
func NewServer(ctor *ConstructServer) (*CameraServer, error) {
	s := &CameraServer{
		Settings:          ctor.Settings,
		Logger:            ctor.Settings.SystemLogger(),
		statusUpdatesChan: ctor.StatusUpdatesChan,
		cameras:           make(map[string]device.IDeviceWrapperProvider, len(ctor.Cameras)),
		order:             make([]string, 0, len(ctor.Cameras)),
	}

	for _, v := range ctor.Cameras {
		id := v.Camera().UniqueID()
		if _, ok := s.cameras[id]; ok {
			s.Logger.Warn("Duplicate camera ID, skipping", common.LogSystemToken, logSystem,
				common.LogDeviceNameToken, v.GetID(), common.LogDeviceSerialToken, id)
			continue
		}

		s.cameras[id] = v
		s.order = append(s.order, id)
	}

	return s, nil
}

// Start launches API server and blocks until stop signal.
func (s *CameraServer) Start() {
	port := s.Settings.ServerSettings().Port
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), s.handler())
		if err != nil {
			s.Logger.Fatal("Failed to start server", err, common.LogSystemToken, logSystem)
		}
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", port), common.LogSystemToken, logSystem)

	if nil != s.statusUpdatesChan {
		go s.statusCycle()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
	s.Stop()
}

// Stop unloads all cameras and stops scheduler.
func (s *CameraServer) Stop() {
	for _, id := range s.order {
		s.cameras[id].Unload()
	}

	s.Settings.Cron().Stop()
}

// Builds root handler.
func (s *CameraServer) handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)

	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{logger: s.Logger}))(router)
}

// All API registration.
func (s *CameraServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix(routePublic).Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/camera", s.getCameras).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/camera/{%s}/image", urlCameraID), s.getCameraImage).
		Methods(http.MethodGet)
	apiRouter.Use(s.authMiddleware)
	apiRouter.Use(s.logMiddleware)
}

// Consumes device updates.
func (s *CameraServer) statusCycle() {
	for msg := range s.statusUpdatesChan {
		s.Logger.Debug("Received device update", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, msg.ID)
	}
}
