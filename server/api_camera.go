package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
)

// Camera data returned by the API.
type knownCamera struct {
	ID         string             `json:"id"`
	DeviceID   string             `json:"device_id"`
	Name       string             `json:"name"`
	DeviceInfo *device.DeviceInfo `json:"device_info"`
	PictureURL string             `json:"picture_url,omitempty"`
	LastSeen   int64              `json:"last_seen"`
}

// Returns all known cameras.
func (s *CameraServer) getCameras(writer http.ResponseWriter, _ *http.Request) {
	response := make([]*knownCamera, 0, len(s.order))
	for _, id := range s.order {
		w := s.cameras[id]
		msg := w.GetUpdateMessage()
		c := &knownCamera{
			ID:         id,
			DeviceID:   msg.DeviceID,
			Name:       msg.Name,
			DeviceInfo: w.Camera().DeviceInfo(),
			LastSeen:   msg.LastSeen,
		}

		if url, ok := msg.State[enums.PropPictureURL.String()].(string); ok {
			c.PictureURL = url
		}

		response = append(response, c)
	}

	respond(writer, response)
}

// Returns the latest camera image.
func (s *CameraServer) getCameraImage(writer http.ResponseWriter, request *http.Request) {
	id := mux.Vars(request)[string(urlCameraID)]
	w, ok := s.cameras[id]
	if !ok {
		err := &ErrUnknownCamera{ID: id}
		s.Logger.Warn(err.Error(), common.LogSystemToken, logSystem,
			common.LogUserNameToken, getContextUser(request))
		respondError(writer, http.StatusNotFound, err.Error())
		return
	}

	image := w.Camera().CameraImage()
	if 0 == len(image) {
		s.Logger.Debug((&ErrNoImage{ID: id}).Error(), common.LogSystemToken, logSystem)
		writer.WriteHeader(http.StatusNoContent)
		return
	}

	respondBinary(writer, image)
}
