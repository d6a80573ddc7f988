package neato

// ISession defines authenticated vendor session used by cameras.
// UpdateRobots refreshes robots state and populates map store.
type ISession interface {
	UpdateRobots() error
	DownloadMap(url string) ([]byte, error)
}
