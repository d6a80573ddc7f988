package neato

import (
	"strings"

	"github.com/gobwas/glob"
	"go-home.io/x/neato/plugins/common"
)

// ConstructSetup has data required for loading cleaning map cameras.
type ConstructSetup struct {
	Robots   []*Robot
	Session  ISession
	Store    IMapStore
	Logger   common.ILoggerProvider
	Patterns []string
}

// LoadCameras creates cleaning map cameras for every robot
// which reports maps and matches configured patterns.
func LoadCameras(ctor *ConstructSetup) []*CleaningMap {
	cameras := make([]*CleaningMap, 0)
	matchers := compilePatterns(ctor.Patterns, ctor.Logger)

	for _, robot := range ctor.Robots {
		if !robot.HasTrait(TraitMaps) || !isSelected(robot, matchers) {
			continue
		}

		cameras = append(cameras, NewCleaningMap(&ConstructCleaningMap{
			Robot:   robot,
			Session: ctor.Session,
			Store:   ctor.Store,
			Logger:  ctor.Logger,
		}))
	}

	if 0 == len(cameras) {
		return cameras
	}

	names := make([]string, len(cameras))
	for ii, v := range cameras {
		names[ii] = v.GetName()
	}

	ctor.Logger.Debug("Adding robots for cleaning maps", common.LogSystemToken, logSystem,
		common.LogDeviceNameToken, strings.Join(names, ", "))
	return cameras
}

// Compiles robot selectors, empty list selects everything.
func compilePatterns(patterns []string, logger common.ILoggerProvider) []glob.Glob {
	if 0 == len(patterns) {
		patterns = []string{"*"}
	}

	matchers := make([]glob.Glob, 0, len(patterns))
	for _, v := range patterns {
		g, err := glob.Compile(strings.ToLower(v))
		if err != nil {
			logger.Warn("Failed to compile robot selector, skipping",
				common.LogSystemToken, logSystem, common.LogFieldToken, v)
			continue
		}

		matchers = append(matchers, g)
	}

	return matchers
}

// Checks whether robot serial or name matches any selector.
func isSelected(robot *Robot, matchers []glob.Glob) bool {
	for _, v := range matchers {
		if v.Match(strings.ToLower(robot.Serial)) || v.Match(strings.ToLower(robot.Name)) {
			return true
		}
	}

	return false
}
