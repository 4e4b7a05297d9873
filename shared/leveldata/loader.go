package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupPlatforms    = "Platforms"
	GroupCollectibles = "Collectibles"
	GroupPlayerSpawn  = "PlayerSpawn"
)

// LoadTMX parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Objects keep their document order.
func LoadTMX(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := Level{
		Name:         strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Platforms:    []Platform{},
		Collectibles: []CollectibleSpawn{},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms,
					platform(o.X, o.Y, o.Width, o.Height, o.Properties.GetString("color")))
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.Spawn = &SpawnPoint{X: o.X, Y: o.Y}
			level.PlayerWidth = o.Properties.GetFloat("playerWidth")
			level.PlayerHeight = o.Properties.GetFloat("playerHeight")
		}
	}

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// them in file-name order.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, name := range matches {
		level, err := LoadTMX(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		levels = append(levels, level)
	}

	return levels, nil
}
