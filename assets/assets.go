package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/lurk/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelDir is the directory of level manifests inside the asset FS.
const LevelDir = "levels"

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader loads levels from the embedded assets.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS loads levels from another file system, such as a level
// directory on disk.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevel loads one level manifest by path.
func (l *LevelLoader) LoadLevel(manifestPath string) (*leveldata.MapData, error) {
	return leveldata.LoadManifest(l.fsys, manifestPath)
}

// MustLoadLevel is LoadLevel for built-in levels, which are known good.
func (l *LevelLoader) MustLoadLevel(manifestPath string) *leveldata.MapData {
	m, err := l.LoadLevel(manifestPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", manifestPath, err))
	}
	return m
}

// MustLoadLevels loads every manifest in the level directory, ordered by
// name.
func (l *LevelLoader) MustLoadLevels() []*leveldata.MapData {
	byName, names, err := leveldata.LoadAll(l.fsys, LevelDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	if len(names) == 0 {
		panic("No level manifests found in assets/levels directory")
	}

	levels := make([]*leveldata.MapData, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels
}
