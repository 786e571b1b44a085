package main

import (
	"flag"
	"image"
	"os"
	"path"
	"strings"

	"github.com/automoto/lurk/assets"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/scenes"
	"github.com/automoto/lurk/shared/leveldata"
	"github.com/automoto/lurk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []*leveldata.MapData, start int, reload *scenes.Reloader) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewStealthScene(g, levels, start, reload)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overrides := flag.String("config", "", "YAML file with config overrides, reloaded on change")
	levelDir := flag.String("leveldir", "", "Load levels from this directory instead of the built-in set")
	levelName := flag.String("level", strings.TrimSuffix(path.Base(config.C.Level), ".yaml"), "Name of the level to start on")
	flag.Parse()

	logger.Init()
	log := logger.Log

	var reload *scenes.Reloader
	if *overrides != "" {
		r, err := scenes.NewReloader(*overrides)
		if err != nil {
			log.WithError(err).Fatal("could not load config overrides")
		}
		defer r.Close()
		reload = r
	}

	loader := assets.NewLevelLoader()
	if *levelDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*levelDir))
	}
	levels := loader.MustLoadLevels()

	start := 0
	for i, m := range levels {
		if m.Name == *levelName {
			start = i
		}
	}

	ebiten.SetWindowTitle("lurk")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence for run stats
	if err := systems.InitPersistence("lurk"); err != nil {
		log.WithError(err).Warn("run stats will not be saved")
	}

	if err := ebiten.RunGame(NewGame(levels, start, reload)); err != nil {
		log.Fatal(err)
	}
}
