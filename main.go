package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"letterbound/save"
)

func main() {
	levelFlag := flag.String("level", "", "level to start on (default: last saved)")
	saveFlag := flag.String("save", "", "save file path (default: user config dir)")
	debugFlag := flag.Bool("debug", false, "overlay enemy behavior states")
	flag.Parse()

	savePath := *saveFlag
	if savePath == "" {
		p, err := save.DefaultPath()
		if err != nil {
			log.Printf("main: no config dir, saving disabled: %v", err)
		} else {
			savePath = p
		}
	}

	game, err := NewGame(*levelFlag, savePath, *debugFlag)
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Letterbound")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("main: %v", err)
	}
}
