// Command gontendo runs an iNES ROM, presenting its video output in
// an ebiten window and reading keyboard input for controller 1.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"gontendo/bus"
	"gontendo/cartridge"
	"gontendo/joypad"
	"gontendo/mappers"
	"gontendo/ppu"
	"gontendo/trace"
)

var (
	romPath   = flag.String("rom", "", "path to an iNES (.nes) ROM file")
	scale     = flag.Int("scale", 2, "integer window scale factor")
	traceFlag = flag.Bool("trace", false, "log one disassembly line per executed instruction to stderr")
)

// keymap binds controller 1's buttons to keyboard keys.
var keymap = map[ebiten.Key]joypad.Button{
	ebiten.KeyZ:     joypad.A,
	ebiten.KeyX:     joypad.B,
	ebiten.KeySpace: joypad.Select,
	ebiten.KeyEnter: joypad.Start,
	ebiten.KeyUp:    joypad.Up,
	ebiten.KeyDown:  joypad.Down,
	ebiten.KeyLeft:  joypad.Left,
	ebiten.KeyRight: joypad.Right,
}

// game adapts the emulator core to ebiten's Game interface. The CPU
// runs on its own goroutine, driven by Bus.Step; Draw/Update only
// ever touch the latest completed frame buffer under frameMu.
type game struct {
	bus *bus.Bus

	frameMu sync.Mutex
	frame   []uint8
}

func (g *game) OnFrame(frame []uint8) {
	g.frameMu.Lock()
	defer g.frameMu.Unlock()
	if g.frame == nil {
		g.frame = make([]uint8, len(frame))
	}
	copy(g.frame, frame)
}

func (g *game) Update() error {
	for key, btn := range keymap {
		g.bus.Pad1().SetPressed(btn, ebiten.IsKeyPressed(key))
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.frameMu.Lock()
	defer g.frameMu.Unlock()
	if g.frame == nil {
		screen.Fill(color.Black)
		return
	}
	rgba := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	for i := 0; i < ppu.Width*ppu.Height; i++ {
		rgba.Pix[i*4+0] = g.frame[i*3+0]
		rgba.Pix[i*4+1] = g.frame[i*3+1]
		rgba.Pix[i*4+2] = g.frame[i*3+2]
		rgba.Pix[i*4+3] = 0xFF
	}
	screen.WritePixels(rgba.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("usage: gontendo -rom path/to/game.nes")
	}

	data, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading rom: %v", err)
	}
	cart, err := cartridge.Parse(data)
	if err != nil {
		log.Fatalf("parsing rom: %v", err)
	}
	mapper, err := mappers.Get(cart)
	if err != nil {
		log.Fatalf("selecting mapper: %v", err)
	}

	g := &game{}
	g.bus = bus.New(cart, mapper, g)

	go runEmulation(g.bus)

	ebiten.SetWindowSize(ppu.Width * *scale, ppu.Height * *scale)
	ebiten.SetWindowTitle("gontendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// runEmulation drives the CPU/PPU/Bus forever on its own goroutine;
// ebiten's game loop only ever reads the frame buffer the Bus hands
// to game.OnFrame.
func runEmulation(b *bus.Bus) {
	for {
		pc := b.CPU.PC()
		if *traceFlag {
			log.Print(trace.Line(b, trace.State{
				PC: pc, A: b.CPU.A(), X: b.CPU.X(), Y: b.CPU.Y(),
				SP: b.CPU.SP(), P: b.CPU.P(),
			}))
		}
		b.Step()
	}
}
