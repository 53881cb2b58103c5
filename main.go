package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/cowsed/Random/CubeWave/internal/driver"
	"github.com/cowsed/Random/CubeWave/internal/gfx"
	"github.com/cowsed/Random/CubeWave/internal/gfx/opengl"
)

func init() {
	// SDL and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

var (
	opts = newOptions()

	openWindow           = opengl.Open
	stdout     io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:           "cubewave",
	Short:         "Animated grid of translucent cubes riding a sine wave",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.validate(); err != nil {
			return err
		}
		os.Exit(run(opts))
		return nil
	},
}

func init() {
	opts.bind(rootCmd.PersistentFlags())
	rootCmd.Flags().IntVar(&opts.fps, "fps", 60, "target frames per second")
	rootCmd.Flags().BoolVar(&opts.timeBasedRotation, "time-based-rotation", false, "scale rotation by elapsed time instead of per frame")
	rootCmd.Flags().StringVar(&opts.font, "font", "", "TTF font for the stats overlay (none: overlay off)")
	rootCmd.Flags().StringVar(&opts.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	rootCmd.Flags().StringVar(&opts.memProfile, "memprofile", "", "write a heap profile to this file on exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(o *options) int {
	stop := StartCPUProfile(o.cpuProfile)
	defer stop()
	defer ProfileMemory(o.memProfile)

	win, err := openWindow()
	if err != nil {
		fmt.Fprintln(stdout, err)
		return -1
	}
	defer win.Close()

	cam := gfx.DefaultCamera(opengl.Width, opengl.Height)
	win.Setup(cam)

	var hud *opengl.HUD
	if o.font != "" {
		if hud, err = opengl.OpenHUD(o.font); err != nil {
			log.Printf("overlay disabled: %v", err)
			hud = nil
		} else {
			defer hud.Close()
		}
	}

	d := driver.New(o.config())
	log.Printf("lattice %dx%dx%d, %d cubes", o.nx, o.ny, o.nz, d.Lattice().Len())

	if o.fps <= 0 {
		o.fps = 60
	}
	frameDelay := uint32(1000 / o.fps)
	pipe := opengl.Pipeline{}
	last := time.Now()
	for d.Running() {
		if win.Poll() {
			println("Quit")
			d.Quit()
		}

		d.Frame(pipe, cam)
		if hud != nil {
			if err := hud.SetText(RenderUI(d.Stats(), cam)); err != nil {
				log.Printf("overlay: %v", err)
			}
			hud.Draw()
		}

		now := time.Now()
		d.Advance(now.Sub(last))
		last = now

		win.Swap()
		sdl.Delay(frameDelay)
	}
	log.Printf("stopped after %d frames", d.Stats().Frames)
	return 0
}
