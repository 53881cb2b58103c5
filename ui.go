package main

import (
	"fmt"
	"strings"

	"github.com/cowsed/Random/CubeWave/internal/driver"
	"github.com/cowsed/Random/CubeWave/internal/gfx"
)

// UIItem is one line of the stats overlay.
type UIItem interface {
	String() string
}

type IntItem struct {
	Name  string
	Value int
}

func (i IntItem) String() string { return fmt.Sprintf("%s: %d", i.Name, i.Value) }

type FloatItem struct {
	Name  string
	Value float64
}

func (f FloatItem) String() string { return fmt.Sprintf("%s: %.3f", f.Name, f.Value) }

func uiItems(s driver.Stats) []UIItem {
	return []UIItem{
		IntItem{"Frames", s.Frames},
		FloatItem{"Time", s.Time},
		FloatItem{"Angle", s.Angle},
		IntItem{"Cubes", s.Visible},
	}
}

// RenderUI formats the overlay text.
func RenderUI(s driver.Stats, cam gfx.Camera) string {
	var b strings.Builder
	for _, item := range uiItems(s) {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	cam.Angle = s.Angle
	b.WriteString(cam.String())
	return b.String()
}
