package placeholder

import "image/color"

// Texture sizes, equirectangular 2:1.
const (
	Width1K, Height1K = 1024, 512
	Width2K, Height2K = 2048, 1024
)

// Spec describes one placeholder texture. Path is relative to the texture root.
type Spec struct {
	Path   string
	Name   string
	Color  color.RGBA
	Width  int
	Height int
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

func sized(w, h int, specs []Spec) []Spec {
	for i := range specs {
		specs[i].Width, specs[i].Height = w, h
	}
	return specs
}

// Moons1K lists the 1K moon placeholders.
func Moons1K() []Spec {
	return sized(Width1K, Height1K, []Spec{
		{Path: "celestial/moons/io_1k.jpg", Name: "Io", Color: rgb(180, 150, 100)},
		{Path: "celestial/moons/europa_1k.jpg", Name: "Europa", Color: rgb(200, 190, 180)},
		{Path: "celestial/moons/ganymede_1k.jpg", Name: "Ganymede", Color: rgb(140, 130, 120)},
		{Path: "celestial/moons/callisto_1k.jpg", Name: "Callisto", Color: rgb(100, 95, 90)},
		{Path: "celestial/moons/titan_1k.jpg", Name: "Titan", Color: rgb(180, 140, 100)},
		{Path: "celestial/moons/enceladus_1k.jpg", Name: "Enceladus", Color: rgb(240, 240, 240)},
		{Path: "celestial/moons/rhea_1k.jpg", Name: "Rhea", Color: rgb(200, 195, 190)},
		{Path: "celestial/moons/iapetus_1k.jpg", Name: "Iapetus", Color: rgb(150, 145, 140)},
		{Path: "celestial/moons/dione_1k.jpg", Name: "Dione", Color: rgb(210, 205, 200)},
		{Path: "celestial/moons/tethys_1k.jpg", Name: "Tethys", Color: rgb(220, 215, 210)},
	})
}

// Moons2K lists the 2K moon placeholders.
func Moons2K() []Spec {
	return sized(Width2K, Height2K, []Spec{
		{Path: "celestial/moons/phobos_2k.jpg", Name: "Phobos", Color: rgb(120, 110, 100)},
		{Path: "celestial/moons/deimos_2k.jpg", Name: "Deimos", Color: rgb(140, 130, 120)},
		{Path: "celestial/moons/triton_2k.jpg", Name: "Triton", Color: rgb(210, 200, 190)},
		{Path: "celestial/moons/miranda_2k.jpg", Name: "Miranda", Color: rgb(180, 175, 170)},
		{Path: "celestial/moons/mimas_2k.jpg", Name: "Mimas", Color: rgb(210, 205, 200)},
		{Path: "celestial/moons/phoebe_2k.jpg", Name: "Phoebe", Color: rgb(80, 75, 70)},
	})
}

// Asteroids2K lists the 2K asteroid placeholders.
func Asteroids2K() []Spec {
	return sized(Width2K, Height2K, []Spec{
		{Path: "celestial/asteroids/vesta_2k.jpg", Name: "Vesta", Color: rgb(160, 150, 140)},
	})
}

// DwarfPlanets2K lists the 2K dwarf planet placeholders.
func DwarfPlanets2K() []Spec {
	return sized(Width2K, Height2K, []Spec{
		{Path: "celestial/planets/pluto_2k.jpg", Name: "Pluto", Color: rgb(190, 170, 150)},
	})
}

// Catalog returns every placeholder in generation order.
func Catalog() []Spec {
	var all []Spec
	all = append(all, Moons1K()...)
	all = append(all, Moons2K()...)
	all = append(all, Asteroids2K()...)
	all = append(all, DwarfPlanets2K()...)
	return all
}

// Dirs lists the category directories created before generation.
var Dirs = []string{
	"celestial/moons",
	"celestial/asteroids",
	"celestial/planets",
}
