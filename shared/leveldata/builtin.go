package leveldata

const (
	groundColor   = "#2ecc71"
	platformColor = "#27ae60"
)

// Builtin returns the stock level set laid out for a canvas of the given
// size. Every call returns fresh slices.
func Builtin(canvasWidth, canvasHeight float64) []Level {
	h := canvasHeight

	return []Level{
		{
			Name: "meadow",
			Platforms: []Platform{
				platform(0, h-20, canvasWidth, 20, groundColor),
				platform(150, h-100, 150, 20, platformColor),
				platform(400, h-180, 120, 20, platformColor),
				platform(600, h-280, 100, 20, platformColor),
			},
			Collectibles: []CollectibleSpawn{
				{X: 215, Y: h - 140},
				{X: 450, Y: h - 220},
				{X: 610, Y: h - 310},
			},
		},
		{
			Name: "stepping-stones",
			Platforms: []Platform{
				platform(0, h-20, 150, 20, groundColor),
				platform(250, h-80, 100, 20, platformColor),
				platform(450, h-160, 100, 20, platformColor),
				platform(650, h-240, 150, 20, groundColor),
			},
			Collectibles: []CollectibleSpawn{
				{X: 290, Y: h - 110},
				{X: 490, Y: h - 190},
				{X: 680, Y: h - 270},
			},
		},
		{
			Name: "chimney",
			Platforms: []Platform{
				platform(0, h-20, canvasWidth, 20, groundColor),
				platform(100, h-120, 200, 20, platformColor),
				platform(350, h-220, 150, 20, platformColor),
				platform(150, h-330, 150, 20, platformColor),
				platform(450, h-420, 200, 20, platformColor),
			},
			Collectibles: []CollectibleSpawn{
				{X: 700, Y: h - 50},
				{X: 180, Y: h - 150},
				{X: 400, Y: h - 250},
				{X: 200, Y: h - 360},
			},
		},
	}
}

func platform(x, y, w, h float64, color string) Platform {
	p := Platform{Color: color}
	p.X, p.Y, p.W, p.H = x, y, w, h
	return p
}
