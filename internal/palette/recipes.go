package palette

import (
	"math/rand/v2"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Recipe builds a gradient, drawing any randomness from the provided source.
type Recipe func(rng *rand.Rand) Gradient

// Names of the built-in recipes.
const (
	Rainbow = "rainbow"
	Random  = "random"
)

var recipes = map[string]Recipe{}

// Register adds a recipe under the provided name.
func Register(name string, r Recipe) {
	if name == "" || r == nil {
		return
	}
	recipes[name] = r
}

// Get returns the recipe registered under name.
func Get(name string) (Recipe, bool) {
	r, ok := recipes[name]
	return r, ok
}

// Names lists the registered recipe names in sorted order.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Rainbow, rainbowRecipe)
	Register(Random, randomRecipe)
}

// stopPositions spreads the built-in recipes' stops over a 0-10 range; only
// the relative spacing matters to sampling.
var stopPositions = []float64{0, 2.5, 5, 7.5, 10}

// rainbowRecipe cycles red, green, blue, green, red regardless of the RNG.
func rainbowRecipe(*rand.Rand) Gradient {
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	blue := colorful.Color{B: 1}
	colors := []colorful.Color{red, green, blue, green, red}

	g := make(Gradient, len(stopPositions))
	for i, pos := range stopPositions {
		g[i] = Stop{Pos: pos, Color: colors[i]}
	}
	return g
}

// randomRecipe keeps the rainbow's stop spacing but draws every channel
// uniformly from [0, 1).
func randomRecipe(rng *rand.Rand) Gradient {
	g := make(Gradient, len(stopPositions))
	for i, pos := range stopPositions {
		g[i] = Stop{Pos: pos, Color: colorful.Color{
			R: rng.Float64(),
			G: rng.Float64(),
			B: rng.Float64(),
		}}
	}
	return g
}
