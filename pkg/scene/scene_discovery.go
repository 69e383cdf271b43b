package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// SceneInfo describes a built-in scene for listings
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used on the command line
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Spheres     int    `json:"spheres"`
	Width       int    `json:"width"`   // Default image width
	Height      int    `json:"height"`  // Default image height
	Samples     int    `json:"samples"` // Default samples per pixel
}

// ScenesResponse is the payload returned by /api/scenes
type ScenesResponse struct {
	Scenes []SceneInfo `json:"scenes"`
}

type sceneEntry struct {
	description string
	build       func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtInScenes = map[string]sceneEntry{
	"default": {"Diffuse, metal and glass spheres with depth of field", NewDefaultScene},
	"simple":  {"One diffuse sphere resting on the ground", NewSimpleScene},
	"random":  {"Field of small random spheres around three large ones", NewRandomScene},
}

// SceneNames returns the built-in scene identifiers in sorted order
func SceneNames() []string {
	names := make([]string, 0, len(builtInScenes))
	for name := range builtInScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene, applying an optional camera override
func Create(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(SceneNames(), ", "))
	}
	return entry.build(cameraOverrides...), nil
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range SceneNames() {
		entry := builtInScenes[name]
		s := entry.build()
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: entry.description,
			Spheres:     s.GetPrimitiveCount(),
			Width:       s.SamplingConfig.Width,
			Height:      s.SamplingConfig.Height,
			Samples:     s.SamplingConfig.SamplesPerPixel,
		})
	}
	return scenes
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-field" -> "Sphere Field"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
