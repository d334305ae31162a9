package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// ErrUnknownScene is returned by Create for names with no registered constructor
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Description string
}

type constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

var builtins = map[string]struct {
	description string
	create      constructor
}{
	"default": {"Normal-shaded sphere, 512px wide, 16:9", NewDefaultScene},
	"preview": {"Normal-shaded sphere, 128px wide, 16:9", NewPreviewScene},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{ID: id, Description: b.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene, applying optional camera overrides
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.create(cameraOverrides...), nil
}
