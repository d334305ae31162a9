package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

var (
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	white   = core.NewVec3(1.0, 1.0, 1.0)
)

// newNormalSphereScene builds the single normal-shaded sphere at (0,0,-1)
// under a white to sky-blue gradient.
func newNormalSphereScene(name string, cameraConfig renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:         name,
		TopColor:     skyBlue,
		BottomColor:  white,
		CameraConfig: cameraConfig,
	}
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	return s
}

// NewDefaultScene creates the 512-pixel-wide 16:9 sphere render
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return newNormalSphereScene("default", renderer.DefaultCameraConfig(), cameraOverrides)
}

// NewPreviewScene creates a 128-pixel-wide render of the same scene for quick checks
func NewPreviewScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	config := renderer.DefaultCameraConfig()
	config.Width = 128
	return newNormalSphereScene("preview", config, cameraOverrides)
}
