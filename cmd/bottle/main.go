// Command bottle renders a fixed still-life scene: a stylized water bottle
// and a speaker on a wooden floor.
package main

import (
	"flag"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/core"
	"scene-composer/internal/opengl"
	"scene-composer/mesh"
	"scene-composer/scene"
	"scene-composer/shader"
)

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	propPath := flag.String("prop", "", "optional .glb/.gltf prop to place on the floor")
	flag.Parse()

	if err := run(*width, *height, *propPath); err != nil {
		log.Fatal(err)
	}
}

func run(width, height int, propPath string) error {
	config := core.DefaultWindowConfig()
	config.Width = width
	config.Height = height

	window, err := core.NewWindow(config)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}

	program, err := shader.NewProgram(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	defer program.Destroy()
	program.Use()

	mgr := scene.NewManager(program, opengl.TextureStore{}, opengl.NewMeshSet())
	if err := mgr.Prepare(); err != nil {
		return err
	}
	defer mgr.Destroy()

	var prop *opengl.GPUMesh
	if propPath != "" {
		data, err := mesh.LoadGLTF(propPath)
		if err != nil {
			log.Printf("prop skipped: %v", err)
		} else {
			prop = opengl.UploadMesh(data)
			defer prop.Destroy()
		}
	}

	fbWidth, fbHeight := window.FramebufferSize()
	camera := scene.NewCamera(float32(fbWidth) / float32(fbHeight))

	for !window.ShouldClose() {
		window.PollEvents()

		fbWidth, fbHeight = window.FramebufferSize()
		opengl.SetViewport(fbWidth, fbHeight)
		camera.UpdateAspectRatio(float32(fbWidth), float32(fbHeight))

		opengl.BeginFrame(0.1, 0.1, 0.12, 1)

		program.Use()
		camera.Apply(program)
		mgr.Render()

		if prop != nil {
			scene.ApplyTransform(program,
				mgl32.Vec3{1, 1, 1},
				mgl32.Vec3{0, 0, 0},
				mgl32.Vec3{-6, 0, 3})
			mgr.SetColor(0.8, 0.8, 0.8, 1)
			mgr.SetMaterial("glass")
			prop.Draw()
		}

		window.SwapBuffers()
	}

	return nil
}
