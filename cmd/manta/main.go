package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/leterax/manta/pkg/camera"
	"github.com/leterax/manta/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting manta...")

	// Parse command line flags
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 800, "Window height in pixels")
	title := flag.String("title", "manta", "Window title")
	vsync := flag.Bool("vsync", true, "Wait for vertical blank on buffer swap")
	vertPath := flag.String("vert", render.DefaultVertexShaderPath, "Vertex shader source file")
	fragPath := flag.String("frag", render.DefaultFragmentShaderPath, "Fragment shader source file")
	speed := flag.Float64("speed", camera.DefaultMoveSpeed, "Camera move distance per frame")
	sensitivity := flag.Float64("sensitivity", camera.DefaultSensitivity, "Radians of rotation per cursor pixel")
	fov := flag.Float64("fov", camera.DefaultFOV, "Initial vertical field of view in degrees")
	verbose := flag.Bool("verbose", false, "Log cursor and resize events")
	flag.Parse()

	controller := camera.NewController(
		camera.WithMoveSpeed(float32(*speed)),
		camera.WithSensitivity(float32(*sensitivity)),
		camera.WithFieldOfView(float32(*fov)),
	)

	renderer, err := render.NewRenderer(render.Config{
		Width:              *width,
		Height:             *height,
		Title:              *title,
		VSync:              *vsync,
		VertexShaderPath:   *vertPath,
		FragmentShaderPath: *fragPath,
		Verbose:            *verbose,
	}, controller)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
