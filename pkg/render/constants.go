package render

// Uniform names expected by the scene shader
const (
	UniformFieldOfView    = "fov"
	UniformPosition       = "pos"
	UniformLookDirection  = "look"
	UniformAspectRatio    = "aspect"
	UniformViewportHeight = "height"
	UniformFrameIndex     = "frame"
)

// Default shader sources, relative to the working directory
const (
	DefaultVertexShaderPath   = "shaders/shader.vert"
	DefaultFragmentShaderPath = "shaders/shader.frag"
)
