// Command texcube opens a window with a textured cube that can be scaled,
// moved and rotated from the keyboard. It reads cube.tga from the working
// directory and runs until the window is closed.
package main

import (
	"runtime"

	"github.com/gekko3d/texcube"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	texcube.NewCubeApp(false).Run()
}
