package texcube

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestInput_SampleIsLevelTriggered(t *testing.T) {
	win := &fakeWindow{pressed: map[glfw.Key]bool{glfw.KeyW: true, glfw.KeyUp: true}}
	input := &Input{}

	input.sample(win)
	assert.True(t, input.IsPressed(KeyW))
	assert.True(t, input.IsPressed(KeyUp))
	assert.False(t, input.IsPressed(KeyS))

	// still held on the next frame
	input.sample(win)
	assert.True(t, input.IsPressed(KeyW))

	win.pressed[glfw.KeyW] = false
	input.sample(win)
	assert.False(t, input.IsPressed(KeyW))
	assert.True(t, input.IsPressed(KeyUp))
}

func TestInput_EveryKeyIsMapped(t *testing.T) {
	seen := map[glfw.Key]Key{}
	for key := Key(0); key < keyCount; key++ {
		glfwKey := keyToGlfw[key]
		assert.NotZero(t, glfwKey, "key %d has no glfw mapping", key)

		prev, dup := seen[glfwKey]
		assert.False(t, dup, "keys %d and %d share glfw key %d", prev, key, glfwKey)
		seen[glfwKey] = key
	}
}
