package texcube

// RendererName identifies a concrete renderer module.
// Keep names aligned with ensureSingleRenderer tags.
type RendererName string

const (
	RendererOpenGL RendererName = "opengl"
)

// ensureWindowResource guarantees a single shared WindowState exists.
// If missing, it creates one with provided overrides or the defaults of
// NewPlatformWindow.
func ensureWindowResource(app *App, width, height int, title string) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}
	NewPlatformWindow(width, height, title).Install(app, app.Commands())
}

// UseRenderer installs exactly one renderer module, enforcing exclusivity via ensureSingleRenderer,
// and ensures a shared WindowState exists (created with defaults if missing).
// Usage:
//
//	app.UseRenderer(RendererOpenGL, NewGLRendererModule(""))
func (app *App) UseRenderer(name RendererName, mod Module) *App {
	ensureSingleRenderer(app, string(name))
	ensureWindowResource(app, 0, 0, "")
	app.Logger().Infof("Renderer selected: %s", name)
	app.UseModules(mod)
	return app
}
