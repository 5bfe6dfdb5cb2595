package texcube

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type AssetId string

type AssetServer struct {
	textures map[AssetId]TextureAsset
}

type AssetServerModule struct{}

// TextureAsset is a decoded image as tightly packed, non-premultiplied RGBA8
// rows, top row first.
type TextureAsset struct {
	Source string
	Texels []uint8
	Width  uint32
	Height uint32
}

type decodeFunc func(io.Reader) (image.Image, error)

// Decoders are chosen by file extension. TGA has no magic number, so sniffing
// with image.Decode is not reliable once the TGA decoder is linked in.
var textureDecoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		textures: make(map[AssetId]TextureAsset),
	}
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	installAssetServer(app)
}

func installAssetServer(app *App) *AssetServer {
	if s, ok := Resource[AssetServer](app); ok {
		return s
	}
	server := NewAssetServer()
	app.addResources(server)
	return server
}

// LoadTexture decodes filename into RGBA8 and stores it under a new id.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	decode, ok := textureDecoders[ext]
	if !ok {
		return "", fmt.Errorf("load texture %s: unsupported format %q", filename, ext)
	}

	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("load texture: %w", err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return "", fmt.Errorf("decode texture %s: %w", filename, err)
	}

	return server.CreateTexture(filename, img), nil
}

// CreateTexture converts img to RGBA8 and stores it under a new id.
func (server *AssetServer) CreateTexture(source string, img image.Image) AssetId {
	rgba := toNRGBA(img)
	bounds := rgba.Bounds()

	id := makeAssetId()
	server.textures[id] = TextureAsset{
		Source: source,
		Texels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
	return id
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	tex, ok := server.textures[id]
	return tex, ok
}

func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.NRGBA); ok && rgba.Stride == 4*bounds.Dx() && bounds.Min == (image.Point{}) {
		return rgba
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
