package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Olluo/renderman-bottle/asset"
	"github.com/Olluo/renderman-bottle/types"
	"github.com/pelletier/go-toml/v2"
)

// ErrRemoteColorMap is returned when a layout points the light at a map the
// renderer would have to download.
var ErrRemoteColorMap = errors.New("scene: light color map must be a local file")

// The on-disk layout format. Every field is optional; omitted values keep
// the defaults of the layout being overridden.
type layoutFile struct {
	Camera  *cameraEntry  `toml:"camera,omitempty"`
	Light   *lightEntry   `toml:"light,omitempty"`
	Bottles []bottleEntry `toml:"bottle,omitempty"`
	Table   *tableEntry   `toml:"table,omitempty"`
}

type cameraEntry struct {
	Translate *types.Vec3 `toml:"translate,omitempty"`
	FOV       *float32    `toml:"fov,omitempty"`
}

type lightEntry struct {
	Exposure *float32 `toml:"exposure,omitempty"`
	ColorMap *string  `toml:"colorMap,omitempty"`
	Rotation *float32 `toml:"rotation,omitempty"`
}

type bottleEntry struct {
	Height    *float32    `toml:"height,omitempty"`
	Radius    *float32    `toml:"radius,omitempty"`
	Translate *types.Vec3 `toml:"translate,omitempty"`
	Rotate    *types.Vec3 `toml:"rotate,omitempty"`
	Scale     *types.Vec3 `toml:"scale,omitempty"`
}

type tableEntry struct {
	Width     *float32    `toml:"width,omitempty"`
	Height    *float32    `toml:"height,omitempty"`
	Depth     *float32    `toml:"depth,omitempty"`
	Translate *types.Vec3 `toml:"translate,omitempty"`
	Rotate    *types.Vec3 `toml:"rotate,omitempty"`
	Scale     *types.Vec3 `toml:"scale,omitempty"`
}

func setFloat(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

func setVec(dst *types.Vec3, src *types.Vec3) {
	if src != nil {
		*dst = *src
	}
}

func applyTransform(t *Transform, translate, rotate, scale *types.Vec3) {
	setVec(&t.Translate, translate)
	setVec(&t.Rotate, rotate)
	setVec(&t.Scale, scale)
}

// Merge the file onto base. A bottle list in the file replaces the bottles
// of base; each listed bottle starts from DefaultBottle.
func (f layoutFile) apply(base Layout) Layout {
	out := base
	if f.Camera != nil {
		setVec(&out.Camera.Translate, f.Camera.Translate)
		setFloat(&out.Camera.FOV, f.Camera.FOV)
	}
	if f.Light != nil {
		setFloat(&out.Light.Exposure, f.Light.Exposure)
		setFloat(&out.Light.Rotation, f.Light.Rotation)
		if f.Light.ColorMap != nil {
			out.Light.ColorMap = *f.Light.ColorMap
		}
	}
	if len(f.Bottles) != 0 {
		out.Bottles = make([]Bottle, len(f.Bottles))
		for i, entry := range f.Bottles {
			b := DefaultBottle()
			setFloat(&b.Height, entry.Height)
			setFloat(&b.Radius, entry.Radius)
			applyTransform(&b.Transform, entry.Translate, entry.Rotate, entry.Scale)
			out.Bottles[i] = b
		}
	} else {
		out.Bottles = append([]Bottle(nil), base.Bottles...)
	}
	if f.Table != nil {
		setFloat(&out.Table.Width, f.Table.Width)
		setFloat(&out.Table.Height, f.Table.Height)
		setFloat(&out.Table.Depth, f.Table.Depth)
		applyTransform(&out.Table.Transform, f.Table.Translate, f.Table.Rotate, f.Table.Scale)
	}
	return out
}

// DecodeLayout reads a TOML layout from r and merges it onto base.
func DecodeLayout(r io.Reader, base Layout) (Layout, error) {
	f, err := decodeLayoutFile(r)
	if err != nil {
		return Layout{}, fmt.Errorf("scene: could not decode layout: %w", err)
	}
	return f.apply(base), nil
}

func decodeLayoutFile(r io.Reader) (layoutFile, error) {
	var f layoutFile
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f)
	return f, err
}

// LoadLayout reads a TOML layout from a local file or http/https URL and
// merges it onto base. A relative light color map is resolved against the
// directory of a local layout file. For layouts fetched over http/https it is
// kept relative to the working directory of the renderer.
func LoadLayout(ctx context.Context, pathToLayout string, base Layout) (Layout, error) {
	res, err := asset.Open(ctx, pathToLayout, nil)
	if err != nil {
		return Layout{}, err
	}
	defer res.Close()

	f, err := decodeLayoutFile(res)
	if err != nil {
		return Layout{}, fmt.Errorf("scene: could not decode layout %s: %w", res.Path(), err)
	}

	if f.Light != nil && f.Light.ColorMap != nil {
		resolved, err := resolveColorMap(*f.Light.ColorMap, res)
		if err != nil {
			return Layout{}, err
		}
		f.Light.ColorMap = &resolved
	}

	logger.Infof("loaded layout %s", res.Path())
	return f.apply(base), nil
}

func resolveColorMap(colorMap string, layout *asset.Resource) (string, error) {
	relTo := layout
	if layout.IsRemote() {
		relTo = nil
	}
	resolved, err := asset.Resolve(colorMap, relTo)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(resolved, "http://") || strings.HasPrefix(resolved, "https://") {
		return "", fmt.Errorf("%w: %s", ErrRemoteColorMap, resolved)
	}
	return resolved, nil
}

// EncodeLayout writes l as a TOML layout.
func EncodeLayout(w io.Writer, l Layout) error {
	f := layoutFile{
		Camera: &cameraEntry{
			Translate: &l.Camera.Translate,
			FOV:       &l.Camera.FOV,
		},
		Light: &lightEntry{
			Exposure: &l.Light.Exposure,
			ColorMap: &l.Light.ColorMap,
			Rotation: &l.Light.Rotation,
		},
		Table: &tableEntry{
			Width:     &l.Table.Width,
			Height:    &l.Table.Height,
			Depth:     &l.Table.Depth,
			Translate: &l.Table.Translate,
			Rotate:    &l.Table.Rotate,
			Scale:     &l.Table.Scale,
		},
	}
	for i := range l.Bottles {
		b := &l.Bottles[i]
		f.Bottles = append(f.Bottles, bottleEntry{
			Height:    &b.Height,
			Radius:    &b.Radius,
			Translate: &b.Translate,
			Rotate:    &b.Rotate,
			Scale:     &b.Scale,
		})
	}

	return toml.NewEncoder(w).Encode(f)
}
