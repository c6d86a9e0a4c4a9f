//go:build js && wasm

package main

import (
	"syscall/js"

	"debayer/pkg/debayer"
)

var (
	lastCast  *debayer.ColorCastAnalysis
	lastImage *debayer.RGB565Image
)

func main() {
	js.Global().Set("debayerFrame", js.FuncOf(debayerFrame))
	js.Global().Set("renderOverlay", js.FuncOf(renderOverlay))
	select {} // block forever
}

// debayerFrame(fileBytes, options) converts a RAW8 frame or a FITS file.
// options: {width, height, mode, whiteBalance, crop: {x, y, width, height}}.
// width and height are required for raw bytes and ignored for FITS.
func debayerFrame(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("usage: debayerFrame(fileBytes, options)")
	}

	jsBytes := args[0]
	fileBytes := make([]byte, jsBytes.Get("length").Int())
	js.CopyBytesToGo(fileBytes, jsBytes)

	var opts js.Value
	if len(args) >= 2 && args[1].Type() == js.TypeObject {
		opts = args[1]
	}

	params := debayer.NewConvertParams()
	width, height := intOption(opts, "width"), intOption(opts, "height")
	if opts.Truthy() {
		if v := opts.Get("mode"); v.Type() == js.TypeString {
			params.Mode = debayer.Mode(v.String())
		}
		if v := opts.Get("whiteBalance"); v.Type() == js.TypeBoolean {
			params.WhiteBalance = v.Bool()
		}
		if c := opts.Get("crop"); c.Type() == js.TypeObject {
			params.Crop = debayer.Window{
				X:      intOption(c, "x"),
				Y:      intOption(c, "y"),
				Width:  intOption(c, "width"),
				Height: intOption(c, "height"),
			}
		}
	}

	raw := fileBytes
	if width == 0 || height == 0 {
		fits, err := debayer.ReadFitsBytes(fileBytes)
		if err != nil {
			return errorResult("FITS parse error: " + err.Error())
		}
		raw, width, height = fits.ToRaw8(), fits.Width, fits.Height
	}

	cast, err := debayer.AnalyzeColorCast(raw, width, height)
	if err != nil {
		return errorResult("analysis error: " + err.Error())
	}
	res, err := debayer.Convert(raw, width, height, params)
	if err != nil {
		return errorResult("conversion error: " + err.Error())
	}
	lastCast = cast
	lastImage = res.Image

	pix := res.Image.Bytes()
	uint8Array := js.Global().Get("Uint8Array").New(len(pix))
	js.CopyBytesToJS(uint8Array, pix)

	return js.ValueOf(map[string]interface{}{
		"width":  res.Image.Rect.Dx(),
		"height": res.Image.Rect.Dy(),
		"gains": map[string]interface{}{
			"r": res.Gains.R,
			"g": res.Gains.G,
			"b": res.Gains.B,
		},
		"castPct":   cast.CastPct,
		"worstZone": cast.WorstZone,
		"reliable":  cast.Reliable,
		"rgb565":    uint8Array,
	})
}

func renderOverlay(this js.Value, args []js.Value) interface{} {
	if lastCast == nil || lastImage == nil {
		return js.Null()
	}

	jpegBytes, err := debayer.RenderColorCastOverlayBytes(lastImage, lastCast)
	if err != nil {
		return js.Null()
	}

	uint8Array := js.Global().Get("Uint8Array").New(len(jpegBytes))
	js.CopyBytesToJS(uint8Array, jpegBytes)
	return uint8Array
}

func intOption(obj js.Value, key string) int {
	if !obj.Truthy() {
		return 0
	}
	v := obj.Get(key)
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Int()
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
