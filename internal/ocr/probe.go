package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// probePNG is a tiny blank image used to verify the native engine can
// run end to end before it is marked available.
var probePNG = func() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}()
