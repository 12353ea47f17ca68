package cellart

import (
	"bytes"
	"image"
	"image/png"
	"os"
)

// SavePNG writes the given image to disk
func SavePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
