package art

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// ResizeToHeight scales the image at path down to the target pixel
// height, preserving aspect ratio. It tries an in-process resize first,
// then ImageMagick's convert, and finally gives up and returns the
// original path. It never fails the caller.
func ResizeToHeight(path string, targetHeight int) string {
	if targetHeight <= 0 {
		return path
	}
	if out, err := resizeInProcess(path, targetHeight); err == nil {
		return out
	}
	if out, err := resizeWithConvert(path, targetHeight); err == nil {
		return out
	}
	return path
}

func resizedPath(path string, targetHeight int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_h%d%s", strings.TrimSuffix(path, ext), targetHeight, ext)
}

func resizeInProcess(path string, targetHeight int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	if bounds.Dy() <= targetHeight {
		return path, nil
	}

	newWidth := bounds.Dx() * targetHeight / bounds.Dy()
	if newWidth < 1 {
		newWidth = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	out := resizedPath(path, targetHeight)
	outFile, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if err := png.Encode(outFile, dst); err != nil {
		return "", err
	}
	return out, nil
}

func resizeWithConvert(path string, targetHeight int) (string, error) {
	bin, err := exec.LookPath("convert")
	if err != nil {
		return "", err
	}

	out := resizedPath(path, targetHeight)
	if err := exec.Command(bin, path, "-resize", fmt.Sprintf("x%d", targetHeight), out).Run(); err != nil {
		return "", err
	}
	if _, err := os.Stat(out); err != nil {
		return "", err
	}
	return out, nil
}
