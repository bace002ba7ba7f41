package thumbs

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Kontakt sayfası hücre ölçüleri (16:9) ve varsayılan sütun sayısı.
const (
	sheetCellWidth  = 128
	sheetCellHeight = 72
	sheetColumns    = 4
	sheetPadding    = 8
)

// BuildSheet önizleme görüntülerini tek bir kontakt sayfasında birleştirip
// dst yoluna JPEG olarak yazar. Çözülemeyen görüntüler atlanır; hiçbir
// görüntü çözülemezse hata döner.
func BuildSheet(thumbPaths []string, dst string) error {
	if len(thumbPaths) == 0 {
		return fmt.Errorf("kontakt sayfası için önizleme bulunamadı")
	}

	var images []image.Image
	for _, path := range thumbPaths {
		img, err := decodeImage(path)
		if err != nil {
			continue
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return fmt.Errorf("hiçbir önizleme görüntüsü çözülemedi")
	}

	cols := sheetColumns
	if len(images) < cols {
		cols = len(images)
	}
	rows := (len(images) + cols - 1) / cols

	width := cols*sheetCellWidth + (cols+1)*sheetPadding
	height := rows*sheetCellHeight + (rows+1)*sheetPadding

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	background := color.RGBA{R: 24, G: 24, B: 28, A: 255}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, img := range images {
		col := i % cols
		row := i / cols
		cell := image.Rect(
			sheetPadding+col*(sheetCellWidth+sheetPadding),
			sheetPadding+row*(sheetCellHeight+sheetPadding),
			sheetPadding+col*(sheetCellWidth+sheetPadding)+sheetCellWidth,
			sheetPadding+row*(sheetCellHeight+sheetPadding)+sheetCellHeight,
		)
		xdraw.CatmullRom.Scale(canvas, fitRect(cell, img.Bounds()), img, img.Bounds(), xdraw.Over, nil)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("kontakt sayfası yazılamadı: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, canvas, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("kontakt sayfası kodlanamadı: %w", err)
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// fitRect kaynağı en-boy oranını koruyarak hücreye sığdırır ve ortalar.
func fitRect(cell image.Rectangle, src image.Rectangle) image.Rectangle {
	cw, ch := cell.Dx(), cell.Dy()
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return cell
	}

	w, h := cw, sh*cw/sw
	if h > ch {
		w, h = sw*ch/sh, ch
	}

	x := cell.Min.X + (cw-w)/2
	y := cell.Min.Y + (ch-h)/2
	return image.Rect(x, y, x+w, y+h)
}
