// CLAUDE:SUMMARY OCR fallback — go-fitz raster at 2× scale piped through the tesseract binary.
package pdfscan

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ocrDPI renders at twice the PDF-native 72 DPI. Recognition accuracy on
// small print degrades sharply below a 2× linear upsample.
const ocrDPI = 144.0

// ocrPage rasterizes the page and runs tesseract over it. It never returns
// an error: any internal failure (no renderer, render failure, recognition
// failure) yields "" and a debug log, because OCR is a fallback that must
// not take the page down with it.
func ocrPage(ctx context.Context, render *renderBackend, pageNr int, logger *slog.Logger) string {
	if render == nil {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("ocr panicked", "page", pageNr, "panic", r)
		}
	}()

	img, err := render.renderImage(pageNr, ocrDPI)
	if err != nil {
		logger.Debug("ocr raster failed", "page", pageNr, "error", err)
		return ""
	}

	tmp, err := os.MkdirTemp("", "auditpipe-ocr-")
	if err != nil {
		logger.Debug("ocr tempdir failed", "page", pageNr, "error", err)
		return ""
	}
	defer os.RemoveAll(tmp)

	pngPath := filepath.Join(tmp, "page.png")
	f, err := os.Create(pngPath)
	if err != nil {
		logger.Debug("ocr temp file failed", "page", pageNr, "error", err)
		return ""
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		logger.Debug("ocr png encode failed", "page", pageNr, "error", err)
		return ""
	}
	f.Close()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "tesseract", pngPath, "stdout")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		logger.Debug("tesseract failed", "page", pageNr, "error", err)
		return ""
	}
	return out.String()
}
