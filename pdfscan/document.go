// CLAUDE:SUMMARY pdfcpu-backed document handle — page count, content hash, image-stream detection.
package pdfscan

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// docHandle is the single shared view of the source PDF: page count, file
// hash and per-page image-stream presence. The file is opened once per run
// and read sequentially.
type docHandle struct {
	path      string
	pageCount int
	fileHash  string
	fileSize  int64
	ctx       *model.Context
}

// openDocument validates the source with pdfcpu. This is the only fatal
// failure point of a run: without a page count, no partial output is
// meaningful.
func openDocument(path string, maxSize int64) (*docHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxSize)
	}

	hash, err := hashFile(path)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read %s: %w", path, err)
	}

	return &docHandle{
		path:      path,
		pageCount: ctx.PageCount,
		fileHash:  hash,
		fileSize:  info.Size(),
		ctx:       ctx,
	}, nil
}

// pageHasImages reports whether the page carries image XObjects — a strong
// hint that missing text lives in scans the OCR fallback could recover.
func (d *docHandle) pageHasImages(pageNr int) bool {
	if d.ctx.Optimize != nil {
		if len(pdfcpu.ImageObjNrs(d.ctx, pageNr)) > 0 {
			return true
		}
	}
	return false
}

// hasImageStreams scans the whole document for image subtype objects,
// falling back to the raw xref table when optimization data is absent.
func (d *docHandle) hasImageStreams() bool {
	if d.ctx.Optimize != nil {
		for pageNr := 1; pageNr <= d.pageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(d.ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	for _, entry := range d.ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
