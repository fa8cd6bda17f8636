package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/util/log"
	pigo "github.com/esimov/pigo/core"
	"github.com/muesli/smartcrop"
)

// Strategy selects how Placer suggests a starting position.
type Strategy int

const (
	// PlaceNone keeps the region at the origin.
	PlaceNone Strategy = iota
	// PlaceSmart centers the region on smartcrop's best crop.
	PlaceSmart
	// PlaceFace centers the region on the strongest detected face.
	PlaceFace
)

// Strategies lists the strategies in display order.
var Strategies = []Strategy{PlaceNone, PlaceSmart, PlaceFace}

func (s Strategy) String() string {
	switch s {
	case PlaceSmart:
		return "Smart"
	case PlaceFace:
		return "Face"
	default:
		return "None"
	}
}

// ErrUnknownStrategy is returned by ParseStrategy for names it does not know.
var ErrUnknownStrategy = errors.New("unknown placement strategy")

// ParseStrategy maps a name, in any case, back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.TrimSpace(name)
	for _, s := range Strategies {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return PlaceNone, fmt.Errorf("%w %q: want None, Smart or Face", ErrUnknownStrategy, name)
}

// errNoFace is returned by the face strategy when nothing usable is detected.
var errNoFace = errors.New("no face detected")

const (
	faceMinQuality  = 5.0
	faceIoUThresh   = 0.2
	faceShiftFactor = 0.1
	faceScaleFactor = 1.1
)

// Placer suggests where to put a fixed-size region on an image.
type Placer struct {
	resampler  imaging.ResampleFilter
	classifier *pigo.Pigo
}

// NewPlacer creates a Placer. cascade is an optional pigo face cascade; when
// empty the face strategy falls back to smart placement.
func NewPlacer(cascade []byte) (*Placer, error) {
	p := &Placer{resampler: imaging.Lanczos}
	if len(cascade) == 0 {
		return p, nil
	}
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return p, fmt.Errorf("unpacking face cascade: %w", err)
	}
	p.classifier = classifier
	return p, nil
}

// HasFaceDetection reports whether a face cascade is loaded.
func (p *Placer) HasFaceDetection() bool {
	return p.classifier != nil
}

// Suggest returns the proposed top-left corner for a region of size on img.
// The result is not clamped; callers pass it through the session's
// ProposeMove like any other position.
func (p *Placer) Suggest(ctx context.Context, img image.Image, size crop.Preset, strategy Strategy) (float64, float64, error) {
	switch strategy {
	case PlaceFace:
		cx, cy, err := p.faceCenter(ctx, img)
		if err == nil {
			x, y := centered(cx, cy, size)
			return x, y, nil
		}
		log.Debugf("Face placement unavailable, using smart placement: %v", err)
		fallthrough
	case PlaceSmart:
		cx, cy, err := p.smartCenter(ctx, img, size)
		if err != nil {
			return 0, 0, err
		}
		x, y := centered(cx, cy, size)
		return x, y, nil
	default:
		return 0, 0, nil
	}
}

func centered(cx, cy float64, size crop.Preset) (float64, float64) {
	return cx - float64(size.Width)/2, cy - float64(size.Height)/2
}

// smartCenter runs smartcrop for the preset's aspect ratio and returns the
// center of the best crop, relative to the image origin.
func (p *Placer) smartCenter(ctx context.Context, img image.Image, size crop.Preset) (float64, float64, error) {
	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: p.resampler})

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		best, err := analyzer.FindBestCrop(img, size.Width, size.Height)
		resultChan <- cropResult{crop: best, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return 0, 0, fmt.Errorf("finding best crop: %w", result.err)
		}
		r := result.crop.Sub(img.Bounds().Min)
		return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2, nil
	}
}

// faceCenter returns the center of the highest quality face detection.
func (p *Placer) faceCenter(ctx context.Context, img image.Image) (float64, float64, error) {
	if p.classifier == nil {
		return 0, 0, errors.New("face cascade not loaded")
	}
	if err := checkContext(ctx); err != nil {
		return 0, 0, err
	}

	nrgba := imaging.Clone(img)
	cols, rows := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	maxSize := cols
	if rows < maxSize {
		maxSize = rows
	}

	params := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     maxSize,
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(nrgba),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}
	dets := p.classifier.RunCascade(params, 0.0)
	dets = p.classifier.ClusterDetections(dets, faceIoUThresh)

	if err := checkContext(ctx); err != nil {
		return 0, 0, err
	}

	best := -1
	for i, d := range dets {
		if d.Q < faceMinQuality {
			continue
		}
		if best < 0 || d.Q > dets[best].Q {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, errNoFace
	}
	return float64(dets[best].Col), float64(dets[best].Row), nil
}

// resizer implements the smartcrop.Resizer interface.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize scales img to width x height.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
