package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/asset"
	"github.com/dixieflatline76/Cropper/config"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/dixieflatline76/Cropper/util"
	"github.com/dixieflatline76/Cropper/util/log"
)

// CropperApp is the single editing window: one media file, one crop region.
type CropperApp struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.AppConfig
	assets *asset.Manager

	ctx    context.Context
	cancel context.CancelFunc

	session *crop.Session
	service *media.Service
	frames  media.FrameGrabber
	placer  *media.Placer
	busy    *util.SafeFlag

	preview   *media.Preview
	loadSeq   int
	regionSeq int
	shiftDown bool

	// confirmDefault runs the highlighted choice of an open confirm dialog
	// when Enter is pressed.
	confirmDefault func()

	view        *surfaceView
	presets     *presetPicker
	status      *widget.Label
	position    *widget.Label
	openButton  *widget.Button
	placeButton *widget.Button
	saveButton  *widget.Button
}

// NewCropperApp builds the main window on a.
func NewCropperApp(a fyne.App, cfg *config.AppConfig) (*CropperApp, error) {
	catalog, err := cfg.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("building preset catalog: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ca := &CropperApp{
		app:     a,
		cfg:     cfg,
		assets:  asset.NewManager(),
		ctx:     ctx,
		cancel:  cancel,
		session: crop.NewSession(catalog),
		busy:    util.NewSafeFlag(),
	}
	ca.configureTools()

	ca.window = a.NewWindow(config.AppName)
	ca.window.SetContent(ca.buildContent())
	ca.window.SetMainMenu(ca.buildMenu())
	ca.bindKeys()
	ca.window.SetOnClosed(ca.cancel) // kills a running ffmpeg
	ca.window.Resize(fyne.NewSize(1200, 800))
	ca.refreshControls()
	return ca, nil
}

// configureTools (re)creates everything that depends on tool settings.
func (ca *CropperApp) configureTools() {
	tool := ca.cfg.GetFFmpegPath()
	runner := media.ExecRunner{}

	images := media.NewImageExecutor()
	images.JPEGQuality = ca.cfg.GetJPEGQuality()
	ca.service = media.NewServiceWith(images, media.NewVideoExecutor(tool, runner))
	ca.frames = media.NewFrameGrabber(tool, runner)

	var cascade []byte
	if path := ca.cfg.GetFaceCascade(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Face cascade unavailable, face placement falls back to smart: %v", err)
		} else {
			cascade = data
		}
	}
	placer, err := media.NewPlacer(cascade)
	if err != nil {
		log.Printf("Failed to load face cascade: %v", err)
	}
	ca.placer = placer
}

func (ca *CropperApp) buildContent() fyne.CanvasObject {
	ca.view = newSurfaceView(ca.session)
	ca.view.onMoved = func(x, y float64) { ca.showPosition() }

	catalog := ca.session.Catalog()
	ca.presets = newPresetPicker(ca.onPresetTapped)
	ca.presets.SetPresets(catalog.Presets(), catalog.SelectedIndex())

	ca.openButton = widget.NewButtonWithIcon("Open File", theme.FolderOpenIcon(), ca.showOpenDialog)
	ca.placeButton = widget.NewButtonWithIcon("Auto place", theme.SearchIcon(), ca.autoPlace)
	ca.saveButton = widget.NewButtonWithIcon("Overwrite Original", theme.ContentCutIcon(), ca.requestOverwrite)
	ca.saveButton.Importance = widget.DangerImportance

	ca.status = widget.NewLabel("")
	ca.status.Wrapping = fyne.TextWrapWord
	ca.position = widget.NewLabel("")

	sidebar := container.NewVBox(
		ca.openButton,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Crop Size:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ca.presets.box,
		widget.NewSeparator(),
		ca.placeButton,
		ca.position,
		ca.status,
		layout.NewSpacer(),
		ca.saveButton,
	)
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(sidebarWidth, 0))

	return container.NewBorder(nil, nil, container.NewStack(width, sidebar), nil, ca.view)
}

func (ca *CropperApp) buildMenu() *fyne.MainMenu {
	open := fyne.NewMenuItem("Open...", ca.showOpenDialog)
	open.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	prefs := fyne.NewMenuItem("Preferences", ca.ShowSettings)

	help := fyne.NewMenuItem("How to crop", func() {
		text := widget.NewLabel(ca.assets.MustText("help.txt", ""))
		text.Wrapping = fyne.TextWrapWord
		d := dialog.NewCustom("How to crop", "Close", text, ca.window)
		d.Resize(fyne.NewSize(520, 320))
		d.Show()
	})
	about := fyne.NewMenuItem(fmt.Sprintf("About %s", config.AppName), func() {
		version := config.AppVersion
		if version == "" {
			version = "dev"
		}
		dialog.ShowInformation(config.AppName, fmt.Sprintf("%s %s\nFixed-size image and video cropper.", config.AppName, version), ca.window)
	})

	updates := fyne.NewMenuItem("Check for Updates...", ca.checkForUpdates)

	return fyne.NewMainMenu(
		fyne.NewMenu("File", open, fyne.NewMenuItemSeparator(), prefs),
		fyne.NewMenu("Help", help, updates, about),
	)
}

func (ca *CropperApp) checkForUpdates() {
	go func() {
		result, err := util.CheckForUpdates(ca.ctx, nil)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Update check failed: %v", err)
				dialog.ShowError(fmt.Errorf("could not check for updates: %w", err), ca.window)
				return
			}
			if !result.UpdateAvailable {
				dialog.ShowInformation("No Updates", fmt.Sprintf("%s is up to date (latest release %s).", config.AppName, result.LatestVersion), ca.window)
				return
			}
			msg := fmt.Sprintf("%s %s is available (you have %s).\n\nOpen the release page?", config.AppName, result.LatestVersion, result.CurrentVersion)
			dialog.ShowConfirm("Update Available", msg, func(open bool) {
				if !open {
					return
				}
				u, err := url.Parse(result.ReleaseURL)
				if err != nil {
					log.Printf("Bad release URL %q: %v", result.ReleaseURL, err)
					return
				}
				if err := ca.app.OpenURL(u); err != nil {
					log.Printf("Failed to open release page: %v", err)
				}
			}, ca.window)
		})
	}()
}

func (ca *CropperApp) bindKeys() {
	c := ca.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		ca.showOpenDialog()
	})

	if dc, ok := c.(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == desktop.KeyShiftLeft || ev.Name == desktop.KeyShiftRight {
				ca.shiftDown = true
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == desktop.KeyShiftLeft || ev.Name == desktop.KeyShiftRight {
				ca.shiftDown = false
			}
		})
	}

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			if ca.confirmDefault != nil {
				ca.confirmDefault()
				return
			}
			ca.requestOverwrite()
		case fyne.KeyLeft:
			ca.nudge(-1, 0)
		case fyne.KeyRight:
			ca.nudge(1, 0)
		case fyne.KeyUp:
			ca.nudge(0, -1)
		case fyne.KeyDown:
			ca.nudge(0, 1)
		}
	})
}

// Run shows the window and blocks until the app quits. A non-empty path is
// opened once the app has started.
func (ca *CropperApp) Run(path string) {
	if path != "" {
		ca.app.Lifecycle().SetOnStarted(func() {
			ca.Open(path)
		})
	}
	ca.window.ShowAndRun()
}

func (ca *CropperApp) showOpenDialog() {
	if ca.busy.Value() {
		return
	}
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ca.window)
			return
		}
		if rc == nil {
			return // cancelled
		}
		path := rc.URI().Path()
		rc.Close()
		ca.Open(path)
	}, ca.window)

	d.SetFilter(storage.NewExtensionFileFilter(openExtensions()))
	if dir := ca.cfg.GetLastDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(900, 600))
	d.Show()
}

// openExtensions lists every openable extension in lower and upper case.
func openExtensions() []string {
	var exts []string
	for _, list := range [][]string{media.ImageExtensions, media.VideoExtensions} {
		for _, ext := range list {
			exts = append(exts, ext, strings.ToUpper(ext))
		}
	}
	return exts
}

// Open loads path in the background. On failure the previous media stays
// loaded.
func (ca *CropperApp) Open(path string) {
	ca.loadSeq++
	seq := ca.loadSeq
	ca.setStatus(fmt.Sprintf("Loading %s...", filepath.Base(path)))

	go func() {
		p, err := media.LoadPreview(ca.ctx, path, ca.frames)
		fyne.Do(func() {
			if seq != ca.loadSeq {
				return // superseded by a later Open
			}
			if err != nil {
				log.Printf("Failed to open %s: %v", path, err)
				ca.setStatus("")
				dialog.ShowError(fmt.Errorf("could not open %s: %w", filepath.Base(path), err), ca.window)
				return
			}
			ca.showPreview(p)
		})
	}()
}

func (ca *CropperApp) showPreview(p *media.Preview) {
	ca.preview = p
	ca.regionSeq++
	err := ca.session.LoadMedia(p.Surface)

	ca.view.SetImage(p.Image)
	ca.window.SetTitle(fmt.Sprintf("%s - %s", config.AppName, filepath.Base(p.Path)))
	ca.cfg.SetLastDir(filepath.Dir(p.Path))
	log.Printf("Loaded %s %s (%s)", p.Kind, p.Path, p.Surface)

	ca.setStatus("")
	ca.reportRegion(err)
}

// onPresetTapped runs for every tap, so picking the current size again
// puts the region back at the origin.
func (ca *CropperApp) onPresetTapped(index int) {
	ca.cfg.SetSelectedPreset(index)

	if ca.session.State() == crop.StateNoMedia {
		if _, err := ca.session.Catalog().Select(index); err != nil {
			log.Printf("Preset selection failed: %v", err)
		}
		return
	}

	ca.regionSeq++
	err := ca.session.ChangePreset(index)
	ca.view.Refresh()
	ca.setStatus("")
	ca.reportRegion(err)
}

// reportRegion reflects the outcome of a region reset in the controls.
func (ca *CropperApp) reportRegion(err error) {
	switch {
	case err == nil:
	case errors.Is(err, crop.ErrPresetTooLarge):
		surface, _ := ca.session.Surface()
		ca.setStatus(fmt.Sprintf("Crop size %s does not fit this %s media. Pick a smaller size.",
			ca.session.Catalog().Selected(), surface))
	default:
		ca.setStatus(err.Error())
	}
	ca.view.Refresh()
	ca.showPosition()
	ca.refreshControls()
}

func (ca *CropperApp) showPosition() {
	region := ca.session.Region()
	if region == nil {
		ca.position.SetText("")
		return
	}
	plan := region.Plan()
	ca.position.SetText(fmt.Sprintf("x: %d  y: %d", plan.X, plan.Y))
}

func (ca *CropperApp) setStatus(text string) {
	ca.status.SetText(text)
}

// refreshControls enables the actions the current state allows.
func (ca *CropperApp) refreshControls() {
	busy := ca.busy.Value()
	active := ca.session.State() == crop.StateRegionActive && !busy

	setEnabled(ca.openButton, !busy)
	setEnabled(ca.placeButton, active)
	setEnabled(ca.saveButton, active)
	if busy {
		ca.presets.Disable()
	} else {
		ca.presets.Enable()
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (ca *CropperApp) nudge(dx, dy float64) {
	if ca.busy.Value() {
		return
	}
	step := float64(nudgeStep)
	if ca.shiftDown {
		step = nudgeStepLarge
	}
	ca.view.moveBy(dx*step, dy*step)
}

// placement returns the configured strategy. A stored name that no longer
// parses falls back to smart placement.
func (ca *CropperApp) placement() media.Strategy {
	strategy, err := media.ParseStrategy(ca.cfg.GetPlacement())
	if err != nil {
		log.Printf("Using smart placement: %v", err)
		return media.PlaceSmart
	}
	return strategy
}

// autoPlace moves the region to the placer's suggestion. A load or preset
// change while it runs discards the result.
func (ca *CropperApp) autoPlace() {
	region := ca.session.Region()
	if region == nil || ca.preview == nil {
		return
	}
	if !ca.busy.TryAcquire() {
		return
	}
	ca.refreshControls()

	img := ca.preview.Image
	size := region.Size()
	seq := ca.regionSeq
	strategy := ca.placement()
	ca.setStatus("Looking for the best spot...")

	go func() {
		x, y, err := ca.placer.Suggest(ca.ctx, img, size, strategy)
		fyne.Do(func() {
			ca.busy.Release()
			ca.refreshControls()
			if seq != ca.regionSeq {
				return
			}
			if err != nil {
				log.Printf("Auto placement failed: %v", err)
				ca.setStatus(fmt.Sprintf("Auto place failed: %v", err))
				return
			}
			ca.setStatus("")
			ca.view.moveTo(x, y)
		})
	}()
}
