package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-processor/internal/config"
	"github.com/ytget/video-processor/internal/logging"
	"github.com/ytget/video-processor/internal/model"
	"github.com/ytget/video-processor/internal/platform"
	"github.com/ytget/video-processor/internal/transcode"
)

// Options configures the main window
type Options struct {
	// Profile supplies binaries, output naming and initial slider values
	Profile *config.Profile
	// Input is the initial input path, e.g. from the Nemo selection
	Input string
	// Logger receives every record also shown in the log panel
	Logger *slog.Logger
	// LogLevel is the minimum level shown in the log panel
	LogLevel slog.Leveler
	// Transcoder replaces the ffmpeg runner; nil builds one from Profile
	Transcoder transcode.Transcoder
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	profile      *config.Profile
	logger       *slog.Logger
	service      *transcode.Service

	controls    *TranscodeControls
	panel       *ControlPanel
	statusLabel *widget.Label
	progressBar *widget.ProgressBar
	stopBtn     *widget.Button
	revealBtn   *widget.Button
	logList     *widget.List

	inputPath   string
	outputPath  string
	activeJobID string
	lastOutput  string

	logMu    sync.Mutex
	logLines []string

	closeOnce sync.Once
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	profile := opts.Profile
	if profile == nil {
		profile = config.Default()
	}
	level := opts.LogLevel
	if level == nil {
		level = slog.LevelInfo
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		profile:      profile,
	}
	ui.logger = logging.TeeLogger(opts.Logger, logging.NewLineHandler(ui.appendLog, level))

	transcoder := opts.Transcoder
	if transcoder == nil {
		transcoder = transcode.NewRunner(profile.FFmpegPath,
			transcode.WithFFprobe(profile.FFprobePath),
			transcode.WithLogger(ui.logger))
	}
	ui.service = transcode.NewService(transcoder, ui.logger)
	ui.service.SetUpdateCallback(ui.onJobUpdate)

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	} else {
		ui.logger.Debug("window icon not loaded", slog.String("path", AppIconPath), slog.Any("error", err))
	}

	ui.setupUI()
	ui.setInput(opts.Input)

	ui.logger.Info("video processor ready",
		slog.String("ffmpeg", profile.FFmpegPath),
		slog.String("input", ui.inputPath))
	return ui
}

// Service returns the transcode service driven by the window
func (ui *RootUI) Service() *transcode.Service {
	return ui.service
}

// Controls returns the transcoding control set
func (ui *RootUI) Controls() *TranscodeControls {
	return ui.controls
}

// Paths returns the current input and output paths
func (ui *RootUI) Paths() (input, output string) {
	return ui.inputPath, ui.outputPath
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	initial := ui.settings.RestoreParameters(ui.profile.Parameters(""))
	ui.controls = NewTranscodeControls(ui.localization, initial, FyneMeasurer())
	ui.controls.OnSubmit = ui.onSubmit
	ui.panel = NewControlPanel(ui.controls.Panel, FyneMeasurer())

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyIdle))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(ui.progressBar.Value*100))
	}

	ui.stopBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Importance = widget.DangerImportance
	ui.stopBtn.Disable()

	ui.revealBtn = widget.NewButton(IconFolder, func() { ui.onRevealFile(ui.lastOutput) })
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.logList = widget.NewList(
		func() int {
			ui.logMu.Lock()
			defer ui.logMu.Unlock()
			return len(ui.logLines)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.TextStyle = fyne.TextStyle{Monospace: true}
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.logMu.Lock()
			var line string
			if id < len(ui.logLines) {
				line = ui.logLines[id]
			}
			ui.logMu.Unlock()
			obj.(*widget.Label).SetText(line)
		},
	)
	logSpacer := canvas.NewRectangle(color.Transparent)
	logSpacer.SetMinSize(fyne.NewSize(0, LogHeight))

	statusRow := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.statusLabel),
		container.NewHBox(ui.stopBtn, ui.revealBtn),
		ui.progressBar,
	)
	bottom := container.NewVBox(statusRow, container.NewStack(logSpacer, ui.logList))

	ui.window.SetContent(container.NewBorder(nil, bottom, nil, nil, ui.panel))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.SetOnDropped(ui.onDropped)
	ui.window.SetCloseIntercept(ui.Close)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenVideo), ui.onOpenVideo)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the language and rebuilds the labelled controls
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language. Control
// values and the keyboard target carry over to the rebuilt panel.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.stopBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStop))

	values := ui.controls.Snapshot(ui.inputPath, ui.outputPath)
	last := ui.controls.Panel.Last()
	ui.controls = NewTranscodeControls(ui.localization, values, FyneMeasurer())
	ui.controls.OnSubmit = ui.onSubmit
	ui.controls.Panel.SetLast(last)
	ui.panel.panel = ui.controls.Panel
	ui.refreshHeader()
}

// refreshHeader redraws the input/output path lines
func (ui *RootUI) refreshHeader() {
	ui.panel.SetHeader(
		fmt.Sprintf(ui.localization.GetText(KeyInputPath), ui.inputPath),
		fmt.Sprintf(ui.localization.GetText(KeyOutputPath), ui.outputPath),
	)
}

// setInput makes path the input and re-derives the output path from it
func (ui *RootUI) setInput(path string) {
	ui.inputPath = path
	output, err := ui.profile.OutputPathFor(path)
	if err != nil {
		ui.logger.Warn("no output path for input", slog.String("input", path), slog.Any("error", err))
	}
	ui.outputPath = output
	ui.refreshHeader()
}

// onDropped takes the first dropped file as the new input
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	ui.logger.Info("file dropped", slog.String("path", uris[0].Path()), slog.Int("count", len(uris)))
	ui.setInput(uris[0].Path())
}

// onOpenVideo picks the input with a file dialog
func (ui *RootUI) onOpenVideo() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.logger.Error("open dialog failed", slog.Any("error", err))
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.setInput(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ui.profile.Extensions))
	fd.Show()
}

// onTypedKey quits on Escape or Q and forwards the rest to the panel
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape, fyne.KeyQ:
		ui.Close()
	default:
		ui.panel.TypedKey(ev)
	}
}

// Close stops running jobs and closes the window
func (ui *RootUI) Close() {
	ui.closeOnce.Do(func() {
		ui.logger.Info("shutting down")
		ui.service.Shutdown()
		ui.window.Close()
	})
}

// onSubmit snapshots the controls and hands them to the transcode service
func (ui *RootUI) onSubmit() {
	params := ui.controls.Snapshot(ui.inputPath, ui.outputPath)
	ui.settings.SaveParameters(params)

	job, err := ui.service.Submit(params)
	if err != nil {
		ui.logger.Error("transcode rejected", slog.Any("error", err))
		ui.statusLabel.SetText(ui.rejectionText(err))
		return
	}
	ui.activeJobID = job.ID
	ui.progressBar.SetValue(0)
	ui.stopBtn.Enable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyTranscodeStarted))
}

// rejectionText maps a Submit error to a short localized message
func (ui *RootUI) rejectionText(err error) string {
	switch {
	case errors.Is(err, transcode.ErrNoInputSelected):
		return ui.localization.GetText(KeyNoInputSelected)
	case errors.Is(err, transcode.ErrNoOutputPath):
		return ui.localization.GetText(KeyUnrecognizedFile)
	case errors.Is(err, transcode.ErrOutputBusy):
		return ui.localization.GetText(KeyOutputBusy)
	default:
		return ui.localization.GetText(KeyTranscodeFailed) + ": " + err.Error()
	}
}

// onStopClick cancels the active job
func (ui *RootUI) onStopClick() {
	if ui.activeJobID == "" {
		return
	}
	if err := ui.service.Stop(ui.activeJobID); err != nil {
		ui.logger.Warn("stop failed", slog.String("job_id", ui.activeJobID), slog.Any("error", err))
		ui.statusLabel.SetText(ui.localization.GetText(KeyErrorStoppingTask))
		return
	}
	ui.stopBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStoppingTranscode))
}

// onJobUpdate is called from service goroutines
func (ui *RootUI) onJobUpdate(job model.TranscodeJob) {
	fyne.Do(func() {
		ui.applyJob(job)
	})
}

// applyJob reflects a job snapshot in the status row. Updates for jobs
// other than the active one are ignored once they finish.
func (ui *RootUI) applyJob(job model.TranscodeJob) {
	if job.ID != ui.activeJobID {
		if job.Status.IsFinished() {
			return
		}
		ui.activeJobID = job.ID
	}

	ui.progressBar.SetValue(job.Progress)
	ui.statusLabel.SetText(ui.jobStatusText(job))

	switch job.Status {
	case model.JobStatusRunning:
		ui.stopBtn.Enable()
	case model.JobStatusCompleted:
		ui.stopBtn.Disable()
		ui.lastOutput = job.Params.OutputPath
		ui.revealBtn.Enable()
		ui.sendCompletionNotification(job)
		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(job.Params.OutputPath)
		}
	case model.JobStatusStopped, model.JobStatusError:
		ui.stopBtn.Disable()
	}
}

// jobStatusText renders e.g. "Running · 42% · 1.5x · 00:12"
func (ui *RootUI) jobStatusText(job model.TranscodeJob) string {
	parts := []string{job.GetDisplayName()}
	switch job.Status {
	case model.JobStatusCompleted:
		parts = append(parts, ui.localization.GetText(KeyTranscodeCompleted))
		if size := job.GetOutputSizeString(); size != "" {
			parts = append(parts, size)
		}
	case model.JobStatusStopped:
		parts = append(parts, ui.localization.GetText(KeyTranscodeStopped))
	case model.JobStatusError:
		parts = append(parts, ui.localization.GetText(KeyTranscodeFailed))
		if job.LastError != "" {
			parts = append(parts, job.LastError)
		}
	case model.JobStatusStopping:
		parts = append(parts, ui.localization.GetText(KeyStoppingTranscode))
	default:
		parts = append(parts, job.Status.String(), fmt.Sprintf(ProgressLabelFormat, job.Percent))
		if job.Speed != "" {
			parts = append(parts, job.Speed)
		}
	}
	parts = append(parts, job.GetElapsedString())
	return strings.Join(parts, MiddleDotSeparator)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.statusLabel.SetText(ui.localization.GetText(KeySettingsSaved))
	})
}

// onRevealFile shows a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error("reveal failed", slog.String("path", filePath), slog.Any("error", err))
		ui.statusLabel.SetText(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// appendLog adds a line to the log panel. Safe from any goroutine.
func (ui *RootUI) appendLog(line string) {
	ui.logMu.Lock()
	ui.logLines = append(ui.logLines, line)
	if over := len(ui.logLines) - MaxLogLines; over > 0 {
		ui.logLines = append(ui.logLines[:0], ui.logLines[over:]...)
	}
	ui.logMu.Unlock()

	if ui.logList == nil {
		return
	}
	fyne.Do(func() {
		ui.logList.Refresh()
		ui.logList.ScrollToBottom()
	})
}

// LogLines returns a copy of the log panel contents
func (ui *RootUI) LogLines() []string {
	ui.logMu.Lock()
	defer ui.logMu.Unlock()
	return append([]string(nil), ui.logLines...)
}

// sendCompletionNotification sends a system notification and an in-app toast
func (ui *RootUI) sendCompletionNotification(job model.TranscodeJob) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyTranscodeCompleted),
		Content: job.GetDisplayName(),
	})
	ui.showToastNotification(job)
}

// showToastNotification shows an in-app toast with reveal/open actions
func (ui *RootUI) showToastNotification(job model.TranscodeJob) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyTranscodeCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(job.GetDisplayName())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	output := job.Params.OutputPath
	revealBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onRevealFile(output)
	})
	revealBtn.Importance = widget.HighImportance

	playBtn := widget.NewButton("▶", func() {
		if err := platform.OpenFileWithDefaultApp(output); err != nil {
			ui.logger.Error("open failed", slog.String("path", output), slog.Any("error", err))
		}
	})

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, playBtn),
	)

	toast = widget.NewPopUp(content, ui.window.Canvas())
	canvasSize := ui.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}
