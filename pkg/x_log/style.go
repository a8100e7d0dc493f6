package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for console output
type Styles struct {
	Timestamp       lipgloss.Style
	Levels          map[zerolog.Level]string // level -> background colour
	Keys            map[string]lipgloss.Style
	DefaultKeyStyle lipgloss.Style
	Message         lipgloss.Style
}

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
// With noColor set the writer emits plain text.
func ConsoleWriterWithStyles(out io.Writer, styles *Styles, noColor bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	if noColor {
		return cw
	}

	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		l, err := zerolog.ParseLevel(lvl)
		color, ok := styles.Levels[l]
		if err != nil || !ok {
			color = ColorGray60
		}
		label := strings.ToUpper(lvl)
		if len(label) > 3 {
			label = label[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			Render(label)
	}
	cw.FormatTimestamp = func(i any) string {
		return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
	}
	cw.FormatFieldName = func(i any) string {
		key := fmt.Sprint(i)
		style, ok := styles.Keys[key]
		if !ok {
			style = styles.DefaultKeyStyle
		}
		eq := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
		return style.Render(key) + eq.Render("=")
	}
	cw.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return styles.Message.Render(fmt.Sprint(i))
	}
	return cw
}

//
// ---------- Themes ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		DefaultKeyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
		Message:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)),
		Levels: map[zerolog.Level]string{
			zerolog.DebugLevel: ColorTeal40,
			zerolog.InfoLevel:  ColorBlue60,
			zerolog.WarnLevel:  ColorOrange40,
			zerolog.ErrorLevel: ColorRed60,
			zerolog.FatalLevel: ColorRedStrong,
		},
		Keys: map[string]lipgloss.Style{
			"file":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)).Italic(true),
			"key":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)).Bold(true),
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		DefaultKeyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
		Message:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray90)),
		Levels: map[zerolog.Level]string{
			zerolog.DebugLevel: ColorBlueBase,
			zerolog.InfoLevel:  ColorBlue70,
			zerolog.WarnLevel:  ColorOrange40,
			zerolog.ErrorLevel: ColorRed60,
			zerolog.FatalLevel: ColorRedStrong,
		},
		Keys: map[string]lipgloss.Style{
			"file":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)).Italic(true),
			"key":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)).Bold(true),
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			"module": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"error":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}
