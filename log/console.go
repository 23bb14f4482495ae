package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// layout selects how a consoleHandler arranges a record.
type layout int

const (
	// layoutText writes every field as key=value, including time, level,
	// and message.
	layoutText layout = iota
	// layoutBasic writes a timestamp, the level name padded to a fixed
	// width, the message, then key=value attributes.
	layoutBasic
)

// basicLevelWidth is the column width of the level name in [layoutBasic].
const basicLevelWidth = 8

// styles holds the lipgloss styles used for pretty output.
type styles struct {
	key      lipgloss.Style
	str      lipgloss.Style
	num      lipgloss.Style
	yes      lipgloss.Style
	no       lipgloss.Style
	duration lipgloss.Style
	time     lipgloss.Style
	trace    lipgloss.Style
	debug    lipgloss.Style
	info     lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
	critical lipgloss.Style
}

// makeStyles creates styles bound to a renderer for w, so colors are only
// emitted when w is a terminal that supports them.
func makeStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &styles{
		key:      fg("8"),
		str:      fg("6"),
		num:      fg("3"),
		yes:      fg("2"),
		no:       fg("1"),
		duration: fg("5"),
		time:     fg("4"),
		trace:    fg("8"),
		debug:    fg("4"),
		info:     fg("2"),
		warning:  fg("3"),
		error:    fg("1"),
		critical: fg("1").Bold(true),
	}
}

func pickTime(s *styles) lipgloss.Style     { return s.time }
func pickKey(s *styles) lipgloss.Style      { return s.key }
func pickStr(s *styles) lipgloss.Style      { return s.str }
func pickNum(s *styles) lipgloss.Style      { return s.num }
func pickYes(s *styles) lipgloss.Style      { return s.yes }
func pickNo(s *styles) lipgloss.Style       { return s.no }
func pickDuration(s *styles) lipgloss.Style { return s.duration }

// pickLevel returns a picker for the style of level l.
func pickLevel(l Level) func(*styles) lipgloss.Style {
	return func(s *styles) lipgloss.Style { return s.level(l) }
}

func (s *styles) level(l Level) lipgloss.Style {
	switch {
	case l >= LevelCritical:
		return s.critical
	case l >= LevelError:
		return s.error
	case l >= LevelWarning:
		return s.warning
	case l >= LevelInfo:
		return s.info
	case l >= LevelDebug:
		return s.debug
	default:
		return s.trace
	}
}

// consoleHandler is a [slog.Handler] for human-readable output.
type consoleHandler struct {
	opts       slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	formatTime FormatTime
	style      *styles // nil disables styling
	prefix     string  // dotted group prefix for attribute keys
	attrs      []byte  // attributes preformatted by WithAttrs
	layout     layout
}

func newConsoleHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
	lay layout,
	pretty bool,
) *consoleHandler {
	h := &consoleHandler{
		opts:       *opts,
		mu:         &sync.Mutex{},
		w:          w,
		formatTime: formatTime,
		layout:     lay,
	}

	if pretty {
		h.style = makeStyles(w)
	}

	return h
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	stamp := ""
	if !r.Time.IsZero() && h.formatTime != nil {
		stamp = h.formatTime(r.Time)
	}

	level := Level(r.Level)

	switch h.layout {
	case layoutBasic:
		if stamp != "" {
			buf.WriteString(h.paint(pickTime, stamp))
			buf.WriteByte(' ')
		}

		name := level.String()
		buf.WriteString(h.paint(pickLevel(level), name))

		if pad := basicLevelWidth - len(name); pad > 0 {
			buf.WriteString(strings.Repeat(" ", pad))
		}

		buf.WriteByte(' ')
		buf.WriteString(r.Message)

	default:
		if stamp != "" {
			h.writeField(buf, slog.TimeKey, h.paint(pickTime, stamp))
		}

		h.writeField(buf, slog.LevelKey, h.paint(pickLevel(level), level.String()))
		h.writeField(buf, slog.MessageKey, h.paint(pickStr, quote(r.Message)))
	}

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			h.writeAttr(buf, "", slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h

	buf := bytes.NewBuffer(append([]byte(nil), h.attrs...))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c.attrs = buf.Bytes()

	return &c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// paint renders text with the style selected by pick, or returns it
// unchanged when styling is off.
func (h *consoleHandler) paint(
	pick func(*styles) lipgloss.Style,
	text string,
) string {
	if h.style == nil || pick == nil {
		return text
	}

	return pick(h.style).Render(text)
}

// writeField writes a pre-rendered key=value pair.
func (h *consoleHandler) writeField(buf *bytes.Buffer, key, value string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.paint(pickKey, key))
	buf.WriteByte('=')
	buf.WriteString(value)
}

// writeAttr writes a single attribute, flattening groups into dotted keys.
func (h *consoleHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}

		inner := prefix
		if a.Key != "" {
			inner = prefix + a.Key + "."
		}

		for _, ga := range group {
			h.writeAttr(buf, inner, ga)
		}

		return
	}

	h.writeField(buf, prefix+a.Key, h.value(a.Value))
}

// value renders v, styled according to its kind when styling is on.
func (h *consoleHandler) value(v slog.Value) string {
	var (
		text string
		pick func(*styles) lipgloss.Style
	)

	switch v.Kind() {
	case slog.KindString:
		text = quote(v.String())
		pick = pickStr

	case slog.KindInt64:
		text = strconv.FormatInt(v.Int64(), 10)
		pick = pickNum

	case slog.KindUint64:
		text = strconv.FormatUint(v.Uint64(), 10)
		pick = pickNum

	case slog.KindFloat64:
		text = strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		pick = pickNum

	case slog.KindBool:
		text = strconv.FormatBool(v.Bool())
		if v.Bool() {
			pick = pickYes
		} else {
			pick = pickNo
		}

	case slog.KindDuration:
		text = v.Duration().String()
		pick = pickDuration

	case slog.KindTime:
		text = v.Time().Format(time.RFC3339)
		if h.formatTime != nil {
			if formatted := h.formatTime(v.Time()); formatted != "" {
				text = formatted
			}
		}

		text = quote(text)
		pick = pickTime

	default:
		if level, ok := v.Any().(slog.Level); ok {
			l := Level(level)
			text = l.String()
			pick = pickLevel(l)
		} else {
			text = quote(v.String())
			pick = pickStr
		}
	}

	return h.paint(pick, text)
}

// quote returns s quoted if it is empty or would be ambiguous unquoted.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}

	return s
}
