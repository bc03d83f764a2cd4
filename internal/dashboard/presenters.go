package dashboard

import "strings"

// ErrorTitle heads the error modal.
const ErrorTitle = "An error has occurred"

// DefaultFormats are the image formats offered when none are configured.
var DefaultFormats = []string{"png", "svg", "eps", "pdf"}

// ErrorPresenter is the modal that shows the last user-facing error.
type ErrorPresenter struct {
	message string
	open    bool
}

// Show replaces the message and opens the modal.
func (p *ErrorPresenter) Show(msg string) {
	p.message = msg
	p.open = true
}

func (p *ErrorPresenter) Message() string { return p.message }
func (p *ErrorPresenter) IsOpen() bool    { return p.open }
func (p *ErrorPresenter) Close()          { p.open = false }

// FormatLink is one downloadable rendering of a graph.
type FormatLink struct {
	Format string
	URL    string
}

// FormatURL appends format=name to src.
func FormatURL(src, format string) string {
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep + "format=" + format
}

// FormatPresenter lists the format links of one graph image.
type FormatPresenter struct {
	formats []string
	src     string
	links   []FormatLink
	open    bool
}

// NewFormatPresenter offers formats, or DefaultFormats when empty.
func NewFormatPresenter(formats []string) *FormatPresenter {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	return &FormatPresenter{formats: formats}
}

// Launch builds the links for src and opens the presenter.
func (p *FormatPresenter) Launch(src string) {
	p.src = src
	p.links = make([]FormatLink, 0, len(p.formats))
	for _, f := range p.formats {
		p.links = append(p.links, FormatLink{Format: f, URL: FormatURL(src, f)})
	}
	p.open = true
}

func (p *FormatPresenter) Source() string      { return p.src }
func (p *FormatPresenter) Links() []FormatLink { return p.links }
func (p *FormatPresenter) Formats() []string   { return p.formats }
func (p *FormatPresenter) IsOpen() bool        { return p.open }
func (p *FormatPresenter) Close()              { p.open = false }

// ExportPresenter shows signed export URLs ready to copy.
type ExportPresenter struct {
	urls []string
	open bool
}

// Launch replaces the URL list and opens the presenter.
func (p *ExportPresenter) Launch(urls []string) {
	p.urls = urls
	p.open = true
}

func (p *ExportPresenter) URLs() []string { return p.urls }

// Text returns the URLs one per line.
func (p *ExportPresenter) Text() string {
	return strings.Join(p.urls, "\n")
}

func (p *ExportPresenter) IsOpen() bool { return p.open }
func (p *ExportPresenter) Close()       { p.open = false }
