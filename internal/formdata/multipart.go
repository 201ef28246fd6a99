package formdata

import (
	"strings"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/form"
	"github.com/indigo-web/multipart/http/multipart"
	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

// Collector is a multipart.Listener assembling parts into a form.Form. Values are
// buffered entirely, so it's intended for reasonably sized forms only.
type Collector struct {
	cfg     *config.Config
	form    form.Form
	current form.Data
	value   []byte
	started bool
	// charset is the form-wide charset, set by the special _charset_ field.
	charset string
}

func NewCollector(cfg *config.Config, into form.Form) *Collector {
	if into == nil {
		into = make(form.Form, 0, cfg.Form.EntriesPrealloc)
	}

	return &Collector{
		cfg:  cfg,
		form: into,
	}
}

func (c *Collector) OnHeaders(part multipart.Part) error {
	if err := c.flush(); err != nil {
		return err
	}

	if len(part.Name) == 0 {
		return status.ErrMissingName
	}

	c.current = form.Data{Name: strings.Clone(part.Name)}
	c.started = true

	_, params := strutil.CutHeader(part.Headers.Value("Content-Disposition"))
	for key, value := range strutil.WalkKV(params) {
		if len(key) == 0 {
			return status.ErrBadRequest
		}

		if strutil.CmpFold(key, "filename") {
			c.current.Filename = strings.Clone(value)
		}
	}

	if contentType, found := part.Headers.Get("Content-Type"); found {
		var params string
		contentType, params = strutil.CutHeader(contentType)
		c.current.Type = strings.Clone(contentType)

		for key, value := range strutil.WalkKV(params) {
			if len(key) == 0 {
				return status.ErrBadRequest
			}

			if strutil.CmpFold(key, "charset") {
				c.current.Charset = strings.Clone(value)
			}
		}
	}

	return nil
}

func (c *Collector) OnData(_ multipart.Part, data []byte) error {
	c.value = append(c.value, data...)
	return nil
}

// Form completes the last part and returns the assembled form. Entries without explicit
// charset or content type get the defaults.
func (c *Collector) Form() (form.Form, error) {
	if err := c.flush(); err != nil {
		return nil, err
	}

	charset := c.charset
	if len(charset) == 0 {
		charset = c.cfg.Form.DefaultCoding
	}

	for i := range c.form {
		if len(c.form[i].Charset) == 0 {
			c.form[i].Charset = charset
		}

		if len(c.form[i].Type) == 0 {
			c.form[i].Type = c.cfg.Form.DefaultContentType
		}
	}

	return c.form, nil
}

func (c *Collector) flush() error {
	if !c.started {
		return nil
	}

	c.started = false
	value := string(c.value)
	c.value = c.value[:0]

	if c.current.Name == "_charset_" {
		if len(value) == 0 {
			return status.ErrBadRequest
		}

		c.charset = value
		return nil
	}

	c.current.Value = value
	c.form = append(c.form, c.current)

	return nil
}

// ParseMultipart parses a completely read multipart body.
func ParseMultipart(cfg *config.Config, into form.Form, data []byte, boundary string) (form.Form, error) {
	collector := NewCollector(cfg, into)

	parser, err := multipart.NewParser(cfg, boundary, collector)
	if err != nil {
		return nil, err
	}

	if _, err = parser.Parse(data); err != nil {
		return nil, err
	}

	if !parser.Done() {
		return nil, status.ErrIncompleteBody
	}

	return collector.Form()
}

// ParseMultipartString is ParseMultipart for string bodies, avoiding a copy.
func ParseMultipartString(cfg *config.Config, into form.Form, data, boundary string) (form.Form, error) {
	return ParseMultipart(cfg, into, uf.S2B(data), boundary)
}
